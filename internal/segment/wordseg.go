package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/readafter/internal/dict"
)

// WordSegment is a span of text matched to a dictionary word or a single rune.
type WordSegment struct {
	Word  string // Text covered by the segment
	Start int    // Rune offset, inclusive
	End   int    // Rune offset, exclusive
}

// Segment tiles text with the longest dictionary match at each position,
// falling back to single runes.
func Segment(text string, lex *dict.Lexicon) []WordSegment {
	var segments []WordSegment
	vocab := lex.Vocabulary()

	pos, runePos := 0, 0
	for pos < len(text) {
		rest := text[pos:]

		n := 0
		for _, w := range vocab {
			if strings.HasPrefix(rest, w) {
				n = utf8.RuneCountInString(w)
				break
			}
		}
		if m, ok := lex.MatchPrefix(dict.Proper, rest); ok && m.Length > n {
			n = m.Length
		}
		if n == 0 {
			n = 1
		}

		size := prefixBytes(rest, n)
		segments = append(segments, WordSegment{
			Word:  rest[:size],
			Start: runePos,
			End:   runePos + n,
		})
		pos += size
		runePos += n
	}

	return segments
}

// prefixBytes returns the byte length of the first n runes of s.
func prefixBytes(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// canSplitBetween applies the dictionary vetoes to the boundary between two
// adjacent words.
func canSplitBetween(lex *dict.Lexicon, left, right string) bool {
	switch {
	case lex.Contains(dict.Number, left) && lex.Contains(dict.NoNumberAfter, right):
		return false
	case lex.Contains(dict.Number, right) && lex.Contains(dict.NoNumberBefore, left):
		return false
	case lex.Contains(dict.NoSplitBefore, left):
		return false
	case lex.Contains(dict.NoSplitAfter, right):
		return false
	}
	return true
}

// bestSplit returns the permitted word boundary closest to the middle of a
// text of length runes. Ties go to the leftmost boundary.
func bestSplit(lex *dict.Lexicon, segments []WordSegment, length int) (int, bool) {
	if len(segments) <= 1 {
		return 0, false
	}

	mid := length / 2
	best, bestDistance := -1, -1
	for i := 0; i < len(segments)-1; i++ {
		if !canSplitBetween(lex, segments[i].Word, segments[i+1].Word) {
			continue
		}
		pos := segments[i].End
		distance := pos - mid
		if distance < 0 {
			distance = -distance
		}
		if best < 0 || distance < bestDistance {
			best, bestDistance = pos, distance
		}
	}

	return best, best >= 0
}

// MarkBoundaries inserts sep between every pair of words that may be split.
func MarkBoundaries(text string, lex *dict.Lexicon, sep string) string {
	segments := Segment(text, lex)
	var b strings.Builder
	for i, s := range segments {
		b.WriteString(s.Word)
		if i < len(segments)-1 && canSplitBetween(lex, s.Word, segments[i+1].Word) {
			b.WriteString(sep)
		}
	}
	return b.String()
}
