package segment

import (
	"strings"
	"unicode"
)

// Sentence is a candidate span for length analysis.
type Sentence struct {
	Text   string // Trimmed fragment
	Length int    // Runes in Text
	Start  int    // Byte offset of Text in the source
	End    int    // Byte offset just past Text
}

func isSentenceBreak(r rune) bool {
	return isMajorBreak(r) || r == '▼'
}

// ExtractSentences splits text on major punctuation and markers, dropping
// blank fragments. Offsets point into text.
func ExtractSentences(text string) []Sentence {
	var sentences []Sentence

	emit := func(from, to int) {
		frag := text[from:to]
		trimmed := strings.TrimSpace(frag)
		if trimmed == "" {
			return
		}
		start := from + len(frag) - len(strings.TrimLeftFunc(frag, unicode.IsSpace))
		sentences = append(sentences, Sentence{
			Text:   trimmed,
			Length: runeLen(trimmed),
			Start:  start,
			End:    start + len(trimmed),
		})
	}

	from := 0
	for i, r := range text {
		if isSentenceBreak(r) {
			emit(from, i)
			from = i + len(string(r))
		}
	}
	emit(from, len(text))

	return sentences
}
