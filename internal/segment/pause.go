package segment

import (
	"strings"

	"github.com/f3rmion/readafter/internal/dict"
)

// span is a half-open byte range of the document.
type span struct{ start, end int }

// protectedSpans finds every occurrence of every word in doc.
func protectedSpans(doc string, words []string) []span {
	var spans []span
	for _, w := range words {
		if w == "" {
			continue
		}
		for pos := 0; pos < len(doc); {
			idx := strings.Index(doc[pos:], w)
			if idx < 0 {
				break
			}
			start := pos + idx
			spans = append(spans, span{start, start + len(w)})
			pos = start + len(firstRune(w))
		}
	}
	return spans
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return s
}

// pauseSplitter cuts over-long text at unprotected "、" marks.
type pauseSplitter struct {
	maxLength int
	minLength int
	protected []span
}

func (p pauseSplitter) isProtected(offset int) bool {
	for _, s := range p.protected {
		if offset >= s.start && offset < s.end {
			return true
		}
	}
	return false
}

// split tries each "、" in text in order. base is the byte offset of text in
// the document, used to honour protected spans. It reports false when no
// mark yields two parts of acceptable length.
func (p pauseSplitter) split(text string, base int) ([]string, bool) {
	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], dict.PauseMark)
		if idx < 0 {
			break
		}
		pos := from + idx
		cut := pos + len(dict.PauseMark)
		from = cut

		if p.isProtected(base + pos) {
			continue
		}

		part1, part2 := text[:cut], text[cut:]
		if EffectiveLength(part1) < p.minLength || EffectiveLength(part2) < p.minLength {
			continue
		}

		len1, len2 := runeLen(part1), runeLen(part2)
		if len1 <= p.maxLength && len2 <= p.maxLength {
			return []string{part1, part2}, true
		}
		if len1 > p.maxLength {
			if sub, ok := p.split(part1, base); ok {
				return append(sub, part2), true
			}
		}
		if len2 > p.maxLength {
			if sub, ok := p.split(part2, base+cut); ok {
				return append([]string{part1}, sub...), true
			}
		}
	}
	return nil, false
}
