package segment

import (
	"strings"

	"github.com/f3rmion/readafter/internal/dict"
	"github.com/f3rmion/readafter/internal/logger"
)

// Splitter breaks over-long sentences into breath-sized parts.
type Splitter struct {
	lex      *dict.Lexicon
	settings Settings
}

// NewSplitter creates a Splitter over a dictionary snapshot.
func NewSplitter(lex *dict.Lexicon, settings Settings) *Splitter {
	return &Splitter{lex: lex, settings: settings.withDefaults()}
}

// SplitLong replaces every sentence longer than MaxLength with its split
// form. Sentences are substituted at their own offsets, so repeated
// sentences are each handled in place.
func (s *Splitter) SplitLong(doc string, sentences []Sentence) string {
	pauses := pauseSplitter{
		maxLength: s.settings.MaxLength,
		minLength: s.settings.MinLength,
		protected: protectedSpans(doc, s.lex.Words(dict.PauseProper)),
	}

	var b strings.Builder
	last := 0
	for _, sent := range sentences {
		if sent.Length <= s.settings.MaxLength {
			continue
		}
		logger.Debug("splitting long sentence (%d): %s", sent.Length, sent.Text)

		parts, ok := pauses.split(sent.Text, sent.Start)
		if !ok {
			parts = []string{sent.Text}
		} else {
			logger.Debug("pause split: %q", parts)
		}
		for i, part := range parts {
			if runeLen(part) > s.settings.MaxLength {
				parts[i] = s.SplitWords(part)
			}
		}

		b.WriteString(doc[last:sent.Start])
		b.WriteString(strings.Join(parts, Marker))
		last = sent.End
	}
	b.WriteString(doc[last:])

	return b.String()
}

// piece is a pending fragment on the split work stack.
type piece struct {
	text  string
	depth int
}

// SplitWords halves text at the best permitted word boundary until every
// fragment fits MaxLength or MaxDepth is reached, joining fragments with
// markers. Text with no permitted boundary is returned unchanged.
func (s *Splitter) SplitWords(text string) string {
	var out []string
	stack := []piece{{text: text}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.depth >= s.settings.MaxDepth || runeLen(p.text) <= s.settings.MaxLength {
			out = append(out, p.text)
			continue
		}

		pos, ok := bestSplit(s.lex, Segment(p.text, s.lex), runeLen(p.text))
		if !ok {
			logger.Debug("no permitted split point: %s", p.text)
			out = append(out, p.text)
			continue
		}

		cut := prefixBytes(p.text, pos)
		stack = append(stack,
			piece{text: p.text[cut:], depth: p.depth + 1},
			piece{text: p.text[:cut], depth: p.depth + 1},
		)
	}

	return strings.Join(out, Marker)
}
