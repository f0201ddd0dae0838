// Package pinyin annotates Chinese text with tone-marked pinyin.
package pinyin

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Tone is a Mandarin tone number.
type Tone int

// Tones; Tone5 is the neutral tone.
const (
	ToneUnknown Tone = iota
	Tone1
	Tone2
	Tone3
	Tone4
	Tone5
)

// Parser converts characters to pinyin.
type Parser struct {
	args     gopinyin.Args
	readings gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng

	readings := gopinyin.NewArgs()
	readings.Style = gopinyin.Tone
	readings.Heteronym = true // Return all possible readings

	return &Parser{args: args, readings: readings}
}

// Syllable is one rune of annotated text.
type Syllable struct {
	Text   string // The character
	Pinyin string // Tone-marked reading, empty for non-Han runes
	Tone   Tone
}

// Readings returns all pinyin readings for a character.
func (p *Parser) Readings(char string) []string {
	result := gopinyin.Pinyin(char, p.readings)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

// Annotate pairs every rune of text with its most common reading.
func (p *Parser) Annotate(text string) []Syllable {
	syllables := make([]Syllable, 0, len(text)/3)
	for _, r := range text {
		s := Syllable{Text: string(r)}
		if unicode.Is(unicode.Han, r) {
			if result := gopinyin.Pinyin(s.Text, p.args); len(result) > 0 && len(result[0]) > 0 {
				s.Pinyin = result[0][0]
				s.Tone, _ = ExtractTone(s.Pinyin)
			}
		}
		syllables = append(syllables, s)
	}
	return syllables
}

// Line returns the readings of text separated by spaces, skipping runes
// without one.
func (p *Parser) Line(text string) string {
	var parts []string
	for _, s := range p.Annotate(text) {
		if s.Pinyin != "" {
			parts = append(parts, s.Pinyin)
		}
	}
	return strings.Join(parts, " ")
}

var toneMarks = map[rune]struct {
	base rune
	tone Tone
}{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
}

// ExtractTone returns the tone of a syllable and the syllable without its
// tone mark. Unmarked syllables are neutral.
func ExtractTone(syllable string) (Tone, string) {
	tone := ToneUnknown
	var result strings.Builder

	for _, r := range syllable {
		if mark, ok := toneMarks[r]; ok {
			result.WriteRune(mark.base)
			tone = mark.tone
		} else {
			result.WriteRune(r)
		}
	}

	if tone == ToneUnknown {
		tone = Tone5
	}

	return tone, result.String()
}
