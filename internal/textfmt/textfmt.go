// Package textfmt tidies pasted prose before it is segmented.
package textfmt

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// punctuation is every rune treated as a line-ending mark.
const punctuation = "，。！？；：“”‘’（）【】《》、…—,.!?;:\"'()[]<>/-~`·@#$%^&*_+=|\\"

// keepWide are full-width marks left as they are.
const keepWide = "，？！；：（）"

// toChinese maps ASCII punctuation to the form used inside Chinese text.
// Quotes are left alone.
var toChinese = map[rune]rune{
	',': '，', '.': '。', '?': '？', '!': '！', ';': '；', ':': '：',
	'(': '（', ')': '）', '[': '【', ']': '】', '<': '《', '>': '》',
	'/': '、', '-': '—', '~': '～', '`': '｀', '@': '＠', '#': '＃',
	'$': '＄', '%': '％', '^': '＾', '&': '＆', '*': '＊', '_': '＿',
	'+': '＋', '=': '＝', '|': '｜', '\\': '＼',
}

func isPunct(r rune) bool { return strings.ContainsRune(punctuation, r) }

func isHan(r rune) bool { return unicode.Is(unicode.Han, r) }

func isLetter(r rune) bool { return r < unicode.MaxASCII && unicode.IsLetter(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Clean trims every line and drops blank ones.
func Clean(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Format normalises punctuation, width and spacing of mixed Chinese text,
// drops blank lines and ends every line with punctuation.
func Format(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	for i, r := range runes {
		runes[i] = narrow(r)
	}
	runes = chinesePunctuation(runes)

	var out []string
	for _, line := range strings.Split(string(runes), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = squeezeSpaces([]rune(line))
		if !endsWithPunct(line) {
			line += "。"
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// narrow folds full-width letters, digits and symbols to ASCII.
func narrow(r rune) rune {
	if strings.ContainsRune(keepWide, r) {
		return r
	}
	p := width.LookupRune(r)
	if p.Kind() != width.EastAsianFullwidth {
		return r
	}
	if n := p.Narrow(); n != 0 {
		return n
	}
	return r
}

func chinesePunctuation(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = r
		cn, ok := toChinese[r]
		if !ok {
			continue
		}
		if (i > 0 && isHan(runes[i-1])) || (i < len(runes)-1 && isHan(runes[i+1])) {
			out[i] = cn
		}
	}
	return out
}

// squeezeSpaces drops spaces except a single one between two letters or a
// letter and a digit.
func squeezeSpaces(runes []rune) string {
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		if runes[i] != ' ' {
			b.WriteRune(runes[i])
			continue
		}
		j := i
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		if i > 0 && j < len(runes) && keepSpace(runes[i-1], runes[j]) {
			b.WriteByte(' ')
		}
		i = j - 1
	}
	return b.String()
}

func keepSpace(prev, next rune) bool {
	switch {
	case isHan(prev) || isHan(next) || isPunct(prev) || isPunct(next):
		return false
	case isLetter(prev) && isLetter(next):
		return true
	case isLetter(prev) && isDigit(next), isDigit(prev) && isLetter(next):
		return true
	}
	return false
}

func endsWithPunct(line string) bool {
	runes := []rune(line)
	return len(runes) > 0 && isPunct(runes[len(runes)-1])
}
