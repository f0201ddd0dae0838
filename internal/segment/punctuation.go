package segment

import (
	"strings"
	"unicode/utf8"
)

// punctuation is every rune treated as punctuation when measuring length.
const punctuation = "，。！？；：（）【】《》、…—,.!?;:()[]<>/-~`·@#$%^&*_+=|\\"

// majorBreaks receive a marker in the pre-break stage and split sentences.
const majorBreaks = "，。？！：；"

// mergeBoundaries are the punctuation marks compared when merging short segments.
const mergeBoundaries = "，。？！；："

var priorities = map[rune]int{
	'。': 5, '！': 5, '？': 5, '…': 5, '.': 5, '!': 5, '?': 5,
	'；': 4, ';': 4,
	'，': 3, '（': 3, '）': 3, '【': 3, '】': 3, '《': 3, '》': 3,
	',': 3, '(': 3, ')': 3, '[': 3, ']': 3, '<': 3, '>': 3,
	'：': 2, ':': 2,
	'、': 1,
}

// IsPunctuation reports whether r is in the punctuation table.
func IsPunctuation(r rune) bool {
	return strings.ContainsRune(punctuation, r)
}

// Priority ranks r as a sentence boundary: 5 for sentence enders down to
// 1 for "、"; unknown runes rank 0.
func Priority(r rune) int {
	return priorities[r]
}

// StripPunctuation removes every punctuation rune from s.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if IsPunctuation(r) {
			return -1
		}
		return r
	}, s)
}

// EffectiveLength counts the runes of s that are not punctuation.
func EffectiveLength(s string) int {
	n := 0
	for _, r := range s {
		if !IsPunctuation(r) {
			n++
		}
	}
	return n
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func isMajorBreak(r rune) bool {
	return strings.ContainsRune(majorBreaks, r)
}
