package segment

import (
	"strings"
	"unicode/utf8"
)

// MergeShort folds every marker-delimited segment with fewer than minLength
// non-punctuation runes into a neighbour. The neighbour is chosen by
// comparing the priority of the punctuation on each side: a stronger mark
// before the segment sends it backward, otherwise it joins the next segment.
// A segment that opens a new line never merges backward across the break.
func MergeShort(text string, minLength int) string {
	segments := strings.Split(text, Marker)
	lengths := make([]int, len(segments))
	for i, s := range segments {
		lengths[i] = EffectiveLength(s)
	}

	for i := 0; i < len(segments); {
		if lengths[i] >= minLength {
			i++
			continue
		}

		var prev, next string
		if i > 0 {
			prev = segments[i-1]
		}
		if i < len(segments)-1 {
			next = segments[i+1]
		}
		prevPriority := Priority(trailingBoundary(prev))
		if strings.HasPrefix(segments[i], "\n") {
			prevPriority = 0
		}
		nextPriority := Priority(leadingBoundary(next))

		switch {
		case prevPriority > nextPriority && i > 0:
			segments[i-1] += segments[i]
			lengths[i-1] = EffectiveLength(segments[i-1])
			segments = append(segments[:i], segments[i+1:]...)
			lengths = append(lengths[:i], lengths[i+1:]...)
			i--
		case prevPriority <= nextPriority && i < len(segments)-1:
			segments[i] += segments[i+1]
			lengths[i] = EffectiveLength(segments[i])
			segments = append(segments[:i+1], segments[i+2:]...)
			lengths = append(lengths[:i+1], lengths[i+2:]...)
		default:
			i++
		}
	}

	return strings.Join(segments, Marker)
}

func trailingBoundary(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	if r != utf8.RuneError && strings.ContainsRune(mergeBoundaries, r) {
		return r
	}
	return 0
}

func leadingBoundary(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r != utf8.RuneError && strings.ContainsRune(mergeBoundaries, r) {
		return r
	}
	return 0
}
