// Package speech plays marked text one breath segment at a time.
package speech

import (
	"fmt"
	"strings"
	"time"
)

// Marker separates breath segments.
const Marker = "▼"

// spokenTrim is punctuation dropped from the end of a segment before it is
// spoken.
const spokenTrim = "，。！？、；：（）【】《》"

// unvoiced are quote and bracket runes that take no time to read.
const unvoiced = "“”‘’\"'「」『』（）()"

// Utterance is one breath segment.
type Utterance struct {
	Text   string // Segment as written
	Spoken string // Segment without its closing punctuation
}

// Segments splits marked text into non-empty breath segments.
func Segments(marked string) []string {
	var out []string
	for _, s := range strings.Split(marked, Marker) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Utterances splits marked text and prepares each segment for speech.
func Utterances(marked string) []Utterance {
	segments := Segments(marked)
	out := make([]Utterance, 0, len(segments))
	for _, s := range segments {
		spoken := strings.TrimRight(s, spokenTrim)
		if spoken == "" {
			continue
		}
		out = append(out, Utterance{Text: s, Spoken: spoken})
	}
	return out
}

// EffectiveCharCount counts the runes of text that are read aloud.
func EffectiveCharCount(text string) int {
	n := 0
	for _, r := range text {
		if !strings.ContainsRune(unvoiced, r) {
			n++
		}
	}
	return n
}

// EstimateDuration approximates the playing time of marked texts.
func EstimateDuration(texts []string, secondsPerSegment float64) time.Duration {
	segments := 0
	for _, t := range texts {
		segments += len(Segments(t))
	}
	return time.Duration(float64(segments) * secondsPerSegment * float64(time.Second))
}

// FormatDuration renders d as H:MM:SS.
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total%3600/60, total%60)
}
