package segment

import "strings"

// Normalize finishes marked text: it guarantees a trailing marker, collapses
// repeated markers and drops the "。" that PreBreak put in front of each line.
func Normalize(text string) string {
	if !strings.HasSuffix(text, Marker) {
		text += Marker
	}

	double := Marker + Marker
	for strings.Contains(text, double) {
		text = strings.ReplaceAll(text, double, Marker)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "。")
	}
	return strings.Join(lines, "\n")
}
