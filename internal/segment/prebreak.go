package segment

import "strings"

// Marker is the breath mark inserted between segments.
const Marker = "▼"

// PreBreak opens every non-blank line with "。" and puts a marker after
// each major punctuation mark. Lines are trimmed; blank lines become empty.
func PreBreak(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines[i] = "。" + trimmed
		} else {
			lines[i] = ""
		}
	}

	joined := strings.Join(lines, "\n")
	var b strings.Builder
	b.Grow(len(joined) * 2)
	for _, r := range joined {
		b.WriteRune(r)
		if isMajorBreak(r) {
			b.WriteString(Marker)
		}
	}
	return b.String()
}
