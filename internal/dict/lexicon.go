package dict

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// PauseMark is the enumeration comma that may sit inside proper nouns.
const PauseMark = "、"

// Match is the result of a prefix lookup.
type Match struct {
	Word   string // Dictionary entry that matched
	Length int    // Runes consumed from the text
}

// Lexicon is an immutable snapshot of every category.
type Lexicon struct {
	lists map[Category][]string
	sets  map[Category]map[string]struct{}
	vocab []string
}

// NewLexicon builds a Lexicon from normalised category lists.
func NewLexicon(lists map[Category][]string) *Lexicon {
	l := &Lexicon{
		lists: make(map[Category][]string, len(lists)),
		sets:  make(map[Category]map[string]struct{}, len(lists)),
	}

	var all []string
	for c, words := range lists {
		l.lists[c] = words
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		l.sets[c] = set
		all = append(all, words...)
	}
	l.vocab = longestFirst(dedupe(all))

	return l
}

// Words returns the list of a category.
func (l *Lexicon) Words(c Category) []string {
	return l.lists[c]
}

// Contains reports whether word is in category c.
func (l *Lexicon) Contains(c Category, word string) bool {
	_, ok := l.sets[c][word]
	return ok
}

// Vocabulary returns every word of every category, longest first.
func (l *Lexicon) Vocabulary() []string {
	return l.vocab
}

// MatchPrefix finds the longest word of c, or of PauseProper, that starts
// text. Entries holding "、" also match text written without the mark.
func (l *Lexicon) MatchPrefix(c Category, text string) (Match, bool) {
	candidates := l.lists[c]
	if c != PauseProper {
		candidates = append(append([]string(nil), candidates...), l.lists[PauseProper]...)
	}
	return matchPrefix(longestFirst(dedupe(candidates)), text)
}

func matchPrefix(words []string, text string) (Match, bool) {
	for _, w := range words {
		if strings.HasPrefix(text, w) {
			return Match{Word: w, Length: utf8.RuneCountInString(w)}, true
		}
		if !strings.Contains(w, PauseMark) {
			continue
		}
		if stripped := StripPauseMarks(w); stripped != "" && strings.HasPrefix(text, stripped) {
			return Match{Word: w, Length: utf8.RuneCountInString(stripped)}, true
		}
		if strings.HasPrefix(text, PauseMark) && strings.HasPrefix(w, PauseMark) {
			rest := PauseMark + StripPauseMarks(strings.TrimPrefix(w, PauseMark))
			if strings.HasPrefix(text, rest) {
				return Match{Word: w, Length: utf8.RuneCountInString(rest)}, true
			}
		}
	}
	return Match{}, false
}

// StripPauseMarks removes every "、" from s.
func StripPauseMarks(s string) string {
	return strings.ReplaceAll(s, PauseMark, "")
}

// normalize applies category-specific expansion. Proper nouns with "、" are
// registered twice: as written and without the marks.
func normalize(c Category, words []string) []string {
	if c != Proper {
		return dedupe(words)
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, w)
		if strings.Contains(w, PauseMark) {
			if stripped := StripPauseMarks(w); stripped != "" {
				out = append(out, stripped)
			}
		}
	}
	return dedupe(out)
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func longestFirst(words []string) []string {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})
	return sorted
}
