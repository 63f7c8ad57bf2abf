package task

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the word from the task texts closest to term, for a
// "did you mean" hint when a search comes back empty. It returns "" when term
// is blank, already matches a word, or nothing is close enough.
func Suggest(tasks []Task, term string) string {
	needle := fold(strings.TrimSpace(term))
	if needle == "" || strings.ContainsAny(needle, " \t") {
		return ""
	}
	limit := maxSuggestDistance(needle)

	best, bestDist := "", limit+1
	for _, t := range tasks {
		for _, w := range strings.Fields(t.Text) {
			w = strings.Trim(w, ".,;:!?\"'()")
			if w == "" {
				continue
			}
			d := levenshtein.ComputeDistance(needle, fold(w))
			if d == 0 {
				return ""
			}
			if d < bestDist {
				best, bestDist = w, d
			}
		}
	}
	return best
}

func maxSuggestDistance(s string) int {
	n := utf8.RuneCountInString(s)
	switch {
	case n <= 2:
		return 0
	case n <= 5:
		return 1
	default:
		return 2
	}
}
