package helpdesk

import "github.com/pmezard/go-difflib/difflib"

// similarity returns a sequence-matching ratio in [0,1] between two strings.
// Identical non-empty strings score 1.0 and strings sharing no characters
// score 0. It is the fuzzy fallback used when exact substring containment
// fails during intent matching.
func similarity(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
