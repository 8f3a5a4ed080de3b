package helpdesk

import "strings"

// synonyms maps query phrases to their canonical token. The slice order is
// load-bearing: multi-word phrases must be rewritten before their shorter
// fragments (e.g. "head of department" before "head"), so this must stay an
// ordered list rather than a map.
var synonyms = []struct {
	phrase    string
	canonical string
}{
	{"faculties", "faculty"},
	{"professors", "faculty"},
	{"teachers", "faculty"},
	{"lecturers", "faculty"},
	{"staffs", "staff"},
	{"incharge", "hod"},
	{"head of department", "hod"},
	{"leader", "hod"},
	{"head", "hod"},
	{"dept", "department"},
	{"block", "department"},
}

// Normalize lowercases and trims a question, then rewrites known synonym
// phrases to canonical tokens by literal substring replacement. Replacement is
// deliberately not word-boundary aware; the matching thresholds downstream
// were tuned against this behavior.
func Normalize(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	for _, s := range synonyms {
		q = strings.ReplaceAll(q, s.phrase, s.canonical)
	}
	return q
}
