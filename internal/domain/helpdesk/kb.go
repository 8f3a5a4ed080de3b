package helpdesk

import "strings"

// KnowledgeBase is the static college record every answer is derived from.
// It is loaded once at startup and never mutated, so concurrent readers need
// no locking. Every field is optional; missing values fall back to
// placeholders at answer time.
type KnowledgeBase struct {
	College     College      `json:"college"`
	Fees        Fees         `json:"fees"`
	Departments []Department `json:"departments"`
}

// College holds college-level facts.
type College struct {
	Name      string    `json:"name"`
	Principal Principal `json:"principal"`
}

// Principal identifies the head of the college.
type Principal struct {
	Name string `json:"name"`
}

// Fees carries the payment deadlines shown to students.
type Fees struct {
	TuitionFeeLastDate string `json:"tuition_fee_last_date"`
	ExamFeeLastDate    string `json:"exam_fee_last_date"`
}

// Department describes one department and its staff.
type Department struct {
	Name    string    `json:"name"`
	Short   string    `json:"short"`
	HOD     string    `json:"hod"`
	Faculty []Faculty `json:"faculty"`
}

// Faculty is a single staff member.
type Faculty struct {
	Name string `json:"name"`
}

// FindDepartment scans departments in declared order and returns the first
// whose lowercased name or short code occurs in the normalized query.
// Empty name/short values are skipped so they never match everything.
func (kb *KnowledgeBase) FindDepartment(normalized string) (Department, bool) {
	for _, dept := range kb.Departments {
		if name := strings.ToLower(dept.Name); name != "" && strings.Contains(normalized, name) {
			return dept, true
		}
		if short := strings.ToLower(dept.Short); short != "" && strings.Contains(normalized, short) {
			return dept, true
		}
	}
	return Department{}, false
}
