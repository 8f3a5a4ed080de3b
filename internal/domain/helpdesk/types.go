package helpdesk

// Intent identifies which answer branch handled a question.
type Intent string

const (
	// IntentPrincipal answers questions about the head of the college.
	IntentPrincipal Intent = "principal"
	// IntentFees answers tuition and exam fee deadline questions.
	IntentFees Intent = "fees"
	// IntentHOD answers head-of-department questions.
	IntentHOD Intent = "hod"
	// IntentFaculty lists the faculty members of a department.
	IntentFaculty Intent = "faculty"
	// IntentFallback is used when no intent keywords match.
	IntentFallback Intent = "fallback"
)

// Request encapsulates a helpdesk question.
type Request struct {
	Question string `json:"question"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Question        string          `json:"question"`
	Answer          string          `json:"answer"`
	Intent          Intent          `json:"intent"`
	Recommendations []TrendingQuery `json:"recommendations,omitempty"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
