package helpdesk

// Config holds runtime knobs for the helpdesk service.
type Config struct {
	SimilarityThreshold float64
	TopRecommendations  int
}
