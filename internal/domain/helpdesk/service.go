package helpdesk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/campushelp/helpdesk/pkg/errors"
)

const defaultSimilarityThreshold = 0.65

// intentKeywords drives the intent chain. Order is the priority order: the
// first intent whose keywords match wins and produces the answer.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentPrincipal, []string{"principal", "head of college"}},
	{IntentFees, []string{"fees", "exam fee", "payment"}},
	{IntentHOD, []string{"hod", "head of department"}},
	{IntentFaculty, []string{"faculty", "professor", "staff"}},
}

// Service answers helpdesk questions from the knowledge base.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingQuery, error)
}

type service struct {
	cfg    Config
	kb     *KnowledgeBase
	store  Store
	logger *slog.Logger
}

// NewService wires up the helpdesk domain.
func NewService(cfg Config, kb *KnowledgeBase, store Store, logger *slog.Logger) Service {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = defaultSimilarityThreshold
	}
	return &service{
		cfg:    cfg,
		kb:     kb,
		store:  store,
		logger: logger.With("component", "helpdesk.service"),
	}
}

// Answer resolves the question to an intent and formats the reply. It is a
// pure computation over the immutable knowledge base; the only side effect is
// the best-effort trending counter bump.
func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Response{}, apperrors.Wrap("invalid_input", "question cannot be empty", nil)
	}

	normalized := Normalize(question)
	intent := s.resolveIntent(normalized)
	answer := s.buildAnswer(intent, normalized)

	if err := s.store.IncrementQuery(ctx, normalized, question); err != nil {
		s.logger.Warn("trending increment failed", "error", err)
	}
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		s.logger.Warn("trending fetch failed", "error", err)
		recs = nil
	}

	return Response{
		Question:        question,
		Answer:          answer,
		Intent:          intent,
		Recommendations: recs,
	}, nil
}

// Trending returns the most frequently asked questions.
func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap("helpdesk_error", "failed to load trending queries", err)
	}
	return recs, nil
}

func (s *service) resolveIntent(normalized string) Intent {
	for _, candidate := range intentKeywords {
		if s.intentMatch(normalized, candidate.keywords) {
			return candidate.intent
		}
	}
	return IntentFallback
}

// intentMatch is a fuzzy OR across the intent's keywords: an exact substring
// hit or a similarity ratio above the threshold counts as a match.
func (s *service) intentMatch(normalized string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
		if similarity(normalized, keyword) > s.cfg.SimilarityThreshold {
			return true
		}
	}
	return false
}

func (s *service) buildAnswer(intent Intent, normalized string) string {
	switch intent {
	case IntentPrincipal:
		return fmt.Sprintf("Principal: %s", valueOr(s.kb.College.Principal.Name, "Not available"))
	case IntentFees:
		return fmt.Sprintf(
			"Tuition Last Date: %s, Exam Fee Last Date: %s.",
			valueOr(s.kb.Fees.TuitionFeeLastDate, "N/A"),
			valueOr(s.kb.Fees.ExamFeeLastDate, "N/A"),
		)
	case IntentHOD:
		dept, ok := s.kb.FindDepartment(normalized)
		if !ok {
			return "Please mention a department, e.g., 'CSE HOD'."
		}
		return fmt.Sprintf("HOD of %s: %s", dept.Name, valueOr(dept.HOD, "Not available"))
	case IntentFaculty:
		dept, ok := s.kb.FindDepartment(normalized)
		if !ok {
			return "Please specify the department, e.g., 'CSE faculty'."
		}
		names := make([]string, 0, len(dept.Faculty))
		for _, member := range dept.Faculty {
			names = append(names, member.Name)
		}
		return fmt.Sprintf("%s Faculty Members: %s", dept.Name, strings.Join(names, ", "))
	default:
		return "I can help with details about HOD, faculty, fees, or departments."
	}
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
