package helpdesk

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/campushelp/helpdesk/pkg/errors"
)

func TestAnswerHODScenario(t *testing.T) {
	kb := &KnowledgeBase{
		Departments: []Department{
			{Name: "Computer Science", Short: "cse", HOD: "Dr. A"},
		},
	}
	svc := newServiceUnderTest(kb)

	resp, err := svc.Answer(context.Background(), Request{Question: "who is cse hod"})
	require.NoError(t, err)
	require.Equal(t, IntentHOD, resp.Intent)
	require.Equal(t, "HOD of Computer Science: Dr. A", resp.Answer)
}

func TestAnswerHODWithoutDepartment(t *testing.T) {
	svc := newServiceUnderTest(&KnowledgeBase{})

	resp, err := svc.Answer(context.Background(), Request{Question: "who is the hod"})
	require.NoError(t, err)
	require.Equal(t, "Please mention a department, e.g., 'CSE HOD'.", resp.Answer)
}

func TestAnswerPrincipalMissingName(t *testing.T) {
	svc := newServiceUnderTest(&KnowledgeBase{})

	resp, err := svc.Answer(context.Background(), Request{Question: "principal"})
	require.NoError(t, err)
	require.Equal(t, IntentPrincipal, resp.Intent)
	require.Equal(t, "Principal: Not available", resp.Answer)
}

func TestAnswerPrincipal(t *testing.T) {
	kb := &KnowledgeBase{College: College{Principal: Principal{Name: "Dr. Rao"}}}
	svc := newServiceUnderTest(kb)

	resp, err := svc.Answer(context.Background(), Request{Question: "Who is the head of college?"})
	require.NoError(t, err)
	require.Equal(t, "Principal: Dr. Rao", resp.Answer)
}

func TestAnswerFeesPartialData(t *testing.T) {
	kb := &KnowledgeBase{Fees: Fees{TuitionFeeLastDate: "2024-01-10"}}
	svc := newServiceUnderTest(kb)

	resp, err := svc.Answer(context.Background(), Request{Question: "fees last date"})
	require.NoError(t, err)
	require.Equal(t, IntentFees, resp.Intent)
	require.Equal(t, "Tuition Last Date: 2024-01-10, Exam Fee Last Date: N/A.", resp.Answer)
}

func TestAnswerFacultyList(t *testing.T) {
	kb := &KnowledgeBase{
		Departments: []Department{
			{Name: "Computer Science", Short: "cse", Faculty: []Faculty{{Name: "Dr. B"}, {Name: "Dr. C"}}},
		},
	}
	svc := newServiceUnderTest(kb)

	resp, err := svc.Answer(context.Background(), Request{Question: "cse faculty members"})
	require.NoError(t, err)
	require.Equal(t, "Computer Science Faculty Members: Dr. B, Dr. C", resp.Answer)
}

func TestAnswerFacultyWithoutDepartment(t *testing.T) {
	svc := newServiceUnderTest(&KnowledgeBase{})

	resp, err := svc.Answer(context.Background(), Request{Question: "show me the staff"})
	require.NoError(t, err)
	require.Equal(t, "Please specify the department, e.g., 'CSE faculty'.", resp.Answer)
}

func TestAnswerFallback(t *testing.T) {
	svc := newServiceUnderTest(&KnowledgeBase{})

	resp, err := svc.Answer(context.Background(), Request{Question: "hello"})
	require.NoError(t, err)
	require.Equal(t, IntentFallback, resp.Intent)
	require.Equal(t, "I can help with details about HOD, faculty, fees, or departments.", resp.Answer)
}

func TestAnswerSynonymRouting(t *testing.T) {
	kb := &KnowledgeBase{
		Departments: []Department{
			{Name: "Computer Science", Short: "cse", HOD: "Dr. A"},
		},
	}
	svc := newServiceUnderTest(kb)

	// "incharge" normalizes to "hod" before intent resolution.
	resp, err := svc.Answer(context.Background(), Request{Question: "CSE incharge"})
	require.NoError(t, err)
	require.Equal(t, IntentHOD, resp.Intent)
	require.Equal(t, "HOD of Computer Science: Dr. A", resp.Answer)
}

func TestAnswerEmptyQuestion(t *testing.T) {
	svc := newServiceUnderTest(&KnowledgeBase{})

	_, err := svc.Answer(context.Background(), Request{Question: "   "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestAnswerTracksTrending(t *testing.T) {
	store := &stubStore{}
	svc := NewService(Config{TopRecommendations: 5}, &KnowledgeBase{}, store, newTestLogger())

	_, err := svc.Answer(context.Background(), Request{Question: "Fees please"})
	require.NoError(t, err)
	require.Equal(t, "fees please", store.lastCanonical)
	require.Equal(t, "Fees please", store.lastDisplay)
}

func TestTrending(t *testing.T) {
	store := &stubStore{top: []TrendingQuery{{Query: "fees", Count: 3}}}
	svc := NewService(Config{TopRecommendations: 5}, &KnowledgeBase{}, store, newTestLogger())

	recs, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Equal(t, store.top, recs)
}

func newServiceUnderTest(kb *KnowledgeBase) Service {
	return NewService(Config{TopRecommendations: 5}, kb, &stubStore{}, newTestLogger())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubStore struct {
	lastCanonical string
	lastDisplay   string
	top           []TrendingQuery
}

func (s *stubStore) IncrementQuery(_ context.Context, canonical, display string) error {
	s.lastCanonical = canonical
	s.lastDisplay = display
	return nil
}

func (s *stubStore) TopQueries(_ context.Context, _ int) ([]TrendingQuery, error) {
	return s.top, nil
}
