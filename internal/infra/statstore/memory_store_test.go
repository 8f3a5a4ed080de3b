package statstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushelp/helpdesk/internal/domain/helpdesk"
)

func TestMemoryStoreTopQueries(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.IncrementQuery(ctx, "cse hod", "CSE HOD?"))
	require.NoError(t, store.IncrementQuery(ctx, "cse hod", "who is cse hod"))
	require.NoError(t, store.IncrementQuery(ctx, "fees", "Fees"))

	top, err := store.TopQueries(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []helpdesk.TrendingQuery{
		{Query: "CSE HOD?", Count: 2},
		{Query: "Fees", Count: 1},
	}, top)
}

func TestMemoryStoreLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, store.IncrementQuery(ctx, q, q))
	}

	top, err := store.TopQueries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
}

func TestMemoryStoreIgnoresEmptyCanonical(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.IncrementQuery(ctx, "", "whatever"))

	top, err := store.TopQueries(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, top)
}
