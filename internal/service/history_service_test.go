package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mariekevos/gmatrix/internal/repository"
	"github.com/mariekevos/gmatrix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyDims = []string{"mastery", "autonomy", "impact", "ownership"}

func TestHistoryService_Compare(t *testing.T) {
	repo := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	svc := NewHistoryService(repo)
	ctx := context.Background()

	before := testutil.NewTestRecord(historyDims,
		testutil.WithDate(time.Now().Add(-72*time.Hour)),
	)
	after := testutil.NewTestRecord(historyDims,
		testutil.WithScores(map[string]float64{"mastery": 3.8, "autonomy": 3.0, "impact": 2.4, "ownership": 3.0}),
	)
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, after))

	cmp, err := svc.Compare(ctx, before.ID, after.ID)
	require.NoError(t, err)
	require.NotNil(t, cmp)
	assert.Equal(t, before.ID, cmp.Previous.ID, "the earlier record is the baseline")
	byDim := map[string]float64{}
	for _, d := range cmp.Deltas {
		byDim[d.DimensionID] = d.Delta
	}
	assert.InDelta(t, 0.8, byDim["mastery"], 1e-9)
	assert.InDelta(t, -0.6, byDim["impact"], 1e-9)
}

func TestHistoryService_CompareMissingRecord(t *testing.T) {
	repo := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	svc := NewHistoryService(repo)
	ctx := context.Background()

	rec := testutil.NewTestRecord(historyDims)
	require.NoError(t, repo.Create(ctx, rec))

	_, err := svc.Compare(ctx, rec.ID, "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestHistoryService_Delete(t *testing.T) {
	repo := repository.NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	svc := NewHistoryService(repo)
	ctx := context.Background()

	rec := testutil.NewTestRecord(historyDims)
	require.NoError(t, repo.Create(ctx, rec))

	require.NoError(t, svc.Delete(ctx, rec.ID))
	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
