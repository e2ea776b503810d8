package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testutil.NewTestRecord(testDims,
		testutil.WithScores(map[string]float64{"mastery": 3.7, "autonomy": 2.4, "impact": 4.0, "ownership": 3.0}),
		testutil.WithRecordRatings(map[string]domain.Rating{
			testutil.RatingKey("mastery", 0): "4",
			testutil.RatingKey("mastery", 1): "3",
		}),
	)
	rec.Comments["mastery"] = "pairing went well"
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, domain.TypeProfile, got.Type)
	assert.Equal(t, "maker", got.ProfileID)
	assert.Equal(t, "medior", got.LevelID)
	assert.Equal(t, rec.Scores, got.Scores)
	assert.Equal(t, rec.Dimensions, got.Dimensions)
	assert.Equal(t, rec.StatementCounts, got.StatementCounts)
	assert.Equal(t, rec.Ratings, got.Ratings)
	assert.Equal(t, rec.Comments, got.Comments)
	assert.Nil(t, got.TotalScore)
	assert.WithinDuration(t, rec.Date, got.Date, time.Second)
}

func TestHistoryRepo_TotalScoreRoundTrip(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testutil.NewTestRecord([]string{"collaboration", "candor"},
		testutil.WithRecordType(domain.TypeCulture),
		testutil.WithTotalScore(67.0),
	)
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TotalScore)
	assert.Equal(t, 67.0, *got.TotalScore)
	assert.Equal(t, domain.TypeCulture, got.Type)
	assert.Equal(t, domain.SchemeCategorical, got.Scheme)
	assert.Empty(t, got.ProfileID)
	assert.Empty(t, got.LevelID)
}

func TestHistoryRepo_GetByIDNotFound(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestHistoryRepo_ListInsertionOrder(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Dates deliberately out of order; listing follows insertion, not date.
	older := testutil.NewTestRecord(testDims, testutil.WithDate(time.Now().Add(-48*time.Hour)))
	newer := testutil.NewTestRecord(testDims)
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}

func TestHistoryRepo_ListEmpty(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryRepo_Delete(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	keep := testutil.NewTestRecord(testDims)
	drop := testutil.NewTestRecord(testDims)
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, drop))

	require.NoError(t, repo.Delete(ctx, drop.ID))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1, "delete must not touch other records")
	assert.Equal(t, keep.ID, records[0].ID)
}

func TestHistoryRepo_DeleteMissing(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
