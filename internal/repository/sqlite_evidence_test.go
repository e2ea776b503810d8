package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mariekevos/gmatrix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvidenceRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entry := testutil.NewTestEvidence("mastery", 1, "refactored the billing module solo")
	require.NoError(t, repo.Create(ctx, entry))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "maker", got.ProfileID)
	assert.Equal(t, "medior", got.LevelID)
	assert.Equal(t, "mastery", got.DimensionID)
	assert.Equal(t, 1, got.StatementIndex)
	assert.Equal(t, entry.Text, got.Text)
	assert.WithinDuration(t, entry.Date, got.Date, time.Second)
}

func TestEvidenceRepo_GetByIDNotFound(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEvidenceRepo_Update(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entry := testutil.NewTestEvidence("autonomy", 0, "first draft")
	require.NoError(t, repo.Create(ctx, entry))

	entry.Text = "second draft"
	require.NoError(t, repo.Update(ctx, entry))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "second draft", got.Text)
}

func TestEvidenceRepo_UpdateMissing(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))

	entry := testutil.NewTestEvidence("autonomy", 0, "text")
	err := repo.Update(context.Background(), entry)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEvidenceRepo_Delete(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entry := testutil.NewTestEvidence("impact", 2, "shipped the reporting dashboard")
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Delete(ctx, entry.ID))

	_, err := repo.GetByID(ctx, entry.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = repo.Delete(ctx, entry.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "deleting twice must report missing")
}

func TestEvidenceRepo_ListByStatement(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	later := testutil.NewTestEvidence("mastery", 0, "later entry")
	earlier := testutil.NewTestEvidence("mastery", 0, "earlier entry")
	earlier.Date = earlier.Date.Add(-24 * time.Hour)
	other := testutil.NewTestEvidence("mastery", 1, "different statement")

	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))
	require.NoError(t, repo.Create(ctx, other))

	entries, err := repo.ListByStatement(ctx, "maker", "medior", "mastery", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2, "only entries for the requested statement")
	assert.Equal(t, "earlier entry", entries[0].Text, "entries come back in date order")
	assert.Equal(t, "later entry", entries[1].Text)
}

func TestEvidenceRepo_CountByDimension(t *testing.T) {
	repo := NewSQLiteEvidenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEvidence("mastery", 0, "a")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEvidence("mastery", 2, "b")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEvidence("ownership", 0, "c")))

	count, err := repo.CountByDimension(ctx, "maker", "medior", "mastery")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "counts span all statements of the dimension")

	count, err = repo.CountByDimension(ctx, "maker", "medior", "autonomy")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
