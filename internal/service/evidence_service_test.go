package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/repository"
	"github.com/mariekevos/gmatrix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvidenceService(t *testing.T) EvidenceService {
	t.Helper()
	cat, err := catalog.Load("", slog.Default())
	require.NoError(t, err)
	return NewEvidenceService(cat, repository.NewSQLiteEvidenceRepo(testutil.NewTestDB(t)))
}

func TestEvidenceService_Add(t *testing.T) {
	svc := newEvidenceService(t)
	ctx := context.Background()

	e, err := svc.Add(ctx, "maker", "medior", "mastery", 0, "  led the schema migration  ")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "led the schema migration", e.Text, "text is trimmed")

	entries, err := svc.ForStatement(ctx, "maker", "medior", "mastery", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.ID, entries[0].ID)
}

func TestEvidenceService_AddValidation(t *testing.T) {
	svc := newEvidenceService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "maker", "medior", "mastery", 0, "   ")
	assert.ErrorContains(t, err, "text is required")

	_, err = svc.Add(ctx, "astronaut", "medior", "mastery", 0, "text")
	assert.ErrorContains(t, err, "unknown profile")

	_, err = svc.Add(ctx, "maker", "medior", "nonsense", 0, "text")
	assert.ErrorContains(t, err, "unknown dimension")

	_, err = svc.Add(ctx, "maker", "medior", "mastery", 99, "text")
	assert.ErrorContains(t, err, "out of range")
}

func TestEvidenceService_EditAndRemove(t *testing.T) {
	svc := newEvidenceService(t)
	ctx := context.Background()

	e, err := svc.Add(ctx, "maker", "medior", "autonomy", 1, "first")
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, e.ID, "revised")
	require.NoError(t, err)
	assert.Equal(t, "revised", edited.Text)

	require.NoError(t, svc.Remove(ctx, e.ID))
	entries, err := svc.ForStatement(ctx, "maker", "medior", "autonomy", 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEvidenceService_CountForDimension(t *testing.T) {
	svc := newEvidenceService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "maker", "medior", "impact", 0, "one")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "maker", "medior", "impact", 1, "two")
	require.NoError(t, err)

	count, err := svc.CountForDimension(ctx, "maker", "medior", "impact")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
