package repository

import (
	"context"
	"testing"

	"github.com/mariekevos/gmatrix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	value, err := repo.Get(context.Background(), "last_profile")
	require.NoError(t, err)
	assert.Empty(t, value, "an unset key reads as empty, not as an error")
}

func TestSettingsRepo_SetAndGet(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "last_profile", "maker"))

	value, err := repo.Get(ctx, "last_profile")
	require.NoError(t, err)
	assert.Equal(t, "maker", value)
}

func TestSettingsRepo_SetUpserts(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "last_level", "medior"))
	require.NoError(t, repo.Set(ctx, "last_level", "core"))

	value, err := repo.Get(ctx, "last_level")
	require.NoError(t, err)
	assert.Equal(t, "core", value)
}
