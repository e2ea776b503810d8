package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load("", slog.Default())
	require.NoError(t, err)
	return c
}

func TestLoad_EmbeddedDatasetIsValid(t *testing.T) {
	c := load(t)
	assert.NotEmpty(t, c.OrderedProfiles())
	assert.Empty(t, c.CheckCoverage(), "the shipped dataset must have full coverage")
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0o644))

	c, err := Load(path, slog.Default())
	require.NoError(t, err)
	assert.NotEmpty(t, c.ProfileOrder)
}

func TestLoad_RejectsMisorderedBands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"profiles": {"a": {"name": "A", "availableLevels": ["l1"]}},
		"profileOrder": ["a"],
		"levels": {"l1": {"name": "L1"}},
		"scoreLabels": [{"id": "low", "min": 1}, {"id": "high", "min": 4}],
		"percentLabels": [{"id": "strong", "min": 80}]
	}`), 0o644))

	_, err := Load(path, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highest-first")
}

func TestLoad_RejectsUnknownLevelReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"profiles": {"a": {"name": "A", "availableLevels": ["ghost"]}},
		"profileOrder": ["a"],
		"levels": {}
	}`), 0o644))

	_, err := Load(path, slog.Default())
	assert.Error(t, err)
}

func TestDimensionOrder_CultureAppendsMaster(t *testing.T) {
	c := load(t)
	order := c.DimensionOrder(domain.TypeCulture)
	require.NotEmpty(t, order)
	assert.Equal(t, CultureMasterDimension, order[len(order)-1])
}

func TestStatementsFor_NumericFallback(t *testing.T) {
	c := load(t)
	stmts := c.StatementsFor(domain.TypeProfile, "maker", "nonexistent", "mastery")
	require.Len(t, stmts, 1, "missing numeric entries degrade to one fallback statement")
	assert.Equal(t, c.Dimensions["mastery"].LongDescription, stmts[0])
}

func TestStatementsFor_CultureFallbackIsEmpty(t *testing.T) {
	c := load(t)
	c.CultureDimOrder = append(c.CultureDimOrder, "vibes")
	c.CultureDimensions["vibes"] = Dimension{Name: "Vibes"}
	assert.Empty(t, c.StatementsFor(domain.TypeCulture, "", "", "vibes"))
}

func TestStatementCounts_MatchesStatements(t *testing.T) {
	c := load(t)
	counts := c.StatementCounts(domain.TypeProfile, "maker", "medior")
	for _, dim := range c.DimensionOrder(domain.TypeProfile) {
		assert.Equal(t, len(c.StatementsFor(domain.TypeProfile, "maker", "medior", dim)), counts[dim])
	}
}

func TestSuggestionsFor_MissingIsEmpty(t *testing.T) {
	c := load(t)
	assert.NotEmpty(t, c.SuggestionsFor("maker", "mastery", domain.BandLow))
	assert.Empty(t, c.SuggestionsFor("maker", "charisma", domain.BandLow))
}

func TestOrderedLevels_FiltersByProfile(t *testing.T) {
	c := load(t)
	p, ok := c.Profile("organiser")
	require.True(t, ok)
	for _, l := range c.OrderedLevels(p) {
		assert.True(t, p.HasLevel(l.ID))
	}
}
