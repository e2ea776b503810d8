package narrative

import (
	"testing"

	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrowth_BucketsByScore(t *testing.T) {
	cat := loadCatalog(t)
	rec := numericRecord(map[string]float64{"mastery": 3.0, "autonomy": 3.8, "impact": 4.5, "ownership": 4.7})

	g := BuildGrowth(cat, rec)
	assert.False(t, g.AllStrong)

	require.NotEmpty(t, g.Deepen)
	for _, item := range g.Deepen {
		assert.Equal(t, "Mastery", item.Dimension, "only the below-3.5 dimension feeds the deepen bucket")
	}
	require.NotEmpty(t, g.Prepare)
	for _, item := range g.Prepare {
		assert.Equal(t, "Autonomy", item.Dimension, "near-max dimensions get no suggestions")
	}
}

func TestBuildGrowth_AllNearMax(t *testing.T) {
	cat := loadCatalog(t)
	rec := numericRecord(map[string]float64{"mastery": 4.5, "autonomy": 4.8, "impact": 4.6, "ownership": 5.0})

	g := BuildGrowth(cat, rec)
	assert.True(t, g.AllStrong)
	assert.Empty(t, g.Deepen)
	assert.Empty(t, g.Prepare)
}

func TestBuildGrowth_CrossDimensionLeadsDeepen(t *testing.T) {
	cat := loadCatalog(t)
	rec := numericRecord(map[string]float64{"mastery": 2.5, "autonomy": 3.0, "impact": 3.0, "ownership": 4.0})

	g := BuildGrowth(cat, rec)
	require.NotEmpty(t, g.Deepen)
	assert.Equal(t, "Cross-dimension", g.Deepen[0].Dimension)
	assert.Contains(t, g.Deepen[0].Text, "strengthening Mastery first")
}

func TestBuildGrowth_CategoricalListsOpenStatements(t *testing.T) {
	cat := loadCatalog(t)
	dims := []string{"collaboration", "candor", "craftsmanship", "master"}
	counts := map[string]int{}
	for _, d := range dims {
		counts[d] = len(cat.StatementsFor(domain.TypeCulture, "", "", d))
	}

	ratings := map[string]domain.Rating{"collaboration_0": domain.RatingYes}
	for i := 1; i < counts["collaboration"]; i++ {
		ratings[testutil.RatingKey("collaboration", i)] = domain.RatingNotYet
	}

	rec := testutil.NewTestRecord(dims,
		testutil.WithRecordType(domain.TypeCulture),
		testutil.WithScores(map[string]float64{"collaboration": 33, "candor": 100, "craftsmanship": 85, "master": 90}),
		testutil.WithRecordRatings(ratings),
	)
	rec.StatementCounts = counts

	g := BuildGrowth(cat, rec)
	assert.False(t, g.AllStrong)
	require.Len(t, g.Gaps, 1, "only dimensions under the cutoff appear")
	gap := g.Gaps[0]
	assert.Equal(t, "collaboration", gap.DimensionID)
	assert.Len(t, gap.Statements, counts["collaboration"]-1)
	for _, st := range gap.Statements {
		assert.Equal(t, domain.RatingNotYet, st.Rating)
	}
}

func TestBuildGrowth_CategoricalAllStrong(t *testing.T) {
	cat := loadCatalog(t)
	dims := []string{"collaboration", "candor", "craftsmanship", "master"}
	rec := testutil.NewTestRecord(dims,
		testutil.WithRecordType(domain.TypeCulture),
		testutil.WithScores(map[string]float64{"collaboration": 80, "candor": 100, "craftsmanship": 85, "master": 90}),
	)

	g := BuildGrowth(cat, rec)
	assert.True(t, g.AllStrong, "80% sits on the strong cutoff")
}
