package scoring

import (
	"testing"
	"time"

	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_ArgumentOrderIrrelevant(t *testing.T) {
	older := testutil.NewTestRecord(profileDims,
		testutil.WithDate(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
		testutil.WithScores(map[string]float64{"mastery": 3.0, "autonomy": 3.0, "impact": 3.0, "ownership": 3.0}),
	)
	newer := testutil.NewTestRecord(profileDims,
		testutil.WithDate(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)),
		testutil.WithScores(map[string]float64{"mastery": 3.4, "autonomy": 2.5, "impact": 3.0, "ownership": 3.02}),
	)

	ab, err := Compare(older, newer)
	require.NoError(t, err)
	ba, err := Compare(newer, older)
	require.NoError(t, err)

	assert.Equal(t, ab, ba, "comparison must not depend on argument order")
	assert.Equal(t, older.ID, ab.Previous.ID, "baseline is always the earlier record")
}

func TestCompare_DeltaClassification(t *testing.T) {
	older := testutil.NewTestRecord(profileDims,
		testutil.WithDate(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
		testutil.WithScores(map[string]float64{"mastery": 3.0, "autonomy": 3.0, "impact": 3.0, "ownership": 3.0}),
	)
	newer := testutil.NewTestRecord(profileDims,
		testutil.WithDate(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)),
		testutil.WithScores(map[string]float64{"mastery": 3.4, "autonomy": 2.5, "impact": 3.0, "ownership": 3.04}),
	)

	cmp, err := Compare(older, newer)
	require.NoError(t, err)

	byDim := map[string]DimensionDelta{}
	for _, d := range cmp.Deltas {
		byDim[d.DimensionID] = d
	}
	assert.Equal(t, domain.DeltaImproved, byDim["mastery"].Class)
	assert.Equal(t, domain.DeltaDeclined, byDim["autonomy"].Class)
	assert.Equal(t, domain.DeltaSteady, byDim["impact"].Class)
	assert.Equal(t, domain.DeltaSteady, byDim["ownership"].Class, "a 0.04 shift sits inside the dead zone")
}

func TestCompare_CategoricalHasNoDeadZone(t *testing.T) {
	dims := []string{"collaboration", "candor", "craftsmanship", "master"}
	mkRecord := func(date time.Time, collab float64, total float64) *domain.Record {
		return testutil.NewTestRecord(dims,
			testutil.WithRecordType(domain.TypeCulture),
			testutil.WithDate(date),
			testutil.WithScores(map[string]float64{"collaboration": collab, "candor": 50, "craftsmanship": 50, "master": 50}),
			testutil.WithTotalScore(total),
		)
	}
	older := mkRecord(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 50, 50)
	newer := mkRecord(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 51, 52)

	cmp, err := Compare(older, newer)
	require.NoError(t, err)
	assert.Equal(t, domain.DeltaImproved, cmp.Deltas[0].Class, "any nonzero percent shift counts")
	require.NotNil(t, cmp.TotalDelta)
	assert.Equal(t, 2.0, *cmp.TotalDelta)
}

func TestCompare_RejectsDifferentShapes(t *testing.T) {
	numeric := testutil.NewTestRecord(profileDims)
	culture := testutil.NewTestRecord([]string{"collaboration", "candor", "craftsmanship", "master"},
		testutil.WithRecordType(domain.TypeCulture))

	_, err := Compare(numeric, culture)
	assert.Error(t, err)
}

func TestFormatDelta_Signs(t *testing.T) {
	assert.Equal(t, "+0.4", FormatDelta(0.4))
	assert.Equal(t, "-0.4", FormatDelta(-0.4))
	assert.Equal(t, "0.0", FormatDelta(0.0))
}
