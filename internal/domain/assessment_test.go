package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessment(t *testing.T) *Assessment {
	t.Helper()
	dims := []string{"mastery", "autonomy", "impact", "ownership"}
	counts := map[string]int{"mastery": 2, "autonomy": 2, "impact": 2, "ownership": 2}
	return NewAssessment(TypeProfile, "maker", "medior", dims, counts, time.Now().UTC())
}

func TestParseKey_RoundTrip(t *testing.T) {
	k := Key{Dimension: "mastery", Index: 3}
	parsed, err := ParseKey(k.String())
	require.NoError(t, err)
	assert.Equal(t, k, parsed)
}

func TestParseKey_DimensionWithUnderscores(t *testing.T) {
	parsed, err := ParseKey("craft_quality_12")
	require.NoError(t, err)
	assert.Equal(t, "craft_quality", parsed.Dimension)
	assert.Equal(t, 12, parsed.Index)
}

func TestParseKey_Malformed(t *testing.T) {
	for _, bad := range []string{"", "mastery", "mastery_", "_3", "mastery_x", "mastery_-1"} {
		_, err := ParseKey(bad)
		assert.Error(t, err, "key %q should not parse", bad)
	}
}

func TestRate_StoresAndOverwrites(t *testing.T) {
	a := newAssessment(t)
	k := Key{Dimension: "mastery", Index: 0}

	require.NoError(t, a.Rate(k, "3"))
	r, ok := a.RatingFor(k)
	require.True(t, ok)
	assert.Equal(t, Rating("3"), r)

	require.NoError(t, a.Rate(k, "5"))
	r, _ = a.RatingFor(k)
	assert.Equal(t, Rating("5"), r, "re-rating should overwrite")
}

func TestRate_UnknownDimensionFailsFast(t *testing.T) {
	a := newAssessment(t)
	err := a.Rate(Key{Dimension: "charisma", Index: 0}, "3")
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Empty(t, a.Ratings, "invalid key must not mutate state")
}

func TestRate_IndexOutOfRangeFailsFast(t *testing.T) {
	a := newAssessment(t)
	err := a.Rate(Key{Dimension: "mastery", Index: 2}, "3")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestRate_ValueOutsideScheme(t *testing.T) {
	a := newAssessment(t)
	assert.Error(t, a.Rate(Key{Dimension: "mastery", Index: 0}, "6"))
	assert.Error(t, a.Rate(Key{Dimension: "mastery", Index: 0}, RatingYes),
		"categorical value must be rejected on a numeric assessment")
}

func TestSetComment_AcceptsDimensionAndStatementKeys(t *testing.T) {
	a := newAssessment(t)

	require.NoError(t, a.SetComment("mastery", "per-dimension note"))
	require.NoError(t, a.SetComment("mastery_1", "per-statement note"))
	assert.ErrorIs(t, a.SetComment("charisma", "x"), ErrInvalidKey)
	assert.ErrorIs(t, a.SetComment("mastery_9", "x"), ErrInvalidKey)
}

func TestFirstIncompleteDimension_SkipsCompleted(t *testing.T) {
	a := newAssessment(t)
	require.NoError(t, a.Rate(Key{Dimension: "mastery", Index: 0}, "4"))
	require.NoError(t, a.Rate(Key{Dimension: "mastery", Index: 1}, "4"))
	require.NoError(t, a.Rate(Key{Dimension: "autonomy", Index: 0}, "4"))

	assert.Equal(t, 1, a.FirstIncompleteDimension(), "autonomy still has an unrated statement")
}

func TestFirstIncompleteDimension_AllRatedReturnsLast(t *testing.T) {
	a := newAssessment(t)
	for _, dim := range a.Dimensions {
		for i := 0; i < a.StatementCounts[dim]; i++ {
			require.NoError(t, a.Rate(Key{Dimension: dim, Index: i}, "3"))
		}
	}
	assert.Equal(t, len(a.Dimensions)-1, a.FirstIncompleteDimension())
}

func TestCompletion_CountsRatedStatements(t *testing.T) {
	a := newAssessment(t)
	rated, total := a.Completion()
	assert.Equal(t, 0, rated)
	assert.Equal(t, 8, total)

	require.NoError(t, a.Rate(Key{Dimension: "impact", Index: 1}, "2"))
	rated, total = a.Completion()
	assert.Equal(t, 1, rated)
	assert.Equal(t, 8, total)
}

func TestValidateRating_Categorical(t *testing.T) {
	assert.NoError(t, ValidateRating(SchemeCategorical, RatingYes))
	assert.NoError(t, ValidateRating(SchemeCategorical, RatingNotYet))
	assert.NoError(t, ValidateRating(SchemeCategorical, RatingDontKnow))
	assert.Error(t, ValidateRating(SchemeCategorical, "3"))
}

func TestBandForScore_Boundaries(t *testing.T) {
	assert.Equal(t, BandLow, BandForScore(2.4))
	assert.Equal(t, BandMedium, BandForScore(2.5))
	assert.Equal(t, BandMedium, BandForScore(3.4))
	assert.Equal(t, BandHigh, BandForScore(3.5))
}
