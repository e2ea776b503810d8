package domain

// AssessmentType selects which dimension set and statement lookup applies.
type AssessmentType string

const (
	TypeProfile AssessmentType = "profile"
	TypeCulture AssessmentType = "culture"
)

// RatingScheme is the value domain ratings are drawn from. It is fixed once
// per assessment at start time; scoring and narrative generation branch on it
// exactly once.
type RatingScheme string

const (
	SchemeNumeric     RatingScheme = "numeric"
	SchemeCategorical RatingScheme = "categorical"
)

// SchemeFor returns the rating scheme used by the given assessment type.
// Profile assessments rate 1-5; culture assessments use yes/not_yet/unknown.
func SchemeFor(t AssessmentType) RatingScheme {
	if t == TypeCulture {
		return SchemeCategorical
	}
	return SchemeNumeric
}

// SuggestionBand buckets a numeric dimension score for growth-suggestion lookup.
type SuggestionBand string

const (
	BandLow    SuggestionBand = "low"    // below 2.5
	BandMedium SuggestionBand = "medium" // 2.5 up to 3.5
	BandHigh   SuggestionBand = "high"   // 3.5 and up
)

// BandForScore maps a numeric dimension score onto its suggestion band.
func BandForScore(score float64) SuggestionBand {
	switch {
	case score < 2.5:
		return BandLow
	case score < 3.5:
		return BandMedium
	default:
		return BandHigh
	}
}

// DeltaClass is the three-way classification of a comparison delta.
type DeltaClass string

const (
	DeltaImproved DeltaClass = "improved"
	DeltaDeclined DeltaClass = "declined"
	DeltaSteady   DeltaClass = "steady"
)
