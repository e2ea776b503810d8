// Package scoring derives per-dimension and overall scores from ratings and
// maps scores onto interpretation bands. All functions are pure.
package scoring

import (
	"math"

	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// Result holds the computed scores of one assessment.
type Result struct {
	// Scores per dimension id, in the value range of the scheme
	// (0-5 numeric, 0-100 categorical).
	Scores map[string]float64
	// Total is the overall percentage across the whole dimension set.
	// Categorical scheme only; nil for numeric assessments.
	Total *float64
}

// Score computes all dimension scores for an in-progress assessment. The
// statement counts snapshotted at start are the denominators for the
// categorical scheme.
func Score(a *domain.Assessment) Result {
	scores := make(map[string]float64, len(a.Dimensions))
	for _, dim := range a.Dimensions {
		if a.Scheme == domain.SchemeCategorical {
			scores[dim] = CategoricalDimensionScore(a, dim)
		} else {
			scores[dim] = NumericDimensionScore(a, dim)
		}
	}
	r := Result{Scores: scores}
	if a.Scheme == domain.SchemeCategorical {
		total := categoricalTotal(a)
		r.Total = &total
	}
	return r
}

// ScoreRecord recomputes a completed record's scores from its stored ratings
// and statement-count snapshot.
func ScoreRecord(r *domain.Record) Result {
	return Score(&domain.Assessment{
		Type:            r.Type,
		Scheme:          r.Scheme,
		Ratings:         r.Ratings,
		Dimensions:      r.Dimensions,
		StatementCounts: r.StatementCounts,
	})
}

// NumericDimensionScore is the arithmetic mean of the rated statements of one
// dimension, rounded to one decimal. Unrated statements are excluded from
// both numerator and denominator; a dimension with no rated statements scores
// exactly 0.
func NumericDimensionScore(a *domain.Assessment, dimensionID string) float64 {
	var sum, count int
	for i := 0; i < a.StatementCounts[dimensionID]; i++ {
		r, ok := a.RatingFor(domain.Key{Dimension: dimensionID, Index: i})
		if !ok {
			continue
		}
		if v, ok := r.NumericValue(); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

// CategoricalDimensionScore is the percentage of this dimension's statements
// rated "yes", rounded to the nearest integer. The denominator is the full
// statement count: unrated, not_yet and unknown all count against the score.
func CategoricalDimensionScore(a *domain.Assessment, dimensionID string) float64 {
	total := a.StatementCounts[dimensionID]
	if total == 0 {
		return 0
	}
	yes := yesCount(a, dimensionID)
	return math.Round(100 * float64(yes) / float64(total))
}

func categoricalTotal(a *domain.Assessment) float64 {
	var yes, total int
	for _, dim := range a.Dimensions {
		yes += yesCount(a, dim)
		total += a.StatementCounts[dim]
	}
	if total == 0 {
		return 0
	}
	return math.Round(100 * float64(yes) / float64(total))
}

func yesCount(a *domain.Assessment, dimensionID string) int {
	n := 0
	for i := 0; i < a.StatementCounts[dimensionID]; i++ {
		if r, ok := a.RatingFor(domain.Key{Dimension: dimensionID, Index: i}); ok && r == domain.RatingYes {
			n++
		}
	}
	return n
}

// Interpret maps a score onto the first band, scanning highest-first, whose
// minimum the score meets or exceeds. Scores below every minimum fall back to
// the lowest band.
func Interpret(score float64, bands []catalog.ScoreLabel) catalog.ScoreLabel {
	for _, b := range bands {
		if score >= b.Min {
			return b
		}
	}
	if len(bands) == 0 {
		return catalog.ScoreLabel{}
	}
	return bands[len(bands)-1]
}

// StrongestAndWeakest returns the dimensions with the maximum and minimum
// scores, ties broken by canonical order.
func StrongestAndWeakest(order []string, scores map[string]float64) (strongest, weakest string) {
	if len(order) == 0 {
		return "", ""
	}
	strongest, weakest = order[0], order[0]
	for _, d := range order[1:] {
		if scores[d] > scores[strongest] {
			strongest = d
		}
		if scores[d] < scores[weakest] {
			weakest = d
		}
	}
	return strongest, weakest
}
