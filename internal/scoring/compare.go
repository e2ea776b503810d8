package scoring

import (
	"fmt"
	"math"

	"github.com/mariekevos/gmatrix/internal/domain"
)

// numericDeadZone is the delta magnitude below which a numeric-scheme change
// counts as steady. Percentage deltas use exact zero.
const numericDeadZone = 0.05

// DimensionDelta is one per-dimension comparison outcome.
type DimensionDelta struct {
	DimensionID string
	Previous    float64
	Current     float64
	Delta       float64
	Class       domain.DeltaClass
}

// Comparison is the pairwise comparison of two history records. Previous is
// always the chronologically earlier record regardless of argument order.
type Comparison struct {
	Previous *domain.Record
	Current  *domain.Record
	Deltas   []DimensionDelta
	// TotalDelta compares overall percentages; categorical scheme only.
	TotalDelta *float64
}

// Compare orders two records chronologically and computes per-dimension
// deltas (current minus previous). Records with different rating schemes or
// dimension sets are not comparable.
func Compare(a, b *domain.Record) (*Comparison, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("assessments are not comparable: different scheme or dimension set")
	}
	prev, cur := a, b
	if prev.Date.After(cur.Date) {
		prev, cur = cur, prev
	}

	deadZone := numericDeadZone
	if prev.Scheme == domain.SchemeCategorical {
		deadZone = 0
	}

	c := &Comparison{Previous: prev, Current: cur}
	for _, dim := range prev.Dimensions {
		delta := cur.Score(dim) - prev.Score(dim)
		c.Deltas = append(c.Deltas, DimensionDelta{
			DimensionID: dim,
			Previous:    prev.Score(dim),
			Current:     cur.Score(dim),
			Delta:       delta,
			Class:       classify(delta, deadZone),
		})
	}
	if prev.TotalScore != nil && cur.TotalScore != nil {
		td := *cur.TotalScore - *prev.TotalScore
		c.TotalDelta = &td
	}
	return c, nil
}

func classify(delta, deadZone float64) domain.DeltaClass {
	switch {
	case delta > deadZone:
		return domain.DeltaImproved
	case delta < -deadZone:
		return domain.DeltaDeclined
	default:
		return domain.DeltaSteady
	}
}

// FormatDelta renders a signed one-decimal delta string such as "+0.4".
func FormatDelta(delta float64) string {
	rounded := math.Round(delta*10) / 10
	if rounded > 0 {
		return fmt.Sprintf("+%.1f", rounded)
	}
	return fmt.Sprintf("%.1f", rounded)
}
