package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidKey marks a rating or comment addressed at a dimension or
// statement index that is not part of the active assessment. This is a
// programming or data error and must fail fast rather than corrupt state.
var ErrInvalidKey = errors.New("statement key not in active assessment")

// Assessment is the single mutable in-progress aggregate. The dimension order
// and per-dimension statement counts are snapshotted from the catalog at start
// so that validation and cursor recovery do not depend on a live catalog.
type Assessment struct {
	Type      AssessmentType    `json:"type"`
	ProfileID string            `json:"profileId,omitempty"`
	LevelID   string            `json:"levelId,omitempty"`
	Scheme    RatingScheme      `json:"scheme"`
	Ratings   map[string]Rating `json:"ratings"`
	Comments  map[string]string `json:"comments"`
	StartedAt time.Time         `json:"startedAt"`
	Cursor    int               `json:"cursor"`

	Dimensions      []string       `json:"dimensions"`
	StatementCounts map[string]int `json:"statementCounts"`
}

// NewAssessment creates a fresh in-progress assessment with empty rating and
// comment maps and the cursor on the first dimension.
func NewAssessment(t AssessmentType, profileID, levelID string, dimensions []string, counts map[string]int, now time.Time) *Assessment {
	return &Assessment{
		Type:            t,
		ProfileID:       profileID,
		LevelID:         levelID,
		Scheme:          SchemeFor(t),
		Ratings:         make(map[string]Rating),
		Comments:        make(map[string]string),
		StartedAt:       now,
		Dimensions:      append([]string(nil), dimensions...),
		StatementCounts: counts,
	}
}

// validKey checks that k addresses a statement inside the active dimension set.
func (a *Assessment) validKey(k Key) error {
	count, ok := a.StatementCounts[k.Dimension]
	if !ok {
		return fmt.Errorf("dimension %q: %w", k.Dimension, ErrInvalidKey)
	}
	if k.Index < 0 || k.Index >= count {
		return fmt.Errorf("statement %s (dimension has %d statements): %w", k, count, ErrInvalidKey)
	}
	return nil
}

// Rate records a rating for the statement at k, overwriting any existing one.
func (a *Assessment) Rate(k Key, value Rating) error {
	if err := a.validKey(k); err != nil {
		return err
	}
	if err := ValidateRating(a.Scheme, value); err != nil {
		return err
	}
	if a.Ratings == nil {
		a.Ratings = make(map[string]Rating)
	}
	a.Ratings[k.String()] = value
	return nil
}

// SetComment stores free text for a statement key. Numeric assessments attach
// one note per dimension; those use the dimension id alone as the key, which
// is accepted as index 0 of any known dimension.
func (a *Assessment) SetComment(key string, text string) error {
	if k, err := ParseKey(key); err == nil {
		if err := a.validKey(k); err != nil {
			return err
		}
	} else if _, ok := a.StatementCounts[key]; !ok {
		return fmt.Errorf("comment key %q: %w", key, ErrInvalidKey)
	}
	if a.Comments == nil {
		a.Comments = make(map[string]string)
	}
	a.Comments[key] = text
	return nil
}

// RatingFor returns the stored rating for the statement at k, if any.
func (a *Assessment) RatingFor(k Key) (Rating, bool) {
	r, ok := a.Ratings[k.String()]
	return r, ok
}

// DimensionComplete reports whether every statement of the dimension at index
// i has been rated.
func (a *Assessment) DimensionComplete(i int) bool {
	if i < 0 || i >= len(a.Dimensions) {
		return false
	}
	dim := a.Dimensions[i]
	for j := 0; j < a.StatementCounts[dim]; j++ {
		if _, ok := a.Ratings[Key{Dimension: dim, Index: j}.String()]; !ok {
			return false
		}
	}
	return true
}

// FirstIncompleteDimension returns the index of the first dimension, in
// canonical order, containing any unrated statement. When every dimension is
// fully rated it returns the last index.
func (a *Assessment) FirstIncompleteDimension() int {
	for i := range a.Dimensions {
		if !a.DimensionComplete(i) {
			return i
		}
	}
	return len(a.Dimensions) - 1
}

// AtLastDimension reports whether the cursor sits on the final dimension.
func (a *Assessment) AtLastDimension() bool {
	return a.Cursor >= len(a.Dimensions)-1
}

// Completion returns rated and total statement counts across all dimensions.
func (a *Assessment) Completion() (rated, total int) {
	for dim, count := range a.StatementCounts {
		total += count
		for j := 0; j < count; j++ {
			if _, ok := a.Ratings[Key{Dimension: dim, Index: j}.String()]; ok {
				rated++
			}
		}
	}
	return rated, total
}
