package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// Assessment options
type AssessmentOption func(*domain.Assessment)

func WithRating(dim string, index int, value domain.Rating) AssessmentOption {
	return func(a *domain.Assessment) {
		a.Ratings[domain.Key{Dimension: dim, Index: index}.String()] = value
	}
}

// WithAllRatings rates every statement of every dimension with one value.
func WithAllRatings(value domain.Rating) AssessmentOption {
	return func(a *domain.Assessment) {
		for _, dim := range a.Dimensions {
			for i := 0; i < a.StatementCounts[dim]; i++ {
				a.Ratings[domain.Key{Dimension: dim, Index: i}.String()] = value
			}
		}
	}
}

func WithCursor(cursor int) AssessmentOption {
	return func(a *domain.Assessment) {
		a.Cursor = cursor
	}
}

func WithComment(key, text string) AssessmentOption {
	return func(a *domain.Assessment) {
		a.Comments[key] = text
	}
}

// NewTestAssessment builds a profile assessment over the given dimensions,
// three statements each.
func NewTestAssessment(dims []string, opts ...AssessmentOption) *domain.Assessment {
	counts := make(map[string]int, len(dims))
	for _, d := range dims {
		counts[d] = 3
	}
	a := domain.NewAssessment(domain.TypeProfile, "maker", "medior", dims, counts, time.Now().UTC())
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestCultureAssessment builds a culture assessment over the given
// dimensions, two statements each.
func NewTestCultureAssessment(dims []string, opts ...AssessmentOption) *domain.Assessment {
	counts := make(map[string]int, len(dims))
	for _, d := range dims {
		counts[d] = 2
	}
	a := domain.NewAssessment(domain.TypeCulture, "", "", dims, counts, time.Now().UTC())
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Record options
type RecordOption func(*domain.Record)

func WithScores(scores map[string]float64) RecordOption {
	return func(r *domain.Record) {
		r.Scores = scores
	}
}

func WithTotalScore(total float64) RecordOption {
	return func(r *domain.Record) {
		r.TotalScore = &total
	}
}

func WithDate(d time.Time) RecordOption {
	return func(r *domain.Record) {
		r.Date = d
	}
}

func WithRecordType(t domain.AssessmentType) RecordOption {
	return func(r *domain.Record) {
		r.Type = t
		r.Scheme = domain.SchemeFor(t)
		if t == domain.TypeCulture {
			r.ProfileID = ""
			r.LevelID = ""
		}
	}
}

func WithRecordRatings(ratings map[string]domain.Rating) RecordOption {
	return func(r *domain.Record) {
		r.Ratings = ratings
	}
}

// NewTestRecord builds a completed profile record over the given dimensions
// with a flat score of 3.0 and three statements per dimension.
func NewTestRecord(dims []string, opts ...RecordOption) *domain.Record {
	scores := make(map[string]float64, len(dims))
	counts := make(map[string]int, len(dims))
	for _, d := range dims {
		scores[d] = 3.0
		counts[d] = 3
	}
	r := &domain.Record{
		ID:              uuid.New().String(),
		Type:            domain.TypeProfile,
		ProfileID:       "maker",
		LevelID:         "medior",
		Scheme:          domain.SchemeNumeric,
		Date:            time.Now().UTC(),
		Scores:          scores,
		Dimensions:      append([]string(nil), dims...),
		StatementCounts: counts,
		Ratings:         map[string]domain.Rating{},
		Comments:        map[string]string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestEvidence builds a journal entry for the maker/medior statement grid.
func NewTestEvidence(dim string, index int, text string) *domain.EvidenceEntry {
	return &domain.EvidenceEntry{
		ID:             uuid.New().String(),
		ProfileID:      "maker",
		LevelID:        "medior",
		DimensionID:    dim,
		StatementIndex: index,
		Date:           time.Now().UTC(),
		Text:           text,
	}
}

// RatingKey is shorthand for building a rating map key in tests.
func RatingKey(dim string, index int) string {
	return fmt.Sprintf("%s_%d", dim, index)
}
