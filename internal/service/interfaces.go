package service

import (
	"context"

	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/narrative"
	"github.com/mariekevos/gmatrix/internal/scoring"
)

// AssessmentService drives the assessment state machine. The in-progress
// aggregate is owned by the caller and passed explicitly; every mutation is
// persisted to the snapshot store immediately, so no rating is lost on an
// interrupted run.
type AssessmentService interface {
	// Start begins a fresh assessment, discarding any existing snapshot.
	// For profile assessments both profileID and levelID are required; the
	// culture type ignores them.
	Start(ctx context.Context, t domain.AssessmentType, profileID, levelID string) (*domain.Assessment, error)
	// Current returns the persisted in-progress assessment, nil when none.
	Current(ctx context.Context) (*domain.Assessment, error)
	// Resume rehydrates the snapshot and recomputes the cursor: the first
	// dimension with any unrated statement, or the last when all are rated.
	Resume(ctx context.Context) (*domain.Assessment, error)
	Rate(ctx context.Context, a *domain.Assessment, key domain.Key, value domain.Rating) error
	SetComment(ctx context.Context, a *domain.Assessment, key, text string) error
	// Advance moves the cursor forward. Advancing past the last dimension
	// finishes the assessment instead and returns the completed record.
	Advance(ctx context.Context, a *domain.Assessment) (*domain.Record, error)
	// Retreat moves the cursor back, reporting false at the first dimension
	// so the caller can offer a return to level selection.
	Retreat(ctx context.Context, a *domain.Assessment) (bool, error)
	Discard(ctx context.Context) error
	// Finish scores the assessment, appends the record to history and clears
	// the snapshot in one transaction.
	Finish(ctx context.Context, a *domain.Assessment) (*domain.Record, error)
}

// HistoryService exposes the append-only log of completed assessments.
type HistoryService interface {
	List(ctx context.Context) ([]*domain.Record, error)
	Get(ctx context.Context, id string) (*domain.Record, error)
	Delete(ctx context.Context, id string) error
	// Compare loads two records and computes per-dimension deltas with the
	// earlier record as baseline. Records of different schemes or dimension
	// sets are rejected.
	Compare(ctx context.Context, id1, id2 string) (*scoring.Comparison, error)
}

// EvidenceService manages journal entries attached to statements.
type EvidenceService interface {
	Add(ctx context.Context, profileID, levelID, dimensionID string, statementIndex int, text string) (*domain.EvidenceEntry, error)
	Edit(ctx context.Context, id, text string) (*domain.EvidenceEntry, error)
	Remove(ctx context.Context, id string) error
	ForStatement(ctx context.Context, profileID, levelID, dimensionID string, statementIndex int) ([]*domain.EvidenceEntry, error)
	CountForDimension(ctx context.Context, profileID, levelID, dimensionID string) (int, error)
}

// DimensionResult is one dimension's scored outcome prepared for rendering.
type DimensionResult struct {
	Dimension catalog.Dimension
	Score     float64
	Band      catalog.ScoreLabel
}

// Results is everything the result screen needs for one record.
type Results struct {
	Record     *domain.Record
	Dimensions []DimensionResult
	Total      *float64
	TotalBand  *catalog.ScoreLabel
	Summary    narrative.Summary
	Growth     narrative.Growth
}

// ResultsService assembles scores, interpretations, narrative and growth
// suggestions for a completed record.
type ResultsService interface {
	Build(rec *domain.Record) *Results
}

// Settings exposes remembered user preferences.
type Settings interface {
	LastSelection(ctx context.Context) (profileID, levelID string)
}
