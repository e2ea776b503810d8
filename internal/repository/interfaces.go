package repository

import (
	"context"
	"errors"

	"github.com/mariekevos/gmatrix/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SnapshotRepo persists the single in-progress assessment. Get returns
// (nil, nil) when no snapshot exists or the stored blob fails to parse:
// per the error-handling policy a corrupt snapshot is treated as absent,
// never surfaced as a fatal error.
type SnapshotRepo interface {
	Get(ctx context.Context) (*domain.Assessment, error)
	Put(ctx context.Context, a *domain.Assessment) error
	Clear(ctx context.Context) error
}

// HistoryRepo is the append-only store of completed assessments. Records are
// immutable; the only mutation is whole-record deletion.
type HistoryRepo interface {
	Create(ctx context.Context, r *domain.Record) error
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
	Delete(ctx context.Context, id string) error
}

// EvidenceRepo stores journal entries attached to individual statements.
type EvidenceRepo interface {
	Create(ctx context.Context, e *domain.EvidenceEntry) error
	GetByID(ctx context.Context, id string) (*domain.EvidenceEntry, error)
	Update(ctx context.Context, e *domain.EvidenceEntry) error
	Delete(ctx context.Context, id string) error
	ListByStatement(ctx context.Context, profileID, levelID, dimensionID string, statementIndex int) ([]*domain.EvidenceEntry, error)
	CountByDimension(ctx context.Context, profileID, levelID, dimensionID string) (int, error)
}

// SettingsRepo is a small key/value store for user preferences such as the
// last selected profile and level. Get returns "" for absent keys.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Setting keys.
const (
	SettingLastProfile = "last_profile"
	SettingLastLevel   = "last_level"
)
