package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/db"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/repository"
	"github.com/mariekevos/gmatrix/internal/scoring"
)

type assessmentService struct {
	catalog   *catalog.Catalog
	snapshots repository.SnapshotRepo
	settings  repository.SettingsRepo
	uow       db.UnitOfWork
	logger    *slog.Logger
}

// NewAssessmentService creates the assessment state machine service.
func NewAssessmentService(cat *catalog.Catalog, snapshots repository.SnapshotRepo, settings repository.SettingsRepo, uow db.UnitOfWork, logger *slog.Logger) AssessmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &assessmentService{catalog: cat, snapshots: snapshots, settings: settings, uow: uow, logger: logger}
}

func (s *assessmentService) Start(ctx context.Context, t domain.AssessmentType, profileID, levelID string) (*domain.Assessment, error) {
	if t == domain.TypeProfile {
		profile, ok := s.catalog.Profile(profileID)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", profileID)
		}
		if _, ok := s.catalog.Level(levelID); !ok {
			return nil, fmt.Errorf("unknown level %q", levelID)
		}
		if !profile.HasLevel(levelID) {
			return nil, fmt.Errorf("level %q is not available for profile %q", levelID, profileID)
		}
	} else {
		profileID, levelID = "", ""
	}

	dims := s.catalog.DimensionOrder(t)
	counts := s.catalog.StatementCounts(t, profileID, levelID)
	a := domain.NewAssessment(t, profileID, levelID, dims, counts, time.Now().UTC())

	if err := s.snapshots.Put(ctx, a); err != nil {
		return nil, err
	}
	s.rememberSelection(ctx, profileID, levelID)
	return a, nil
}

// rememberSelection stores the last used profile and level as wizard
// defaults. Failures only cost convenience, so they are logged and swallowed.
func (s *assessmentService) rememberSelection(ctx context.Context, profileID, levelID string) {
	if profileID == "" {
		return
	}
	if err := s.settings.Set(ctx, repository.SettingLastProfile, profileID); err != nil {
		s.logger.Warn("could not remember profile selection", "error", err)
	}
	if err := s.settings.Set(ctx, repository.SettingLastLevel, levelID); err != nil {
		s.logger.Warn("could not remember level selection", "error", err)
	}
}

func (s *assessmentService) Current(ctx context.Context) (*domain.Assessment, error) {
	return s.snapshots.Get(ctx)
}

func (s *assessmentService) Resume(ctx context.Context) (*domain.Assessment, error) {
	a, err := s.snapshots.Get(ctx)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("no assessment in progress")
	}
	a.Cursor = a.FirstIncompleteDimension()
	s.persist(ctx, a)
	return a, nil
}

func (s *assessmentService) Rate(ctx context.Context, a *domain.Assessment, key domain.Key, value domain.Rating) error {
	if err := a.Rate(key, value); err != nil {
		return err
	}
	s.persist(ctx, a)
	return nil
}

func (s *assessmentService) SetComment(ctx context.Context, a *domain.Assessment, key, text string) error {
	if err := a.SetComment(key, text); err != nil {
		return err
	}
	s.persist(ctx, a)
	return nil
}

func (s *assessmentService) Advance(ctx context.Context, a *domain.Assessment) (*domain.Record, error) {
	if a.AtLastDimension() {
		return s.Finish(ctx, a)
	}
	a.Cursor++
	s.persist(ctx, a)
	return nil, nil
}

func (s *assessmentService) Retreat(ctx context.Context, a *domain.Assessment) (bool, error) {
	if a.Cursor == 0 {
		return false, nil
	}
	a.Cursor--
	s.persist(ctx, a)
	return true, nil
}

func (s *assessmentService) Discard(ctx context.Context) error {
	return s.snapshots.Clear(ctx)
}

func (s *assessmentService) Finish(ctx context.Context, a *domain.Assessment) (*domain.Record, error) {
	result := scoring.Score(a)
	rec := &domain.Record{
		ID:              uuid.New().String(),
		Type:            a.Type,
		ProfileID:       a.ProfileID,
		LevelID:         a.LevelID,
		Scheme:          a.Scheme,
		Date:            time.Now().UTC(),
		Scores:          result.Scores,
		TotalScore:      result.Total,
		Dimensions:      append([]string(nil), a.Dimensions...),
		StatementCounts: a.StatementCounts,
		Ratings:         copyRatings(a.Ratings),
		Comments:        copyComments(a.Comments),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteHistoryRepo(tx).Create(ctx, rec); err != nil {
			return err
		}
		return repository.NewSQLiteSnapshotRepo(tx).Clear(ctx)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// persist writes the snapshot after a mutation. Write failures must not
// interrupt the assessment flow; they are logged and the in-memory state
// stays authoritative for the rest of the run.
func (s *assessmentService) persist(ctx context.Context, a *domain.Assessment) {
	if err := s.snapshots.Put(ctx, a); err != nil {
		s.logger.Warn("could not persist in-progress assessment", "error", err)
	}
}

func copyRatings(m map[string]domain.Rating) map[string]domain.Rating {
	out := make(map[string]domain.Rating, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyComments(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
