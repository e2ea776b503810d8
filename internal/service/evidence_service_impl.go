package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/repository"
)

type evidenceService struct {
	catalog  *catalog.Catalog
	evidence repository.EvidenceRepo
}

func NewEvidenceService(cat *catalog.Catalog, evidence repository.EvidenceRepo) EvidenceService {
	return &evidenceService{catalog: cat, evidence: evidence}
}

func (s *evidenceService) Add(ctx context.Context, profileID, levelID, dimensionID string, statementIndex int, text string) (*domain.EvidenceEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("evidence text is required")
	}
	if err := s.validateStatement(profileID, levelID, dimensionID, statementIndex); err != nil {
		return nil, err
	}
	e := &domain.EvidenceEntry{
		ID:             uuid.New().String(),
		ProfileID:      profileID,
		LevelID:        levelID,
		DimensionID:    dimensionID,
		StatementIndex: statementIndex,
		Date:           time.Now().UTC(),
		Text:           text,
	}
	if err := s.evidence.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *evidenceService) Edit(ctx context.Context, id, text string) (*domain.EvidenceEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("evidence text is required")
	}
	e, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Text = text
	if err := s.evidence.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *evidenceService) Remove(ctx context.Context, id string) error {
	return s.evidence.Delete(ctx, id)
}

func (s *evidenceService) ForStatement(ctx context.Context, profileID, levelID, dimensionID string, statementIndex int) ([]*domain.EvidenceEntry, error) {
	return s.evidence.ListByStatement(ctx, profileID, levelID, dimensionID, statementIndex)
}

func (s *evidenceService) CountForDimension(ctx context.Context, profileID, levelID, dimensionID string) (int, error) {
	return s.evidence.CountByDimension(ctx, profileID, levelID, dimensionID)
}

func (s *evidenceService) validateStatement(profileID, levelID, dimensionID string, statementIndex int) error {
	if _, ok := s.catalog.Profile(profileID); !ok {
		return fmt.Errorf("unknown profile %q", profileID)
	}
	if _, ok := s.catalog.Level(levelID); !ok {
		return fmt.Errorf("unknown level %q", levelID)
	}
	statements := s.catalog.StatementsFor(domain.TypeProfile, profileID, levelID, dimensionID)
	if len(statements) == 0 {
		return fmt.Errorf("unknown dimension %q", dimensionID)
	}
	if statementIndex < 0 || statementIndex >= len(statements) {
		return fmt.Errorf("statement index %d out of range for %s (have %d)", statementIndex, dimensionID, len(statements))
	}
	return nil
}
