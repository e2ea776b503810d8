package service

import (
	"context"

	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/repository"
	"github.com/mariekevos/gmatrix/internal/scoring"
)

type historyService struct {
	history repository.HistoryRepo
}

func NewHistoryService(history repository.HistoryRepo) HistoryService {
	return &historyService{history: history}
}

func (s *historyService) List(ctx context.Context) ([]*domain.Record, error) {
	return s.history.List(ctx)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.Record, error) {
	return s.history.GetByID(ctx, id)
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.history.Delete(ctx, id)
}

func (s *historyService) Compare(ctx context.Context, id1, id2 string) (*scoring.Comparison, error) {
	a, err := s.history.GetByID(ctx, id1)
	if err != nil {
		return nil, err
	}
	b, err := s.history.GetByID(ctx, id2)
	if err != nil {
		return nil, err
	}
	return scoring.Compare(a, b)
}
