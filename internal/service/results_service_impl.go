package service

import (
	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/narrative"
	"github.com/mariekevos/gmatrix/internal/scoring"
)

type resultsService struct {
	catalog *catalog.Catalog
}

func NewResultsService(cat *catalog.Catalog) ResultsService {
	return &resultsService{catalog: cat}
}

// Build assembles the result screen model for a record. Scores are taken
// from the record itself; interpretation bands, narrative and growth are
// recomputed against the current catalog.
func (s *resultsService) Build(rec *domain.Record) *Results {
	bands := s.catalog.Bands(rec.Scheme)

	dims := make([]DimensionResult, 0, len(rec.Dimensions))
	for _, id := range rec.Dimensions {
		dim, ok := s.catalog.Dimension(id)
		if !ok {
			dim = catalog.Dimension{ID: id, Name: id}
		}
		score := rec.Score(id)
		dims = append(dims, DimensionResult{
			Dimension: dim,
			Score:     score,
			Band:      scoring.Interpret(score, bands),
		})
	}

	res := &Results{
		Record:     rec,
		Dimensions: dims,
		Total:      rec.TotalScore,
		Summary:    narrative.BuildSummary(s.catalog, rec),
		Growth:     narrative.BuildGrowth(s.catalog, rec),
	}
	if rec.TotalScore != nil {
		band := scoring.Interpret(*rec.TotalScore, bands)
		res.TotalBand = &band
	}
	return res
}
