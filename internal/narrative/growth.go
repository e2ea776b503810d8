package narrative

import (
	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// GrowthItem is one suggestion attributed to a dimension.
type GrowthItem struct {
	Dimension string
	Text      string
}

// StatementGap is one statement not yet answered with "yes", tagged with the
// rating it did receive (empty when unrated).
type StatementGap struct {
	Text   string
	Rating domain.Rating
}

// DimensionGap lists the open statements of one below-cutoff dimension.
type DimensionGap struct {
	DimensionID string
	Name        string
	Score       float64
	Statements  []StatementGap
}

// Growth holds generated growth suggestions. Numeric assessments fill the
// Deepen/Prepare buckets; categorical ones fill Gaps. AllStrong is set when
// nothing needs suggesting.
type Growth struct {
	AllStrong bool
	Deepen    []GrowthItem
	Prepare   []GrowthItem
	Gaps      []DimensionGap
}

const allStrongText = "All your dimensions are at or near maximum. Focus on Master-level behaviours: coaching others, transferring knowledge, and expanding your influence across the organisation."

// AllStrongText is the message shown when no growth suggestions apply.
func AllStrongText() string { return allStrongText }

// BuildGrowth generates growth suggestions for a completed record.
func BuildGrowth(cat *catalog.Catalog, rec *domain.Record) Growth {
	if rec.Scheme == domain.SchemeCategorical {
		return categoricalGrowth(cat, rec)
	}
	return numericGrowth(cat, rec)
}

// numericGrowth looks up catalog suggestions per below-near-max dimension,
// bucketed into deepening the current level (score below 3.5) and preparing
// for the next (3.5 up to 4.5). A fixed cross-dimension suggestion leads the
// deepen bucket when mastery is weak while ownership is already strong.
func numericGrowth(cat *catalog.Catalog, rec *domain.Record) Growth {
	var g Growth
	for _, dimID := range rec.Dimensions {
		score := rec.Score(dimID)
		if score >= nearMaxThreshold {
			continue
		}
		dim, _ := cat.Dimension(dimID)
		for _, text := range cat.SuggestionsFor(rec.ProfileID, dimID, domain.BandForScore(score)) {
			item := GrowthItem{Dimension: dim.Name, Text: text}
			if score < 3.5 {
				g.Deepen = append(g.Deepen, item)
			} else {
				g.Prepare = append(g.Prepare, item)
			}
		}
	}

	if rec.Score("mastery") < 3.0 && rec.Score("ownership") > 3.5 {
		g.Deepen = append([]GrowthItem{{
			Dimension: "Cross-dimension",
			Text:      "Consider strengthening Mastery first — it enables sustainable Ownership.",
		}}, g.Deepen...)
	}

	g.AllStrong = len(g.Deepen) == 0 && len(g.Prepare) == 0
	return g
}

// categoricalGrowth lists, for every dimension under the strong cutoff, each
// statement not answered "yes" together with the answer it got.
func categoricalGrowth(cat *catalog.Catalog, rec *domain.Record) Growth {
	var g Growth
	for _, dimID := range rec.Dimensions {
		score := rec.Score(dimID)
		if score >= strongPercentCutoff {
			continue
		}
		dim, _ := cat.Dimension(dimID)
		statements := cat.StatementsFor(rec.Type, rec.ProfileID, rec.LevelID, dimID)
		gap := DimensionGap{DimensionID: dimID, Name: dim.Name, Score: score}
		for i, text := range statements {
			r := rec.Ratings[domain.Key{Dimension: dimID, Index: i}.String()]
			if r == domain.RatingYes {
				continue
			}
			gap.Statements = append(gap.Statements, StatementGap{Text: text, Rating: r})
		}
		if len(gap.Statements) > 0 {
			g.Gaps = append(g.Gaps, gap)
		}
	}
	g.AllStrong = len(g.Gaps) == 0
	return g
}
