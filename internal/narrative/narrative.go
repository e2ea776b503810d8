// Package narrative turns computed scores into the textual result summary and
// growth suggestions. Generation is rule-based and pure: the same record and
// catalog always produce the same text blocks, in a fixed order.
package narrative

import (
	"fmt"
	"strings"

	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/scoring"
)

// Foundation and influence dimensions for the development-order check. The
// model treats mastery and autonomy as the base that sustains impact and
// ownership.
var (
	foundationDims = []string{"mastery", "autonomy"}
	influenceDims  = []string{"impact", "ownership"}
)

// developmentOrderMargin is how far one pair's average must exceed the other
// before the directional message is emitted, on the 1-5 scale.
const developmentOrderMargin = 0.3

// nearMaxThreshold excludes dimensions from growth suggestions; scores at or
// above it need no suggestion.
const nearMaxThreshold = 4.5

// strongPercentCutoff is the categorical all-strong boundary.
const strongPercentCutoff = 80

// Summary is the ordered list of narrative paragraphs for one record.
type Summary struct {
	Paragraphs []string
}

// BuildSummary evaluates the narrative rules in fixed order. Every rule is
// independently optional; paragraphs appear only when their condition holds.
func BuildSummary(cat *catalog.Catalog, rec *domain.Record) Summary {
	var s Summary
	add := func(p string) {
		if p != "" {
			s.Paragraphs = append(s.Paragraphs, p)
		}
	}

	add(contextParagraph(cat, rec))
	if rec.Scheme == domain.SchemeCategorical && rec.TotalScore != nil {
		band := scoring.Interpret(*rec.TotalScore, cat.Bands(rec.Scheme))
		add(fmt.Sprintf("Overall you recognise %.0f%% of the behaviours — %s.", *rec.TotalScore, strings.ToLower(band.Description)))
	}

	strongest, weakest := scoring.StrongestAndWeakest(rec.Dimensions, rec.Scores)
	add(strengthParagraph(cat, rec, strongest))
	if showWeakest(rec, strongest, weakest) {
		add(weaknessParagraph(cat, rec, weakest))
	}

	if rec.Scheme == domain.SchemeNumeric {
		add(developmentOrderParagraph(cat, rec))
		add(readinessParagraph(cat, rec, weakest))
	} else {
		add(gapEnumeration(cat, rec, domain.RatingNotYet, "not yet"))
		add(gapEnumeration(cat, rec, domain.RatingDontKnow, "don't know"))
	}
	return s
}

func contextParagraph(cat *catalog.Catalog, rec *domain.Record) string {
	if rec.Type == domain.TypeCulture {
		return "This culture scan reflects how strongly you recognise the organisation's shared behaviours in your own daily work."
	}
	profile, _ := cat.Profile(rec.ProfileID)
	level, _ := cat.Level(rec.LevelID)
	expectation := cat.LevelExpectation(rec.LevelID)
	if expectation == "" {
		return ""
	}
	return fmt.Sprintf("As a %s at %s level, you are expected to %s.", profile.Name, level.Name, expectation)
}

func strengthParagraph(cat *catalog.Catalog, rec *domain.Record, strongest string) string {
	dim, ok := cat.Dimension(strongest)
	if !ok {
		return ""
	}
	band := scoring.Interpret(rec.Score(strongest), cat.Bands(rec.Scheme))
	return fmt.Sprintf("Your strongest dimension is %s (%s) — %s.",
		dim.Name, formatScore(rec.Scheme, rec.Score(strongest)), strings.ToLower(band.Description))
}

func weaknessParagraph(cat *catalog.Catalog, rec *domain.Record, weakest string) string {
	dim, ok := cat.Dimension(weakest)
	if !ok {
		return ""
	}
	band := scoring.Interpret(rec.Score(weakest), cat.Bands(rec.Scheme))
	return fmt.Sprintf("Your growth opportunity is in %s (%s) — %s.",
		dim.Name, formatScore(rec.Scheme, rec.Score(weakest)), strings.ToLower(band.Description))
}

// showWeakest omits the weakness paragraph when it would repeat the strength:
// numeric assessments skip it when strongest and weakest coincide, categorical
// ones when the strongest score does not actually exceed the weakest.
func showWeakest(rec *domain.Record, strongest, weakest string) bool {
	if rec.Scheme == domain.SchemeCategorical {
		return rec.Score(strongest) > rec.Score(weakest)
	}
	return strongest != weakest
}

func developmentOrderParagraph(cat *catalog.Catalog, rec *domain.Record) string {
	foundation, ok1 := pairAverage(rec, foundationDims)
	influence, ok2 := pairAverage(rec, influenceDims)
	if !ok1 || !ok2 {
		return ""
	}
	fNames := dimensionNames(cat, foundationDims)
	iNames := dimensionNames(cat, influenceDims)
	fScores := pairScores(rec, foundationDims)
	iScores := pairScores(rec, influenceDims)

	if foundation >= influence+developmentOrderMargin {
		return fmt.Sprintf("Your %s scores (%s) are stronger than %s (%s). This is consistent with the natural development order — foundation first, then influence.",
			fNames, fScores, iNames, iScores)
	}
	if influence >= foundation+developmentOrderMargin {
		return fmt.Sprintf("Your %s scores (%s) are higher than %s (%s). This is an unusual pattern — consider strengthening your foundations to sustain your influence.",
			iNames, iScores, fNames, fScores)
	}
	return ""
}

func readinessParagraph(cat *catalog.Catalog, rec *domain.Record, weakest string) string {
	allAbove40, allAbove35, anyBelow25 := true, true, false
	for _, d := range rec.Dimensions {
		s := rec.Score(d)
		if s < 4.0 {
			allAbove40 = false
		}
		if s < 3.5 {
			allAbove35 = false
		}
		if s < 2.5 {
			anyBelow25 = true
		}
	}
	switch {
	case allAbove40:
		return "All dimensions are strong. Consider how Master-level behaviours — coaching, knowledge transfer, and organisational influence — can be your next growth area."
	case allAbove35:
		return "Your scores suggest readiness for the next level. All dimensions are at 3.5 or above."
	case anyBelow25:
		dim, _ := cat.Dimension(weakest)
		return fmt.Sprintf("Focus on strengthening %s at your current level before considering the next step.", dim.Name)
	}
	return ""
}

// gapEnumeration lists every statement carrying the given rating, grouped and
// counted per dimension in canonical order.
func gapEnumeration(cat *catalog.Catalog, rec *domain.Record, rating domain.Rating, label string) string {
	var parts []string
	total := 0
	for _, d := range rec.Dimensions {
		n := 0
		for i := 0; i < rec.StatementCounts[d]; i++ {
			if rec.Ratings[domain.Key{Dimension: d, Index: i}.String()] == rating {
				n++
			}
		}
		if n > 0 {
			dim, _ := cat.Dimension(d)
			parts = append(parts, fmt.Sprintf("%s (%d)", dim.Name, n))
			total += n
		}
	}
	if total == 0 {
		return ""
	}
	noun := "statements"
	if total == 1 {
		noun = "statement"
	}
	return fmt.Sprintf("You answered \"%s\" on %d %s: %s.", label, total, noun, strings.Join(parts, ", "))
}

func pairAverage(rec *domain.Record, dims []string) (float64, bool) {
	sum := 0.0
	for _, d := range dims {
		if _, ok := rec.Scores[d]; !ok {
			return 0, false
		}
		sum += rec.Score(d)
	}
	return sum / float64(len(dims)), true
}

func pairScores(rec *domain.Record, dims []string) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("%.1f", rec.Score(d))
	}
	return strings.Join(parts, ", ")
}

func dimensionNames(cat *catalog.Catalog, dims []string) string {
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		if dim, ok := cat.Dimension(d); ok {
			names = append(names, dim.Name)
		}
	}
	return strings.Join(names, " and ")
}

func formatScore(scheme domain.RatingScheme, score float64) string {
	if scheme == domain.SchemeCategorical {
		return fmt.Sprintf("%.0f%%", score)
	}
	return fmt.Sprintf("%.1f", score)
}
