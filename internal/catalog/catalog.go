// Package catalog holds the read-only content dataset: profiles, levels,
// dimensions, behavioral statements, growth suggestions and score labels.
// The catalog is configuration, not logic; a default dataset is embedded and
// can be replaced wholesale with an external JSON file.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/mariekevos/gmatrix/internal/domain"
)

// Profile is a role archetype defining which levels and statement sets apply.
type Profile struct {
	ID               string   `json:"-"`
	Name             string   `json:"name"`
	LocalName        string   `json:"localName"`
	Icon             string   `json:"icon"`
	ProblemType      string   `json:"problemType"`
	Scope            string   `json:"scope"`
	CoreContribution string   `json:"coreContribution"`
	Characteristics  []string `json:"characteristics"`
	AddedValue       string   `json:"addedValue"`
	AvailableLevels  []string `json:"availableLevels"`
}

// HasLevel reports whether the given level is available for this profile.
func (p Profile) HasLevel(levelID string) bool {
	for _, l := range p.AvailableLevels {
		if l == levelID {
			return true
		}
	}
	return false
}

// Level is a growth stage within a profile.
type Level struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Independence string `json:"independence"`
	Focus        string `json:"focus"`
}

// Dimension is one competency axis along which behavior is rated.
type Dimension struct {
	ID              string `json:"-"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`
	Color           string `json:"color"`
}

// ScoreLabel is one labeled score band. Bands are stored highest-first;
// interpretation takes the first band whose Min the score meets.
type ScoreLabel struct {
	ID          string  `json:"id"`
	Min         float64 `json:"min"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// Catalog is the loaded dataset. All lookups are read-only.
type Catalog struct {
	Profiles          map[string]Profile           `json:"profiles"`
	ProfileOrder      []string                     `json:"profileOrder"`
	Levels            map[string]Level             `json:"levels"`
	LevelOrder        []string                     `json:"levelOrder"`
	Dimensions        map[string]Dimension         `json:"dimensions"`
	DimOrder          []string                     `json:"dimensionOrder"`
	CultureDimensions map[string]Dimension         `json:"cultureDimensions"`
	CultureDimOrder   []string                     `json:"cultureDimensionOrder"`
	Statements        map[string][]string          `json:"statements"`
	ScoreLabels       []ScoreLabel                 `json:"scoreLabels"`
	PercentLabels     []ScoreLabel                 `json:"percentLabels"`
	GrowthSuggestions map[string][]string          `json:"growthSuggestions"`
	LevelExpectations map[string]string            `json:"levelExpectations"`
	Timeline          map[string]map[string]string `json:"progressionTimeline"`

	logger *slog.Logger
}

// CultureMasterDimension is the synthetic bucket appended to the culture
// dimension order for master-level statements.
const CultureMasterDimension = "master"

// Profile returns the profile with the given id.
func (c *Catalog) Profile(id string) (Profile, bool) {
	p, ok := c.Profiles[id]
	if ok {
		p.ID = id
	}
	return p, ok
}

// OrderedProfiles returns all profiles in catalog order.
func (c *Catalog) OrderedProfiles() []Profile {
	out := make([]Profile, 0, len(c.ProfileOrder))
	for _, id := range c.ProfileOrder {
		if p, ok := c.Profile(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Level returns the level with the given id.
func (c *Catalog) Level(id string) (Level, bool) {
	l, ok := c.Levels[id]
	if ok {
		l.ID = id
	}
	return l, ok
}

// OrderedLevels returns the levels available for a profile, in canonical order.
func (c *Catalog) OrderedLevels(p Profile) []Level {
	out := make([]Level, 0, len(p.AvailableLevels))
	for _, id := range c.LevelOrder {
		if !p.HasLevel(id) {
			continue
		}
		if l, ok := c.Level(id); ok {
			out = append(out, l)
		}
	}
	return out
}

// Dimension returns dimension metadata for either dimension set.
func (c *Catalog) Dimension(id string) (Dimension, bool) {
	if d, ok := c.Dimensions[id]; ok {
		d.ID = id
		return d, true
	}
	if d, ok := c.CultureDimensions[id]; ok {
		d.ID = id
		return d, true
	}
	return Dimension{}, false
}

// DimensionOrder returns the canonical dimension ids for an assessment type.
// Culture assessments get the culture set with the master bucket appended.
func (c *Catalog) DimensionOrder(t domain.AssessmentType) []string {
	if t == domain.TypeCulture {
		order := append([]string(nil), c.CultureDimOrder...)
		return append(order, CultureMasterDimension)
	}
	return append([]string(nil), c.DimOrder...)
}

// StatementsFor returns the behavioral statements for one dimension of an
// assessment. Missing numeric-scheme entries degrade to a single fallback
// statement derived from the dimension description; missing culture entries
// degrade to an empty list. Either way a warning is logged and flow continues.
func (c *Catalog) StatementsFor(t domain.AssessmentType, profileID, levelID, dimensionID string) []string {
	key := c.statementKey(t, profileID, levelID, dimensionID)
	if stmts, ok := c.Statements[key]; ok {
		return stmts
	}
	c.log().Warn("missing catalog statements", "key", key)
	if t == domain.TypeCulture {
		return nil
	}
	if d, ok := c.Dimension(dimensionID); ok {
		return []string{d.LongDescription}
	}
	return nil
}

// StatementCounts returns the per-dimension statement count map snapshot used
// by a new assessment.
func (c *Catalog) StatementCounts(t domain.AssessmentType, profileID, levelID string) map[string]int {
	counts := make(map[string]int)
	for _, dim := range c.DimensionOrder(t) {
		counts[dim] = len(c.StatementsFor(t, profileID, levelID, dim))
	}
	return counts
}

func (c *Catalog) statementKey(t domain.AssessmentType, profileID, levelID, dimensionID string) string {
	if t == domain.TypeCulture {
		return "culture_" + dimensionID
	}
	return fmt.Sprintf("%s_%s_%s", profileID, levelID, dimensionID)
}

// SuggestionsFor returns growth suggestions for a (profile, dimension, band)
// combination; missing entries degrade to an empty list.
func (c *Catalog) SuggestionsFor(profileID, dimensionID string, band domain.SuggestionBand) []string {
	return c.GrowthSuggestions[fmt.Sprintf("%s_%s_%s", profileID, dimensionID, band)]
}

// Bands returns the ordered score labels for the given rating scheme.
func (c *Catalog) Bands(scheme domain.RatingScheme) []ScoreLabel {
	if scheme == domain.SchemeCategorical {
		return c.PercentLabels
	}
	return c.ScoreLabels
}

// LevelExpectation returns the narrative expectation text for a level.
func (c *Catalog) LevelExpectation(levelID string) string {
	return c.LevelExpectations[levelID]
}

// TimelineFor returns the typical progression timeline text for a
// profile/level pair, empty when not authored.
func (c *Catalog) TimelineFor(profileID, levelID string) string {
	if t, ok := c.Timeline[profileID]; ok {
		return t[levelID]
	}
	return ""
}

func (c *Catalog) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}
