package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	_ "embed"
)

//go:embed catalog.json
var defaultCatalog []byte

// Load reads the catalog from path, or the embedded default dataset when path
// is empty. The loaded catalog is validated before use.
func Load(path string, logger *slog.Logger) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c.logger = logger

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Validate checks the referential integrity the rest of the system relies on:
// ordered ids resolve, profiles reference known levels, and score label tables
// are present and ordered highest-first.
func (c *Catalog) Validate() error {
	if len(c.ProfileOrder) == 0 {
		return fmt.Errorf("no profiles defined")
	}
	for _, id := range c.ProfileOrder {
		p, ok := c.Profiles[id]
		if !ok {
			return fmt.Errorf("profileOrder references unknown profile %q", id)
		}
		if len(p.AvailableLevels) == 0 {
			return fmt.Errorf("profile %q has no available levels", id)
		}
		for _, lv := range p.AvailableLevels {
			if _, ok := c.Levels[lv]; !ok {
				return fmt.Errorf("profile %q references unknown level %q", id, lv)
			}
		}
	}
	for _, id := range c.LevelOrder {
		if _, ok := c.Levels[id]; !ok {
			return fmt.Errorf("levelOrder references unknown level %q", id)
		}
	}
	for _, id := range c.DimOrder {
		if _, ok := c.Dimensions[id]; !ok {
			return fmt.Errorf("dimensionOrder references unknown dimension %q", id)
		}
	}
	for _, id := range c.CultureDimOrder {
		if _, ok := c.CultureDimensions[id]; !ok {
			return fmt.Errorf("cultureDimensionOrder references unknown dimension %q", id)
		}
	}
	if len(c.ScoreLabels) == 0 || len(c.PercentLabels) == 0 {
		return fmt.Errorf("score label tables must not be empty")
	}
	for name, labels := range map[string][]ScoreLabel{"scoreLabels": c.ScoreLabels, "percentLabels": c.PercentLabels} {
		for i := 1; i < len(labels); i++ {
			if labels[i].Min >= labels[i-1].Min {
				return fmt.Errorf("%s must be ordered highest-first (%q >= %q)", name, labels[i].ID, labels[i-1].ID)
			}
		}
	}
	return nil
}

// CoverageGap describes a missing catalog entry found by CheckCoverage.
type CoverageGap struct {
	Kind string // "statements" or "suggestions"
	Key  string
}

// CheckCoverage reports every (profile, level, dimension) statement entry and
// (profile, dimension, band) suggestion entry the authored dataset is missing.
// Gaps are not fatal at runtime, but they silently shrink assessments, so the
// authoring flow surfaces them.
func (c *Catalog) CheckCoverage() []CoverageGap {
	var gaps []CoverageGap
	for _, pid := range c.ProfileOrder {
		p := c.Profiles[pid]
		for _, lid := range p.AvailableLevels {
			for _, did := range c.DimOrder {
				key := fmt.Sprintf("%s_%s_%s", pid, lid, did)
				if len(c.Statements[key]) == 0 {
					gaps = append(gaps, CoverageGap{Kind: "statements", Key: key})
				}
			}
		}
		for _, did := range c.DimOrder {
			for _, band := range []string{"low", "medium", "high"} {
				key := fmt.Sprintf("%s_%s_%s", pid, did, band)
				if len(c.GrowthSuggestions[key]) == 0 {
					gaps = append(gaps, CoverageGap{Kind: "suggestions", Key: key})
				}
			}
		}
	}
	for _, did := range append(append([]string(nil), c.CultureDimOrder...), CultureMasterDimension) {
		key := "culture_" + did
		if len(c.Statements[key]) == 0 {
			gaps = append(gaps, CoverageGap{Kind: "statements", Key: key})
		}
	}
	return gaps
}
