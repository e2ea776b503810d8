package domain

import "time"

// Record is a completed, scored assessment. Records are immutable once
// created; history supports whole-record deletion only.
type Record struct {
	ID        string             `json:"id"`
	Type      AssessmentType     `json:"type"`
	ProfileID string             `json:"profileId,omitempty"`
	LevelID   string             `json:"levelId,omitempty"`
	Scheme    RatingScheme       `json:"scheme"`
	Date      time.Time          `json:"date"`
	Scores    map[string]float64 `json:"scores"`
	// TotalScore is the overall percentage; categorical scheme only.
	TotalScore *float64 `json:"totalScore,omitempty"`
	Dimensions []string `json:"dimensions"`
	// StatementCounts snapshots the per-dimension statement counts the record
	// was scored against, so stored scores stay recomputable even if the
	// catalog content changes later.
	StatementCounts map[string]int    `json:"statementCounts"`
	Ratings         map[string]Rating `json:"ratings"`
	Comments        map[string]string `json:"comments"`
}

// Score returns the stored score for a dimension, 0 when absent.
func (r *Record) Score(dimensionID string) float64 {
	return r.Scores[dimensionID]
}

// SameShape reports whether two records are comparable: same rating scheme
// and identical dimension sets in the same canonical order.
func (r *Record) SameShape(other *Record) bool {
	if r.Scheme != other.Scheme || len(r.Dimensions) != len(other.Dimensions) {
		return false
	}
	for i, d := range r.Dimensions {
		if other.Dimensions[i] != d {
			return false
		}
	}
	return true
}

// EvidenceEntry is a free-text example attached to one behavioral statement.
// Its lifecycle is independent of any assessment run.
type EvidenceEntry struct {
	ID             string
	ProfileID      string
	LevelID        string
	DimensionID    string
	StatementIndex int
	Date           time.Time
	Text           string
}
