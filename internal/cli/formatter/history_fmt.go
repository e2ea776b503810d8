package formatter

import (
	"fmt"
	"strings"

	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/scoring"
)

// FormatHistoryTable renders the history list as a table, newest last.
func FormatHistoryTable(cat *catalog.Catalog, records []*domain.Record) string {
	headers := []string{"ID", "DATE", "TYPE", "PROFILE", "LEVEL", "SCORES"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanDate(r.Date),
			TypeBadge(r.Type),
			profileLabel(cat, r.ProfileID),
			levelLabel(cat, r.LevelID),
			scoreSummary(r),
		})
	}
	return RenderTable(headers, rows)
}

// scoreSummary compacts a record's per-dimension scores into one cell.
func scoreSummary(r *domain.Record) string {
	parts := make([]string, 0, len(r.Dimensions)+1)
	for _, dim := range r.Dimensions {
		parts = append(parts, Score(r.Score(dim), r.Scheme))
	}
	s := strings.Join(parts, " / ")
	if r.TotalScore != nil {
		s += Dim("  Σ ") + Bold(Score(*r.TotalScore, r.Scheme))
	}
	return s
}

// FormatComparison renders two records side by side with per-dimension deltas.
func FormatComparison(cat *catalog.Catalog, cmp *scoring.Comparison) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Baseline:"), describeRecord(cat, cmp.Previous)))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("Current: "), describeRecord(cat, cmp.Current)))

	headers := []string{"DIMENSION", "BEFORE", "AFTER", "CHANGE"}
	rows := make([][]string, 0, len(cmp.Deltas))
	for _, d := range cmp.Deltas {
		name := d.DimensionID
		if dim, ok := cat.Dimension(d.DimensionID); ok {
			name = DimensionStyle(dim.Color).Render(dim.Name)
		}
		rows = append(rows, []string{
			name,
			Score(d.Previous, cmp.Current.Scheme),
			Score(d.Current, cmp.Current.Scheme),
			deltaCell(d.Delta, d.Class),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if cmp.TotalDelta != nil {
		class := domain.DeltaSteady
		if *cmp.TotalDelta > 0 {
			class = domain.DeltaImproved
		} else if *cmp.TotalDelta < 0 {
			class = domain.DeltaDeclined
		}
		b.WriteString("\n" + Bold("Overall: ") + deltaCell(*cmp.TotalDelta, class) + "\n")
	}

	return b.String()
}

func deltaCell(delta float64, class domain.DeltaClass) string {
	arrow := "→"
	switch class {
	case domain.DeltaImproved:
		arrow = "▲"
	case domain.DeltaDeclined:
		arrow = "▼"
	}
	return DeltaStyle(class).Render(fmt.Sprintf("%s %s", arrow, scoring.FormatDelta(delta)))
}

func describeRecord(cat *catalog.Catalog, r *domain.Record) string {
	label := fmt.Sprintf("%s %s", TypeBadge(r.Type), HumanDate(r.Date))
	if r.Type == domain.TypeProfile {
		label += fmt.Sprintf("  %s / %s", profileLabel(cat, r.ProfileID), levelLabel(cat, r.LevelID))
	}
	return label
}

func profileLabel(cat *catalog.Catalog, id string) string {
	if id == "" {
		return Dim("—")
	}
	if p, ok := cat.Profile(id); ok {
		return p.Name
	}
	return id
}

func levelLabel(cat *catalog.Catalog, id string) string {
	if id == "" {
		return Dim("—")
	}
	if l, ok := cat.Level(id); ok {
		return l.Name
	}
	return id
}
