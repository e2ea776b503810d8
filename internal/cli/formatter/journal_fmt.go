package formatter

import (
	"fmt"

	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// FormatEvidenceTable renders journal entries for one statement.
func FormatEvidenceTable(entries []*domain.EvidenceEntry) string {
	headers := []string{"ID", "DATE", "EVIDENCE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanDate(e.Date),
			Truncate(e.Text, 60),
		})
	}
	return RenderTable(headers, rows)
}

// FormatStatementContext renders the statement a journal entry belongs to.
func FormatStatementContext(cat *catalog.Catalog, profileID, levelID, dimensionID string, index int) string {
	name := dimensionID
	color := ""
	if dim, ok := cat.Dimension(dimensionID); ok {
		name = dim.Name
		color = dim.Color
	}
	header := fmt.Sprintf("%s %s", DimensionStyle(color).Render(name), Dim(fmt.Sprintf("(%s / %s, statement %d)", profileLabel(cat, profileID), levelLabel(cat, levelID), index+1)))

	statements := cat.StatementsFor(domain.TypeProfile, profileID, levelID, dimensionID)
	if index >= 0 && index < len(statements) {
		header += "\n" + StyleFg.Render(statements[index])
	}
	return header
}
