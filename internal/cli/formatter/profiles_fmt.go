package formatter

import (
	"fmt"
	"strings"

	"github.com/mariekevos/gmatrix/internal/catalog"
)

// FormatProfilesOverview renders the catalog's profiles with their levels.
func FormatProfilesOverview(cat *catalog.Catalog) string {
	var b strings.Builder
	for i, p := range cat.OrderedProfiles() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", p.Icon, Bold(p.Name), Dim("("+p.LocalName+")")))
		b.WriteString("  " + StyleFg.Render(p.CoreContribution) + "\n")

		levels := make([]string, 0, len(p.AvailableLevels))
		for _, l := range cat.OrderedLevels(p) {
			levels = append(levels, l.Name)
		}
		b.WriteString("  " + Dim("Levels: "+strings.Join(levels, " → ")) + "\n")
	}
	return b.String()
}

// FormatProfileDetail renders one profile in full, including per-level
// expectations and progression timelines.
func FormatProfileDetail(cat *catalog.Catalog, p catalog.Profile) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s %s\n\n", p.Icon, Bold(p.Name), Dim("("+p.LocalName+")")))
	b.WriteString(detailRow("Problem type", p.ProblemType))
	b.WriteString(detailRow("Scope", p.Scope))
	b.WriteString(detailRow("Contribution", p.CoreContribution))
	b.WriteString(detailRow("Added value", p.AddedValue))

	if len(p.Characteristics) > 0 {
		b.WriteString("\n" + Header("Characteristics") + "\n")
		for _, c := range p.Characteristics {
			b.WriteString("  " + StyleGreen.Render("▸") + " " + c + "\n")
		}
	}

	b.WriteString("\n" + Header("Levels") + "\n")
	for _, l := range cat.OrderedLevels(p) {
		b.WriteString(Bold(l.Name) + " " + Dim(l.Independence) + "\n")
		b.WriteString("  " + StyleFg.Render(l.Description) + "\n")
		if exp := cat.LevelExpectation(l.ID); exp != "" {
			b.WriteString("  " + Dim(exp) + "\n")
		}
		if tl := cat.TimelineFor(p.ID, l.ID); tl != "" {
			b.WriteString("  " + StylePurple.Render("Typically: ") + Dim(tl) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func detailRow(label, value string) string {
	return Dim(fmt.Sprintf("%-14s", label+":")) + " " + StyleFg.Render(value) + "\n"
}
