package formatter

import (
	"fmt"
	"strings"

	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/mariekevos/gmatrix/internal/narrative"
	"github.com/mariekevos/gmatrix/internal/service"
)

const scoreBarWidth = 20

// barScale returns the score maximum and baseline tick for a scheme.
func barScale(scheme domain.RatingScheme) (max, baseline float64) {
	if scheme == domain.SchemeCategorical {
		return 100, 80
	}
	return 5, 3.5
}

// FormatResults renders the full result screen for a completed assessment:
// per-dimension bars with band labels, the overall score when present, the
// narrative summary and the growth suggestions.
func FormatResults(res *service.Results) string {
	var b strings.Builder

	max, baseline := barScale(res.Record.Scheme)

	rows := make([][]string, 0, len(res.Dimensions))
	for _, d := range res.Dimensions {
		style := DimensionStyle(d.Dimension.Color)
		rows = append(rows, []string{
			style.Render(d.Dimension.Name),
			ScoreBar(d.Score, max, baseline, scoreBarWidth, style),
			Bold(Score(d.Score, res.Record.Scheme)),
			StyleDim.Render(d.Band.Label),
		})
	}
	b.WriteString(RenderTable([]string{"DIMENSION", "", "SCORE", ""}, rows))

	if res.Total != nil {
		b.WriteString("\n")
		b.WriteString(Bold("Overall: ") + Score(*res.Total, res.Record.Scheme))
		if res.TotalBand != nil {
			b.WriteString("  " + StyleDim.Render(res.TotalBand.Label))
		}
		b.WriteString("\n")
	}

	if len(res.Summary.Paragraphs) > 0 {
		b.WriteString("\n" + Header("Summary") + "\n")
		for _, p := range res.Summary.Paragraphs {
			b.WriteString(p + "\n\n")
		}
	}

	b.WriteString(FormatGrowth(res.Growth))

	return b.String()
}

// FormatGrowth renders the growth suggestion section.
func FormatGrowth(g narrative.Growth) string {
	var b strings.Builder
	b.WriteString(Header("Growth") + "\n")

	if g.AllStrong {
		b.WriteString(StyleGreen.Render("◆ ") + narrative.AllStrongText() + "\n")
		return b.String()
	}

	if len(g.Deepen) > 0 {
		b.WriteString(Bold("Deepen your current level") + "\n")
		for _, item := range g.Deepen {
			b.WriteString(growthLine(item))
		}
	}
	if len(g.Prepare) > 0 {
		if len(g.Deepen) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold("Prepare for the next level") + "\n")
		for _, item := range g.Prepare {
			b.WriteString(growthLine(item))
		}
	}

	for i, gap := range g.Gaps {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(gap.Name), StyleDim.Render(fmt.Sprintf("(%.0f%%)", gap.Score))))
		for _, st := range gap.Statements {
			marker := StyleYellow.Render("○")
			if st.Rating == domain.RatingDontKnow {
				marker = StyleDim.Render("?")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", marker, st.Text))
		}
	}

	return b.String()
}

func growthLine(item narrative.GrowthItem) string {
	label := ""
	if item.Dimension != "" {
		label = StylePurple.Render(item.Dimension) + StyleDim.Render(" · ")
	}
	return fmt.Sprintf("  %s %s%s\n", StyleGreen.Render("▸"), label, item.Text)
}
