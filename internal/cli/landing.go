package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// runLanding prints the bare-invocation summary: what is in progress, the
// latest completed assessment, and where to go next.
func runLanding(cmd *cobra.Command, app *App) error {
	ctx := context.Background()
	var b strings.Builder

	a, err := app.Assessments.Current(ctx)
	if err != nil {
		return err
	}
	if a != nil {
		label := "Culture assessment"
		if p, ok := app.Catalog.Profile(a.ProfileID); ok {
			label = p.Name
			if l, ok := app.Catalog.Level(a.LevelID); ok {
				label += " / " + l.Name
			}
		}
		b.WriteString(formatter.Bold("In progress: ") + label + "\n")
		b.WriteString(formatter.CompletionBar(completionPct(a), 24) + "\n")
		b.WriteString(formatter.Dim("Continue with `gmatrix resume` or drop it with `gmatrix discard`.") + "\n\n")
	}

	records, err := app.History.List(ctx)
	if err != nil {
		return err
	}
	switch {
	case len(records) == 0 && a == nil:
		b.WriteString("No assessments yet.\n")
		b.WriteString(formatter.Dim("Run `gmatrix start` for a profile assessment or `gmatrix start --culture`.") + "\n")
	case len(records) > 0:
		last := records[len(records)-1]
		b.WriteString(formatter.Bold("Latest result ") + formatter.Dim(formatter.HumanDate(last.Date)) + "\n")
		for _, dim := range last.Dimensions {
			name := dim
			color := ""
			if d, ok := app.Catalog.Dimension(dim); ok {
				name = d.Name
				color = d.Color
			}
			style := formatter.DimensionStyle(color)
			b.WriteString(fmt.Sprintf("  %-14s %s\n", name, style.Render(formatter.Score(last.Score(dim), last.Scheme))))
		}
		b.WriteString("\n" + formatter.Dim(fmt.Sprintf("%d completed. See `gmatrix history list` or `gmatrix history browse`.", len(records))) + "\n")
	}

	fmt.Print(formatter.RenderBox("Growth matrix", b.String()))
	return nil
}
