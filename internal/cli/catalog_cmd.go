package cli

import (
	"fmt"

	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded assessment dataset",
	}

	cmd.AddCommand(newCatalogCheckCmd(app))

	return cmd
}

func newCatalogCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report statement and suggestion coverage gaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			gaps := app.Catalog.CheckCoverage()
			if len(gaps) == 0 {
				fmt.Println(formatter.StyleGreen.Render("✔") + " Catalog covers every profile, level and dimension.")
				return nil
			}

			rows := make([][]string, 0, len(gaps))
			for _, g := range gaps {
				rows = append(rows, []string{g.Kind, formatter.Dim(g.Key)})
			}
			fmt.Print(formatter.RenderBox("Coverage gaps", formatter.RenderTable([]string{"KIND", "KEY"}, rows)))
			fmt.Printf("%d gaps. Missing statements fall back to the dimension description.\n", len(gaps))
			return nil
		},
	}
}
