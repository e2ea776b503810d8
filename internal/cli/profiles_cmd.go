package cli

import (
	"fmt"

	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Show the available profiles and levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.RenderBox("Profiles", formatter.FormatProfilesOverview(app.Catalog)))
			return nil
		},
	}

	cmd.AddCommand(newProfilesShowCmd(app))

	return cmd
}

func newProfilesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROFILE",
		Short: "Show one profile in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := app.Catalog.Profile(args[0])
			if !ok {
				return fmt.Errorf("unknown profile %q", args[0])
			}
			fmt.Print(formatter.RenderBox("", formatter.FormatProfileDetail(app.Catalog, p)))
			return nil
		},
	}
}
