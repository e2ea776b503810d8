package cli

import (
	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog     *catalog.Catalog
	Assessments service.AssessmentService
	History     service.HistoryService
	Evidence    service.EvidenceService
	Results     service.ResultsService
	Settings    service.Settings

	// IsInteractive reports whether stdin is attached to a terminal.
	// Wizard-driven commands refuse to run without one.
	IsInteractive func() bool
}

// interactive defaults to true when no detector is wired, which keeps
// tests simple.
func (a *App) interactive() bool {
	if a.IsInteractive == nil {
		return true
	}
	return a.IsInteractive()
}

// NewRootCmd creates the top-level "gmatrix" command and registers all
// subcommands against the provided App. Running it bare prints the
// landing summary.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gmatrix",
		Short: "Growth matrix self-assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanding(cmd, app)
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newResumeCmd(app),
		newDiscardCmd(app),
		newHistoryCmd(app),
		newJournalCmd(app),
		newProfilesCmd(app),
		newCatalogCmd(app),
	)

	return root
}
