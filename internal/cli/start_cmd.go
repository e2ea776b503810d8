package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var culture bool
	var profileID, levelID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new assessment",
		Long: `Start a new self-assessment.

By default a profile assessment: pick a profile and level, then rate
the behavioral statements of each dimension on a 1-5 scale. With
--culture the engineering-culture statements are rated yes / not yet /
don't know instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !app.interactive() {
				return fmt.Errorf("start needs an interactive terminal")
			}

			if existing, err := app.Assessments.Current(ctx); err == nil && existing != nil && !yes {
				ok := false
				if err := formConfirm("An assessment is already in progress. Discard it and start over?", &ok).Run(); err != nil {
					return err
				}
				if !ok {
					fmt.Println(formatter.Dim("Keeping the current assessment. Run `gmatrix resume` to continue."))
					return nil
				}
			}

			t := domain.TypeProfile
			if culture {
				t = domain.TypeCulture
			} else {
				var err error
				profileID, levelID, err = selectProfileAndLevel(ctx, app, profileID, levelID)
				if err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			a, err := app.Assessments.Start(ctx, t, profileID, levelID)
			if err != nil {
				return err
			}
			return runAssessment(ctx, app, a)
		},
	}

	cmd.Flags().BoolVar(&culture, "culture", false, "Assess engineering culture instead of a profile")
	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID (skips the profile picker)")
	cmd.Flags().StringVar(&levelID, "level", "", "Level ID (skips the level picker)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Discard any in-progress assessment without asking")

	return cmd
}

// selectProfileAndLevel resolves the profile and level, via flags when given
// and wizard forms otherwise. The previous run's choices preselect the forms.
func selectProfileAndLevel(ctx context.Context, app *App, profileID, levelID string) (string, string, error) {
	lastProfile, lastLevel := app.Settings.LastSelection(ctx)

	if profileID == "" {
		form := formSelectProfile(app.Catalog, lastProfile, &profileID)
		if err := form.Run(); err != nil {
			return "", "", err
		}
	}
	profile, ok := app.Catalog.Profile(profileID)
	if !ok {
		return "", "", fmt.Errorf("unknown profile %q", profileID)
	}

	if levelID == "" {
		form := formSelectLevel(app.Catalog, profile, lastLevel, &levelID)
		if form == nil {
			return "", "", fmt.Errorf("profile %q has no levels", profileID)
		}
		if err := form.Run(); err != nil {
			return "", "", err
		}
	}
	return profileID, levelID, nil
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Continue the in-progress assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !app.interactive() {
				return fmt.Errorf("resume needs an interactive terminal")
			}

			a, err := app.Assessments.Resume(ctx)
			if err != nil {
				return err
			}
			return runAssessment(ctx, app, a)
		},
	}
}

func newDiscardCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "discard",
		Short: "Throw away the in-progress assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := app.Assessments.Current(ctx)
			if err != nil {
				return err
			}
			if a == nil {
				fmt.Println("No assessment in progress.")
				return nil
			}

			if !yes {
				ok := false
				if err := formConfirm("Discard the in-progress assessment? Ratings will be lost.", &ok).Run(); err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			if err := app.Assessments.Discard(ctx); err != nil {
				return err
			}
			fmt.Println("Discarded.")
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)

	return cmd
}
