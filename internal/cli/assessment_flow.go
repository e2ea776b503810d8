package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// dimension screen outcomes
const (
	flowContinue = "continue"
	flowBack     = "back"
	flowExit     = "exit"
)

// runAssessment drives the per-dimension rating loop until the assessment is
// finished or the user exits. Ratings persist after every screen, so exiting
// keeps all progress for a later resume.
func runAssessment(ctx context.Context, app *App, a *domain.Assessment) error {
	for {
		rec, err := runDimensionScreen(ctx, app, a)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println(formatter.Dim("Progress saved. Run `gmatrix resume` to continue."))
				return nil
			}
			return err
		}
		if rec != nil {
			res := app.Results.Build(rec)
			fmt.Print(formatter.RenderBox("Your results", formatter.FormatResults(res)))
			return nil
		}
	}
}

// runDimensionScreen shows the statements of the cursor dimension, collects
// ratings and an optional note, then asks where to go next. It returns a
// non-nil record when the assessment was finished.
func runDimensionScreen(ctx context.Context, app *App, a *domain.Assessment) (*domain.Record, error) {
	dimID := a.Dimensions[a.Cursor]
	dim, ok := app.Catalog.Dimension(dimID)
	if !ok {
		dim.ID = dimID
		dim.Name = dimID
	}

	statements := app.Catalog.StatementsFor(a.Type, a.ProfileID, a.LevelID, dimID)
	if len(statements) == 0 {
		// Nothing to rate here; move on.
		return app.Assessments.Advance(ctx, a)
	}

	fmt.Println()
	fmt.Println(formatter.Header(fmt.Sprintf("%s (%d/%d)", dim.Name, a.Cursor+1, len(a.Dimensions))))
	if dim.Description != "" {
		fmt.Println(formatter.Dim(dim.Description))
	}
	fmt.Println(formatter.CompletionBar(completionPct(a), 24))
	fmt.Println()

	values := make([]*string, len(statements))
	for i := range statements {
		r, _ := a.RatingFor(domain.Key{Dimension: dimID, Index: i})
		v := string(r)
		values[i] = &v
	}

	form := formRateDimension(a.Scheme, dim, statements, evidenceCounts(ctx, app, a, dimID, len(statements)), values)
	if err := form.Run(); err != nil {
		return nil, err
	}

	for i, v := range values {
		if *v == "" {
			continue
		}
		key := domain.Key{Dimension: dimID, Index: i}
		if err := app.Assessments.Rate(ctx, a, key, domain.Rating(*v)); err != nil {
			return nil, err
		}
	}

	if a.Scheme == domain.SchemeNumeric {
		if err := runNoteScreen(ctx, app, a, dim); err != nil {
			return nil, err
		}
	}

	return routeAfterDimension(ctx, app, a)
}

// runNoteScreen offers the optional per-dimension note, prefilled with any
// existing text.
func runNoteScreen(ctx context.Context, app *App, a *domain.Assessment, dim catalog.Dimension) error {
	note := a.Comments[dim.ID]
	if err := formDimensionNote(dim, &note).Run(); err != nil {
		return err
	}
	if note == a.Comments[dim.ID] {
		return nil
	}
	return app.Assessments.SetComment(ctx, a, dim.ID, note)
}

// routeAfterDimension asks where to go next and applies the choice.
func routeAfterDimension(ctx context.Context, app *App, a *domain.Assessment) (*domain.Record, error) {
	nextLabel := "Next dimension"
	if a.AtLastDimension() {
		nextLabel = "Finish and see results"
	}

	choice := flowContinue
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where to?").
				Options(
					huh.NewOption(nextLabel, flowContinue),
					huh.NewOption("Previous dimension", flowBack),
					huh.NewOption("Save and exit", flowExit),
				).
				Value(&choice),
		),
	).WithTheme(gmatrixHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	switch choice {
	case flowBack:
		moved, err := app.Assessments.Retreat(ctx, a)
		if err != nil {
			return nil, err
		}
		if !moved {
			fmt.Println(formatter.Dim("Already at the first dimension."))
		}
		return nil, nil
	case flowExit:
		return nil, huh.ErrUserAborted
	default:
		return app.Assessments.Advance(ctx, a)
	}
}

// completionPct converts rated/total statement counts to a fraction.
func completionPct(a *domain.Assessment) float64 {
	rated, total := a.Completion()
	if total == 0 {
		return 0
	}
	return float64(rated) / float64(total)
}

// evidenceCounts looks up journal entry counts per statement for the wizard
// side note. Lookup failures degrade to zero counts.
func evidenceCounts(ctx context.Context, app *App, a *domain.Assessment, dimID string, n int) []int {
	counts := make([]int, n)
	if a.Type != domain.TypeProfile {
		return counts
	}
	for i := range counts {
		entries, err := app.Evidence.ForStatement(ctx, a.ProfileID, a.LevelID, dimID, i)
		if err != nil {
			continue
		}
		counts[i] = len(entries)
	}
	return counts
}
