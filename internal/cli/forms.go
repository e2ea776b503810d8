package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mariekevos/gmatrix/internal/catalog"
	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// gmatrixHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func gmatrixHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formSelectProfile creates a huh form to select a profile. The remembered
// last selection, when valid, becomes the preselected option.
func formSelectProfile(cat *catalog.Catalog, lastProfile string, result *string) *huh.Form {
	profiles := cat.OrderedProfiles()

	options := make([]huh.Option[string], 0, len(profiles))
	for _, p := range profiles {
		label := fmt.Sprintf("%s %s — %s", p.Icon, p.Name, p.LocalName)
		options = append(options, huh.NewOption(label, p.ID))
	}
	if _, ok := cat.Profile(lastProfile); ok {
		*result = lastProfile
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which profile fits your role?").
				Options(options...).
				Value(result),
		),
	).WithTheme(gmatrixHuhTheme()).WithShowHelp(false)
}

// formSelectLevel creates a huh form to select a level within a profile.
func formSelectLevel(cat *catalog.Catalog, p catalog.Profile, lastLevel string, result *string) *huh.Form {
	levels := cat.OrderedLevels(p)
	if len(levels) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(levels))
	for _, l := range levels {
		label := fmt.Sprintf("%s — %s", l.Name, l.Independence)
		options = append(options, huh.NewOption(label, l.ID))
	}
	if p.HasLevel(lastLevel) {
		*result = lastLevel
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which level are you assessing against?").
				Description(p.CoreContribution).
				Options(options...).
				Value(result),
		),
	).WithTheme(gmatrixHuhTheme()).WithShowHelp(false)
}

// numericRatingOptions are the shared 1-5 options for profile assessments.
func numericRatingOptions() []huh.Option[string] {
	labels := []string{
		"1 — Not yet",
		"2 — With a lot of help",
		"3 — With some help",
		"4 — Independently",
		"5 — I help others with this",
	}
	options := make([]huh.Option[string], 0, len(labels)+1)
	options = append(options, huh.NewOption("— skip —", ""))
	for i, l := range labels {
		options = append(options, huh.NewOption(l, fmt.Sprint(i+1)))
	}
	return options
}

// categoricalRatingOptions are the options for culture assessments.
func categoricalRatingOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("— skip —", ""),
		huh.NewOption("Yes, this describes me", string(domain.RatingYes)),
		huh.NewOption("Not yet", string(domain.RatingNotYet)),
		huh.NewOption("I don't know", string(domain.RatingDontKnow)),
	}
}

// formRateDimension builds one form group per statement of a dimension.
// Values are bound to the results slice by statement index.
func formRateDimension(scheme domain.RatingScheme, dim catalog.Dimension, statements []string, evidenceCounts []int, results []*string) *huh.Form {
	options := numericRatingOptions()
	if scheme == domain.SchemeCategorical {
		options = categoricalRatingOptions()
	}

	groups := make([]*huh.Group, 0, len(statements))
	for i, stmt := range statements {
		desc := fmt.Sprintf("%s · statement %d of %d", dim.Name, i+1, len(statements))
		if i < len(evidenceCounts) && evidenceCounts[i] > 0 {
			desc += fmt.Sprintf(" · %d journal %s", evidenceCounts[i], pluralize("entry", "entries", evidenceCounts[i]))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title(stmt).
				Description(desc).
				Options(options...).
				Value(results[i]),
		))
	}

	return huh.NewForm(groups...).WithTheme(gmatrixHuhTheme()).WithShowHelp(false)
}

// formDimensionNote creates a huh form for the optional free-text note
// attached to a whole dimension.
func formDimensionNote(dim catalog.Dimension, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("Notes on %s (optional)", dim.Name)).
				Placeholder("Examples, context, things to revisit...").
				Value(result),
		),
	).WithTheme(gmatrixHuhTheme()).WithShowHelp(false)
}

// formInputText creates a huh form for a single text input.
func formInputText(title, placeholder string, required bool, result *string) *huh.Form {
	input := huh.NewText().
		Title(title).
		Placeholder(placeholder).
		Value(result)

	if required {
		input = input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", title)
			}
			return nil
		})
	}

	return huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(gmatrixHuhTheme()).WithShowHelp(false)
}

// formConfirm creates a huh form for a yes/no confirmation.
func formConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(gmatrixHuhTheme()).WithShowHelp(false)
}

func pluralize(singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}
