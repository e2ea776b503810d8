package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/mariekevos/gmatrix/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse history interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal")
			}
			p := tea.NewProgram(newHistoryBrowseModel(app))
			_, err := p.Run()
			return err
		},
	}
}

// historyLoadedMsg signals that history list data has been loaded.
type historyLoadedMsg struct {
	records []*domain.Record
	err     error
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var browseKeys = browseKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// historyBrowseModel shows a navigable list of completed assessments and
// opens full results inline.
type historyBrowseModel struct {
	app     *App
	records []*domain.Record
	cursor  int
	loading bool
	err     error

	// Filtering
	filtering bool
	filter    string

	// Result of the opened record, empty when showing the list.
	detail string
}

func newHistoryBrowseModel(app *App) *historyBrowseModel {
	return &historyBrowseModel{app: app, loading: true}
}

func (m *historyBrowseModel) Init() tea.Cmd {
	return m.loadHistory()
}

func (m *historyBrowseModel) loadHistory() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		records, err := app.History.List(context.Background())
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m *historyBrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		return m, nil

	case tea.KeyMsg:
		if m.detail != "" {
			if key.Matches(msg, browseKeys.Back) || key.Matches(msg, browseKeys.Quit) {
				m.detail = ""
			}
			return m, nil
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *historyBrowseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleRecords()

	switch {
	case key.Matches(msg, browseKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, browseKeys.Back):
		return m, tea.Quit
	case key.Matches(msg, browseKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, browseKeys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, browseKeys.Open):
		if m.cursor < len(visible) {
			res := m.app.Results.Build(visible[m.cursor])
			m.detail = formatter.FormatResults(res)
		}
	case key.Matches(msg, browseKeys.Filter):
		m.filtering = true
		m.filter = ""
	}
	return m, nil
}

func (m *historyBrowseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.cursor = 0
		}
	}
	return m, nil
}

// visibleRecords filters by type, profile or level name.
func (m *historyBrowseModel) visibleRecords() []*domain.Record {
	if m.filter == "" {
		return m.records
	}
	lf := strings.ToLower(m.filter)
	var filtered []*domain.Record
	for _, r := range m.records {
		haystack := strings.ToLower(string(r.Type) + " " + r.ProfileID + " " + r.LevelID)
		if strings.Contains(haystack, lf) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (m *historyBrowseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading history...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.detail != "" {
		return "\n" + m.detail + "\n" + formatter.Dim("  esc back") + "\n"
	}

	visible := m.visibleRecords()

	var b strings.Builder
	b.WriteString("\n")

	if m.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No completed assessments.") + "\n")
		return b.String()
	}

	for i, r := range visible {
		cursor := "  "
		dateStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			dateStyle = formatter.StyleBold
		}

		summary := make([]string, 0, len(r.Dimensions))
		for _, dim := range r.Dimensions {
			summary = append(summary, formatter.Score(r.Score(dim), r.Scheme))
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s\n",
			cursor,
			formatter.TruncID(r.ID),
			dateStyle.Render(r.Date.Format("2006-01-02")),
			formatter.TypeBadge(r.Type),
			formatter.Dim(strings.Join(summary, " / ")),
		))
	}

	b.WriteString("\n  " + formatter.Dim("↑/↓ move · enter open · / filter · q quit") + "\n")
	return b.String()
}
