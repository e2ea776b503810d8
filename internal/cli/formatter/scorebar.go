package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// ScoreBar renders a dimension score as a bar like [███████░░░] 3.4.
// The filled part uses the given style; a dim tick marks the baseline
// the score is measured against (3.5 for numeric, 80% for categorical).
func ScoreBar(score, max, baseline float64, width int, style lipgloss.Style) string {
	if max <= 0 {
		max = 1
	}
	if score < 0 {
		score = 0
	}
	if score > max {
		score = max
	}
	if width < 4 {
		width = 4
	}

	filled := int(score / max * float64(width))
	if filled > width {
		filled = width
	}
	tick := int(baseline / max * float64(width))
	if tick >= width {
		tick = width - 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			b.WriteString(style.Render(filledBlock))
		case i == tick:
			b.WriteString(StyleDim.Render("┊"))
		default:
			b.WriteString(StyleDim.Render(emptyBlock))
		}
	}
	return fmt.Sprintf("[%s]", b.String())
}

// CompletionBar renders assessment progress like [████░░░░] 45%.
// The bar is colored by how far along it is: green >66%, yellow 33-66%, red <33%.
func CompletionBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
