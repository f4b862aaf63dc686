package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studydeck/internal/ui/theme"
)

// Tabs renders a horizontal tab bar. It is pure view: the owner holds the
// active index and feeds it in on every render.
type Tabs struct {
	Labels []string
	Active int
}

// View renders the tab bar with the active tab highlighted, followed by a
// rule spanning the given width.
func (t Tabs) View(width int) string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)

	ruleWidth := width
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", ruleWidth))

	return bar + "\n" + rule
}
