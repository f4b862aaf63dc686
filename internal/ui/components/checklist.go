package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studydeck/internal/catalog"
	"github.com/abhisek/studydeck/internal/ui/theme"
)

// Checklist renders concept categories as a checkable list. It is pure
// view over the dashboard state: the owner supplies the checked lookup
// and the cursor position (a flat index counting items only, headers
// excluded).
type Checklist struct {
	Categories []catalog.ConceptCategory
	Checked    func(key string) bool
	Cursor     int
}

// ItemCount returns the number of cursor-addressable items.
func (c Checklist) ItemCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Items)
	}
	return n
}

// KeyAt returns the checklist key at a flat cursor index.
func (c Checklist) KeyAt(cursor int) (string, bool) {
	i := 0
	for _, cat := range c.Categories {
		for idx := range cat.Items {
			if i == cursor {
				return catalog.ItemKey(cat.ID, idx), true
			}
			i++
		}
	}
	return "", false
}

// View renders the checklist.
func (c Checklist) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	flat := 0
	for ci, cat := range c.Categories {
		if ci > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headerStyle.Render(cat.Category) + "\n")

		for idx, item := range cat.Items {
			key := catalog.ItemKey(cat.ID, idx)
			checked := c.Checked != nil && c.Checked(key)

			box := "[ ]"
			style := theme.Unselected
			if checked {
				box = "[✓]"
				style = theme.Checked
			}

			prefix := "  "
			if flat == c.Cursor {
				prefix = "▸ "
				style = theme.Selected
			}

			b.WriteString(style.Render(prefix+box+" "+item) + "\n")
			flat++
		}
	}
	return b.String()
}
