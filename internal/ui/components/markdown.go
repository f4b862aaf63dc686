package components

import "github.com/charmbracelet/glamour"

// Markdown renders guide prose with glamour, falling back to the raw text
// when the renderer cannot be constructed (e.g. no usable terminfo).
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer word-wrapped to the given width.
func NewMarkdown(wrap int) Markdown {
	if wrap < 20 {
		wrap = 20
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	return Markdown{renderer: r}
}

// Render renders markdown to styled terminal output.
func (m Markdown) Render(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
