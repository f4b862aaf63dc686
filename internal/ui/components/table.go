package components

import (
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studydeck/internal/ui/theme"
)

// DataTable wraps bubbles/table with Studydeck styling for the read-only
// reference tables (tool comparison, risk listing).
type DataTable struct {
	Model table.Model
}

// NewDataTable creates a styled, scrollable table.
func NewDataTable(columns []table.Column, rows []table.Row, height int) DataTable {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(theme.Primary).
		Bold(true).
		BorderForeground(theme.Border)
	s.Cell = s.Cell.Foreground(theme.Text)
	s.Selected = s.Selected.
		Foreground(theme.Primary).
		Bold(true)
	t.SetStyles(s)

	return DataTable{Model: t}
}

// Update handles scrolling.
func (d DataTable) Update(msg tea.Msg) (DataTable, tea.Cmd) {
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	return d, cmd
}

// SetHeight resizes the table viewport.
func (d *DataTable) SetHeight(h int) {
	if h < 2 {
		h = 2
	}
	d.Model.SetHeight(h)
}

// View renders the table.
func (d DataTable) View() string {
	return d.Model.View()
}
