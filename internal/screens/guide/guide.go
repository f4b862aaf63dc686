package guide

import (
	"fmt"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studydeck/internal/catalog"
	"github.com/abhisek/studydeck/internal/dashboard"
	"github.com/abhisek/studydeck/internal/screen"
	"github.com/abhisek/studydeck/internal/ui/components"
	"github.com/abhisek/studydeck/internal/ui/layout"
)

// GuideScreen is the tabbed dashboard for one open guide. All durable
// state lives in the dashboard.State record; the screen adds only render
// affordances (cursors, table scroll positions) on top of it.
type GuideScreen struct {
	state dashboard.State

	conceptList components.Checklist
	quizCursor  int // flat index over every option of every question

	toolTable components.DataTable
	riskTable components.DataTable
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)
var _ screen.BadgeProvider = (*GuideScreen)(nil)

// New opens a guide on its overview panel.
func New(g *catalog.Guide) *GuideScreen {
	s := dashboard.New(g)

	toolRows := make([]table.Row, 0, len(g.Tools))
	for _, tr := range g.Tools {
		toolRows = append(toolRows, table.Row{tr.Name, tr.Score, tr.Strength, tr.Caveat})
	}
	riskRows := make([]table.Row, 0, len(g.Risks))
	for _, rr := range g.Risks {
		riskRows = append(riskRows, table.Row{rr.Name, rr.Severity, rr.Detail})
	}

	gs := &GuideScreen{
		state: s,
		conceptList: components.Checklist{
			Categories: g.Categories,
			Checked:    s.Checked,
		},
		toolTable: components.NewDataTable(
			[]table.Column{
				{Title: "Tool", Width: 16},
				{Title: "Score", Width: 6},
				{Title: "Strength", Width: 34},
				{Title: "Caveat", Width: 32},
			},
			toolRows, len(toolRows)+1,
		),
		riskTable: components.NewDataTable(
			[]table.Column{
				{Title: "Risk", Width: 24},
				{Title: "Severity", Width: 10},
				{Title: "Detail", Width: 50},
			},
			riskRows, len(riskRows)+1,
		),
	}
	return gs
}

func (s *GuideScreen) Init() tea.Cmd {
	return nil
}

func (s *GuideScreen) Title() string {
	return s.state.Guide().Title
}

// Badge surfaces the completion ratio in the header.
func (s *GuideScreen) Badge() string {
	return fmt.Sprintf("✓ %d%%", int(s.state.CompletionRatio()*100))
}

func (s *GuideScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next panel"},
		{Key: "1-5", Description: "Jump"},
	}
	switch s.state.ActiveView {
	case dashboard.ViewConcepts:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Move"},
			layout.KeyHint{Key: "Space", Description: "Toggle"},
		)
	case dashboard.ViewQuiz:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Move"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
			layout.KeyHint{Key: "R", Description: "Reveal answers"},
		)
	case dashboard.ViewTools, dashboard.ViewRisks:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	views := dashboard.AllViews()
	switch key := kmsg.String(); key {
	case "tab", "right", "l":
		s.setView(views[(s.viewIndex()+1)%len(views)])
		return s, nil
	case "shift+tab", "left", "h":
		s.setView(views[(s.viewIndex()+len(views)-1)%len(views)])
		return s, nil
	case "1", "2", "3", "4", "5":
		s.setView(views[int(key[0]-'1')])
		return s, nil
	}

	switch s.state.ActiveView {
	case dashboard.ViewConcepts:
		s.updateConcepts(kmsg)
	case dashboard.ViewQuiz:
		s.updateQuiz(kmsg)
	case dashboard.ViewTools:
		var cmd tea.Cmd
		s.toolTable, cmd = s.toolTable.Update(msg)
		return s, cmd
	case dashboard.ViewRisks:
		var cmd tea.Cmd
		s.riskTable, cmd = s.riskTable.Update(msg)
		return s, cmd
	}
	return s, nil
}

// apply routes an action through the reducer. Reducer errors are
// unreachable from key handlers (indices come from iterating the real
// catalog), so the prior state is simply kept if one ever occurs.
func (s *GuideScreen) apply(a dashboard.Action) {
	next, err := dashboard.Apply(s.state, a)
	if err != nil {
		return
	}
	s.state = next
	s.conceptList.Checked = s.state.Checked
}

func (s *GuideScreen) viewIndex() int {
	for i, v := range dashboard.AllViews() {
		if v == s.state.ActiveView {
			return i
		}
	}
	return 0
}

func (s *GuideScreen) setView(v dashboard.ViewID) {
	s.apply(dashboard.SetActiveView{View: v})
}

func (s *GuideScreen) updateConcepts(kmsg tea.KeyMsg) {
	switch kmsg.String() {
	case "up", "k":
		if s.conceptList.Cursor > 0 {
			s.conceptList.Cursor--
		}
	case "down", "j":
		if s.conceptList.Cursor < s.conceptList.ItemCount()-1 {
			s.conceptList.Cursor++
		}
	case "enter", "space", " ":
		if key, ok := s.conceptList.KeyAt(s.conceptList.Cursor); ok {
			s.apply(dashboard.ToggleItem{Key: key})
		}
	}
}

// optionCount returns the total number of quiz-cursor positions.
func (s *GuideScreen) optionCount() int {
	n := 0
	for _, q := range s.state.Guide().Questions {
		n += len(q.Options)
	}
	return n
}

// quizPosition resolves the flat quiz cursor into (question, option).
func (s *GuideScreen) quizPosition() (int, int) {
	i := s.quizCursor
	for q, question := range s.state.Guide().Questions {
		if i < len(question.Options) {
			return q, i
		}
		i -= len(question.Options)
	}
	return 0, 0
}

func (s *GuideScreen) updateQuiz(kmsg tea.KeyMsg) {
	switch kmsg.String() {
	case "up", "k":
		if s.quizCursor > 0 {
			s.quizCursor--
		}
	case "down", "j":
		if s.quizCursor < s.optionCount()-1 {
			s.quizCursor++
		}
	case "enter", "space", " ":
		q, opt := s.quizPosition()
		s.apply(dashboard.SelectOption{Question: q, Option: opt})
	case "r":
		s.apply(dashboard.ToggleReveal{})
	}
}
