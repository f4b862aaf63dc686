package guide

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studydeck/internal/dashboard"
	"github.com/abhisek/studydeck/internal/ui/components"
	"github.com/abhisek/studydeck/internal/ui/theme"
)

const contentPadding = 2

func (s *GuideScreen) View(width, height int) string {
	labels := make([]string, 0, 5)
	for _, v := range dashboard.AllViews() {
		labels = append(labels, dashboard.ViewDisplayName(v))
	}
	tabs := components.Tabs{Labels: labels, Active: s.viewIndex()}
	tabBar := tabs.View(width)

	panelHeight := height - lipgloss.Height(tabBar) - 1
	if panelHeight < 0 {
		panelHeight = 0
	}
	panelWidth := width - 2*contentPadding

	var panel string
	switch s.state.ActiveView {
	case dashboard.ViewOverview:
		panel = s.viewOverview(panelWidth)
	case dashboard.ViewConcepts:
		panel = s.viewConcepts(panelWidth)
	case dashboard.ViewTools:
		panel = s.viewTools(panelHeight)
	case dashboard.ViewRisks:
		panel = s.viewRisks(panelHeight)
	case dashboard.ViewQuiz:
		panel = s.viewQuiz()
	}

	body := lipgloss.NewStyle().
		Padding(0, contentPadding).
		Height(panelHeight).
		Render(panel)

	return tabBar + "\n" + body
}

func (s *GuideScreen) viewOverview(width int) string {
	md := components.NewMarkdown(width)
	out := md.Render(s.state.Guide().Overview)
	tagline := theme.Hint.Render(s.state.Guide().Tagline)
	session := theme.Hint.Render("session " + shortID(s.state.SessionID))
	return out + "\n" + tagline + "\n" + session
}

// shortID truncates a session UUID to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (s *GuideScreen) viewConcepts(width int) string {
	g := s.state.Guide()
	bar := components.NewProgressBar(
		fmt.Sprintf("Learned %d/%d", s.state.CheckedCount(), g.TotalItems()),
		s.state.CompletionRatio(),
		true,
		width,
	)
	return bar.View() + "\n\n" + s.conceptList.View()
}

func (s *GuideScreen) viewTools(height int) string {
	s.toolTable.SetHeight(height - 2)
	header := theme.Body.Render("How the tooling landscape compares:")
	return header + "\n\n" + s.toolTable.View()
}

func (s *GuideScreen) viewRisks(height int) string {
	s.riskTable.SetHeight(height - 2)
	header := theme.Body.Render("Findings this guide trains you to catch:")
	return header + "\n\n" + s.riskTable.View()
}

func (s *GuideScreen) viewQuiz() string {
	g := s.state.Guide()
	cursorQ, cursorOpt := s.quizPosition()

	var b strings.Builder

	sum := s.state.Summary()
	scoreLine := fmt.Sprintf("Score: %d correct · %d incorrect · %d unanswered",
		sum.Correct, sum.Incorrect, sum.Unanswered)
	b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render(scoreLine) + "\n")
	if s.state.RevealAnswers {
		b.WriteString(theme.Hint.Render("answers revealed — press r to hide") + "\n")
	}
	b.WriteString("\n")

	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	for qi, q := range g.Questions {
		b.WriteString(promptStyle.Render(fmt.Sprintf("%d. %s", qi+1, q.Prompt)) + "\n")

		for oi, opt := range q.Options {
			prefix := "   "
			if qi == cursorQ && oi == cursorOpt {
				prefix = " ▸ "
			}
			line := fmt.Sprintf("%s%s)  %s", prefix, dashboard.OptionLabel(oi), opt)

			switch s.state.OptionHighlight(qi, oi) {
			case dashboard.HighlightCorrect:
				b.WriteString(theme.Correct.Render(line))
			case dashboard.HighlightSelected:
				b.WriteString(theme.Selected.Render(line))
			default:
				if qi == cursorQ && oi == cursorOpt {
					b.WriteString(theme.Body.Render(line))
				} else {
					b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
