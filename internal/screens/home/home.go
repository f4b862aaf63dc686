package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studydeck/internal/catalog"
	"github.com/abhisek/studydeck/internal/router"
	"github.com/abhisek/studydeck/internal/screen"
	guidescreen "github.com/abhisek/studydeck/internal/screens/guide"
	"github.com/abhisek/studydeck/internal/ui/components"
	"github.com/abhisek/studydeck/internal/ui/theme"
)

// HomeScreen lists the available guides. Opening one pushes its dashboard
// onto the router stack; popping back here discards the guide's session
// state.
type HomeScreen struct {
	cat  *catalog.Catalog
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the loaded catalog.
func New(cat *catalog.Catalog) *HomeScreen {
	items := make([]components.MenuItem, 0, len(cat.Guides)+1)
	for i := range cat.Guides {
		g := &cat.Guides[i]
		items = append(items, components.MenuItem{
			Label: g.Title,
			Detail: fmt.Sprintf("%d concepts · %d questions",
				g.TotalItems(), len(g.Questions)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: guidescreen.New(g)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		cat:  cat,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Guides"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(60).Render("STUDYDECK"))
	sections = append(sections, theme.Subtitle.Width(60).Render("pick a guide, learn the concepts, quiz yourself"))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())
	sections = append(sections, theme.Hint.Render("progress lives for this session only"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
