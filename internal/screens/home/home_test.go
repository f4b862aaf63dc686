package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studydeck/internal/catalog"
	"github.com/abhisek/studydeck/internal/router"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	g, err := catalog.Prepare(catalog.Guide{
		ID:    "demo",
		Title: "Demo Guide",
		Categories: []catalog.ConceptCategory{
			{ID: "c", Category: "C", Items: []string{"x", "y"}},
		},
		Questions: []catalog.QuizQuestion{
			{Prompt: "?", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
	})
	if err != nil {
		t.Fatalf("prepare guide: %v", err)
	}
	return &catalog.Catalog{Guides: []catalog.Guide{g}}
}

func TestViewListsGuides(t *testing.T) {
	h := New(testCatalog(t))
	view := h.View(100, 40)

	if !strings.Contains(view, "Demo Guide") {
		t.Error("home view should list guide titles")
	}
	if !strings.Contains(view, "2 concepts") {
		t.Error("home view should show guide content counts")
	}
}

func TestEnterOpensGuide(t *testing.T) {
	h := New(testCatalog(t))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a guide should produce a command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
	if push.Screen.Title() != "Demo Guide" {
		t.Errorf("pushed screen title = %q, want Demo Guide", push.Screen.Title())
	}
}

func TestLastMenuItemQuits(t *testing.T) {
	h := New(testCatalog(t))

	// One guide plus the quit entry: a single down lands on quit.
	s, _ := h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on quit should produce a command")
	}
}
