package dashboard

import (
	"errors"
	"math"
	"testing"

	"github.com/abhisek/studydeck/internal/catalog"
)

// testGuide has 2 categories with 2 and 4 items (6 total) and a 3-question
// quiz whose answer key is [1, 1, 1].
func testGuide(t testing.TB) *catalog.Guide {
	t.Helper()
	g, err := catalog.Prepare(catalog.Guide{
		ID:    "test",
		Title: "Test Guide",
		Categories: []catalog.ConceptCategory{
			{ID: "alpha", Category: "Alpha", Items: []string{"a0", "a1"}},
			{ID: "beta", Category: "Beta", Items: []string{"b0", "b1", "b2", "b3"}},
		},
		Questions: []catalog.QuizQuestion{
			{Prompt: "q0", Options: []string{"x", "y", "z"}, CorrectIndex: 1},
			{Prompt: "q1", Options: []string{"x", "y", "z"}, CorrectIndex: 1},
			{Prompt: "q2", Options: []string{"x", "y", "z"}, CorrectIndex: 1},
		},
	})
	if err != nil {
		t.Fatalf("prepare test guide: %v", err)
	}
	return &g
}

func mustApply(t testing.TB, s State, a Action) State {
	t.Helper()
	next, err := Apply(s, a)
	if err != nil {
		t.Fatalf("apply %T: %v", a, err)
	}
	return next
}

func TestInitialState(t *testing.T) {
	s := New(testGuide(t))

	if s.ActiveView != ViewOverview {
		t.Errorf("initial view = %q, want %q", s.ActiveView, ViewOverview)
	}
	if s.SessionID == "" {
		t.Error("session ID should be assigned")
	}
	if s.RevealAnswers {
		t.Error("reveal should start off")
	}
	if got := s.CompletionRatio(); got != 0 {
		t.Errorf("initial completion ratio = %v, want 0", got)
	}
	for _, c := range s.Guide().Categories {
		for i := range c.Items {
			if s.Checked(catalog.ItemKey(c.ID, i)) {
				t.Errorf("item %s should start unchecked", catalog.ItemKey(c.ID, i))
			}
		}
	}
	for q := range s.Guide().Questions {
		if got := s.AnswerStatus(q); got != Unanswered {
			t.Errorf("question %d status = %v, want Unanswered", q, got)
		}
	}
}

func TestSetActiveViewReplacesUnconditionally(t *testing.T) {
	s := New(testGuide(t))

	// Any view reachable from any view in one step; the last set wins.
	sequence := []ViewID{ViewQuiz, ViewConcepts, ViewQuiz, ViewRisks, ViewTools, ViewOverview, ViewQuiz}
	for _, v := range sequence {
		s = mustApply(t, s, SetActiveView{View: v})
		if s.ActiveView != v {
			t.Fatalf("active view = %q, want %q", s.ActiveView, v)
		}
	}
}

func TestTogglePairIsInvolution(t *testing.T) {
	s := New(testGuide(t))
	key := catalog.ItemKey("beta", 2)

	s1 := mustApply(t, s, ToggleItem{Key: key})
	if !s1.Checked(key) {
		t.Fatal("first toggle should check the item")
	}
	s2 := mustApply(t, s1, ToggleItem{Key: key})
	if s2.Checked(key) {
		t.Fatal("second toggle should uncheck the item")
	}
	if got := s2.CompletionRatio(); got != 0 {
		t.Errorf("ratio after toggle pair = %v, want 0", got)
	}
}

func TestToggleAcceptsArbitraryKeys(t *testing.T) {
	s := New(testGuide(t))

	// Keys outside the catalog are recorded without error; the toggle is
	// a total function over strings.
	s = mustApply(t, s, ToggleItem{Key: "no-such-category-99"})
	if !s.Checked("no-such-category-99") {
		t.Error("arbitrary key should be checked after toggle")
	}
}

func TestCompletionRatioScenario(t *testing.T) {
	s := New(testGuide(t))

	// Three of six distinct items on: ratio 0.5.
	for _, key := range []string{
		catalog.ItemKey("alpha", 0),
		catalog.ItemKey("beta", 1),
		catalog.ItemKey("beta", 3),
	} {
		s = mustApply(t, s, ToggleItem{Key: key})
	}
	if got := s.CompletionRatio(); got != 0.5 {
		t.Errorf("ratio = %v, want 0.5", got)
	}

	// One back off: 2/6. The denominator stays 6.
	s = mustApply(t, s, ToggleItem{Key: catalog.ItemKey("beta", 1)})
	if got := s.CompletionRatio(); math.Abs(got-2.0/6.0) > 1e-9 {
		t.Errorf("ratio = %v, want 2/6", got)
	}
}

func TestCompletionRatioClamped(t *testing.T) {
	s := New(testGuide(t))

	// More checked keys than catalog items, via out-of-catalog keys.
	for i := 0; i < 20; i++ {
		s = mustApply(t, s, ToggleItem{Key: catalog.ItemKey("ghost", i)})
	}
	if got := s.CompletionRatio(); got != 1 {
		t.Errorf("ratio = %v, want clamped 1", got)
	}
}

func TestSelectOptionOverwrites(t *testing.T) {
	s := New(testGuide(t))

	s = mustApply(t, s, SelectOption{Question: 0, Option: 0})
	s = mustApply(t, s, SelectOption{Question: 0, Option: 2})

	sel, ok := s.Selection(0)
	if !ok || sel != 2 {
		t.Errorf("selection = %d (%v), want 2 after overwrite", sel, ok)
	}
}

func TestSelectOptionRejectsOutOfRange(t *testing.T) {
	s := New(testGuide(t))

	tests := []SelectOption{
		{Question: -1, Option: 0},
		{Question: 3, Option: 0},
		{Question: 0, Option: -1},
		{Question: 0, Option: 3},
	}
	for _, a := range tests {
		next, err := Apply(s, a)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Apply(%+v) err = %v, want ErrInvalidArgument", a, err)
		}
		if _, ok := next.Selection(0); ok {
			t.Errorf("Apply(%+v) recorded a selection despite the error", a)
		}
	}
}

func TestAnswerStatusThreeValued(t *testing.T) {
	s := New(testGuide(t))

	if got := s.AnswerStatus(1); got != Unanswered {
		t.Fatalf("status before selection = %v, want Unanswered", got)
	}

	s = mustApply(t, s, SelectOption{Question: 1, Option: 1})
	if got := s.AnswerStatus(1); got != Correct {
		t.Errorf("status after correct selection = %v, want Correct", got)
	}

	s = mustApply(t, s, SelectOption{Question: 1, Option: 0})
	if got := s.AnswerStatus(1); got != Incorrect {
		t.Errorf("status after wrong selection = %v, want Incorrect", got)
	}
}

func TestSummaryScenario(t *testing.T) {
	s := New(testGuide(t))

	// Key is [1,1,1]; select [1,0,2] for all three but leave nothing
	// unanswered... then check the partial case too.
	s = mustApply(t, s, SelectOption{Question: 0, Option: 1})
	s = mustApply(t, s, SelectOption{Question: 1, Option: 0})
	s = mustApply(t, s, SelectOption{Question: 2, Option: 2})

	sum := s.Summary()
	if sum.Correct != 1 || sum.Incorrect != 2 || sum.Unanswered != 0 {
		t.Errorf("summary = %+v, want 1 correct, 2 incorrect, 0 unanswered", sum)
	}
}

func TestSummaryCountsUnanswered(t *testing.T) {
	s := New(testGuide(t))
	s = mustApply(t, s, SelectOption{Question: 0, Option: 1})

	sum := s.Summary()
	if sum.Correct != 1 || sum.Incorrect != 0 || sum.Unanswered != 2 {
		t.Errorf("summary = %+v, want 1 correct, 0 incorrect, 2 unanswered", sum)
	}
}

func TestToggleRevealIsInvolution(t *testing.T) {
	s := New(testGuide(t))
	s = mustApply(t, s, SelectOption{Question: 0, Option: 2})

	before := make([]Highlight, 3)
	for opt := range before {
		before[opt] = s.OptionHighlight(0, opt)
	}

	s = mustApply(t, s, ToggleReveal{})
	if !s.RevealAnswers {
		t.Fatal("reveal should be on after one toggle")
	}
	s = mustApply(t, s, ToggleReveal{})
	if s.RevealAnswers {
		t.Fatal("reveal should be off after two toggles")
	}
	for opt, want := range before {
		if got := s.OptionHighlight(0, opt); got != want {
			t.Errorf("highlight(0,%d) = %v after toggle pair, want %v", opt, got, want)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := New(testGuide(t))
	key := catalog.ItemKey("alpha", 0)

	next := mustApply(t, s, ToggleItem{Key: key})
	next = mustApply(t, next, SelectOption{Question: 0, Option: 1})

	if s.Checked(key) {
		t.Error("toggle leaked into the prior state value")
	}
	if _, ok := s.Selection(0); ok {
		t.Error("selection leaked into the prior state value")
	}
	if !next.Checked(key) {
		t.Error("new state lost the toggle")
	}
}
