// Package dashboard holds the headless state of one open guide: the
// active panel, the concept checklist, and the self-quiz. State is an
// immutable record advanced by a pure reducer (Apply), so the UI layer is
// only ever a render of the current value and the whole core is testable
// without a terminal.
package dashboard

import (
	"github.com/google/uuid"

	"github.com/abhisek/studydeck/internal/catalog"
)

// ViewID identifies one of the mutually exclusive dashboard panels.
type ViewID string

const (
	ViewOverview ViewID = "overview"
	ViewConcepts ViewID = "concepts"
	ViewTools    ViewID = "tools"
	ViewRisks    ViewID = "risks"
	ViewQuiz     ViewID = "quiz"
)

// AllViews returns the panels in tab order.
func AllViews() []ViewID {
	return []ViewID{ViewOverview, ViewConcepts, ViewTools, ViewRisks, ViewQuiz}
}

// ViewDisplayName returns the tab label for a panel.
func ViewDisplayName(v ViewID) string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewConcepts:
		return "Concepts"
	case ViewTools:
		return "Tools"
	case ViewRisks:
		return "Risks"
	case ViewQuiz:
		return "Quiz"
	default:
		return string(v)
	}
}

// State is the full dashboard state for one guide session. The zero value
// is not usable; construct with New. The checklist and selection maps are
// never mutated in place: Apply clones the touched map, so any held State
// value stays stable.
type State struct {
	// SessionID tags this in-memory session. Nothing is persisted; the ID
	// exists so logs of a future debug surface can correlate events.
	SessionID string

	// ActiveView is the identifier of the single visible panel.
	ActiveView ViewID

	// RevealAnswers overlays correct-answer styling on every quiz
	// question at once when true.
	RevealAnswers bool

	guide      *catalog.Guide
	checked    map[string]bool
	selections map[int]int
}

// New returns the initial state for a guide: overview panel active,
// nothing checked, nothing answered, reveal off.
func New(g *catalog.Guide) State {
	return State{
		SessionID:  uuid.New().String(),
		ActiveView: ViewOverview,
		guide:      g,
		checked:    map[string]bool{},
		selections: map[int]int{},
	}
}

// Guide returns the immutable guide this state indexes into.
func (s State) Guide() *catalog.Guide {
	return s.guide
}

// Checked reports whether a concept item key is checked. Absent keys are
// unchecked.
func (s State) Checked(key string) bool {
	return s.checked[key]
}

// CheckedCount returns the number of keys currently checked on.
func (s State) CheckedCount() int {
	n := 0
	for _, on := range s.checked {
		if on {
			n++
		}
	}
	return n
}

// CompletionRatio returns checked items over the guide's fixed item
// total, clamped to [0,1]. The denominator is counted once at catalog
// load, so toggling an item on and off never changes it. ToggleItem
// accepts keys outside the catalog, so the clamp is reachable.
func (s State) CompletionRatio() float64 {
	total := s.guide.TotalItems()
	if total <= 0 {
		return 0
	}
	r := float64(s.CheckedCount()) / float64(total)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Selection returns the recorded option index for a question, and whether
// one has been recorded at all.
func (s State) Selection(question int) (int, bool) {
	opt, ok := s.selections[question]
	return opt, ok
}
