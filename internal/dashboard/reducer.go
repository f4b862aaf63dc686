package dashboard

import (
	"errors"
	"fmt"
	"maps"
)

// ErrInvalidArgument marks programmer errors: indices that could only be
// produced by a caller not iterating the real catalog. Check with
// errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Action is one dashboard state transition. The set is closed: every
// user interaction reduces to exactly one of the four variants.
type Action interface {
	isAction()
}

// SetActiveView replaces the active panel unconditionally. Any ViewID is
// accepted; the identifier space is closed because tabs are rendered from
// AllViews, the same list the handlers iterate.
type SetActiveView struct {
	View ViewID
}

// ToggleItem flips one concept checklist key, treating an absent key as
// unchecked. Keys are not validated against the catalog.
type ToggleItem struct {
	Key string
}

// SelectOption records an answer for a question, overwriting any prior
// selection. Last write wins.
type SelectOption struct {
	Question int
	Option   int
}

// ToggleReveal flips the global reveal-answers flag.
type ToggleReveal struct{}

func (SetActiveView) isAction() {}
func (ToggleItem) isAction()    {}
func (SelectOption) isAction()  {}
func (ToggleReveal) isAction()  {}

// Apply advances the state by one action. The input state is never
// mutated; the touched map is cloned. On error the input state is
// returned unchanged, so callers may ignore the error and keep rendering.
func Apply(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetActiveView:
		s.ActiveView = a.View
		return s, nil

	case ToggleItem:
		checked := maps.Clone(s.checked)
		checked[a.Key] = !checked[a.Key]
		s.checked = checked
		return s, nil

	case SelectOption:
		qs := s.guide.Questions
		if a.Question < 0 || a.Question >= len(qs) {
			return s, fmt.Errorf("%w: question index %d out of range [0,%d)", ErrInvalidArgument, a.Question, len(qs))
		}
		if a.Option < 0 || a.Option >= len(qs[a.Question].Options) {
			return s, fmt.Errorf("%w: option index %d out of range [0,%d) for question %d",
				ErrInvalidArgument, a.Option, len(qs[a.Question].Options), a.Question)
		}
		selections := maps.Clone(s.selections)
		selections[a.Question] = a.Option
		s.selections = selections
		return s, nil

	case ToggleReveal:
		s.RevealAnswers = !s.RevealAnswers
		return s, nil

	default:
		return s, fmt.Errorf("%w: unknown action %T", ErrInvalidArgument, a)
	}
}
