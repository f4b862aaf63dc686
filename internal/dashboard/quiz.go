package dashboard

// AnswerStatus is the three-valued result of checking one question:
// unanswered is distinct from incorrect, and a scoring summary must keep
// the distinction.
type AnswerStatus int

const (
	Unanswered AnswerStatus = iota
	Correct
	Incorrect
)

// AnswerStatus returns the status of one question. Out-of-range question
// indices report Unanswered, matching an absent selection.
func (s State) AnswerStatus(question int) AnswerStatus {
	if question < 0 || question >= len(s.guide.Questions) {
		return Unanswered
	}
	sel, ok := s.selections[question]
	if !ok {
		return Unanswered
	}
	if sel == s.guide.Questions[question].CorrectIndex {
		return Correct
	}
	return Incorrect
}

// Summary is the quiz scorecard across all questions.
type Summary struct {
	Correct    int
	Incorrect  int
	Unanswered int
}

// Summary tallies every question's status.
func (s State) Summary() Summary {
	var sum Summary
	for q := range s.guide.Questions {
		switch s.AnswerStatus(q) {
		case Correct:
			sum.Correct++
		case Incorrect:
			sum.Incorrect++
		default:
			sum.Unanswered++
		}
	}
	return sum
}

// Highlight is the rendering class of one quiz option.
type Highlight int

const (
	HighlightNeutral Highlight = iota
	HighlightSelected
	HighlightCorrect
)

// HighlightFor resolves the styling of a single option under the
// precedence reveal-correct > user-selected > neutral. When answers are
// revealed, an incorrect user selection gets no special styling: it
// reverts to neutral unless it happens to be the correct option. Kept as
// a standalone pure function so the precedence is testable without any
// render layer.
func HighlightFor(option, correctIndex int, selection int, hasSelection bool, reveal bool) Highlight {
	if reveal && option == correctIndex {
		return HighlightCorrect
	}
	if !reveal && hasSelection && option == selection {
		return HighlightSelected
	}
	return HighlightNeutral
}

// OptionLabel returns the letter label for an option index: 0 is "A",
// 1 is "B", and so on. Catalog validation caps questions at 26 options,
// so a label is always a single letter.
func OptionLabel(option int) string {
	return string(rune('A' + option))
}

// OptionHighlight is HighlightFor applied to the live state.
func (s State) OptionHighlight(question, option int) Highlight {
	if question < 0 || question >= len(s.guide.Questions) {
		return HighlightNeutral
	}
	sel, ok := s.selections[question]
	return HighlightFor(option, s.guide.Questions[question].CorrectIndex, sel, ok, s.RevealAnswers)
}
