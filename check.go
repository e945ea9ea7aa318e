package quizdeck

import "fmt"

// Issue is a structural problem found in one question.
type Issue struct {
	QuestionID string
	Message    string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.QuestionID, i.Message)
}

// Check runs minimal shape checks over a deck and returns the problems in
// question order. It never modifies the deck.
//
// Decks from the symbol and markdown converters always pass. Decks from the
// lettered converter may not, since that converter keeps answers that
// reference undeclared options and questions with fewer than two options.
func Check(d *Deck) []Issue {
	if d == nil {
		return []Issue{{Message: ErrNilDeck.Error()}}
	}

	var issues []Issue
	seen := make(map[string]bool, len(d.Questions))

	for _, q := range d.Questions {
		report := func(format string, args ...any) {
			issues = append(issues, Issue{QuestionID: q.ID, Message: fmt.Sprintf(format, args...)})
		}

		if seen[q.ID] {
			report("duplicate question id")
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			report("has %d option(s), want at least 2", len(q.Options))
		}
		for i, o := range q.Options {
			if want := optionID(i); o.ID != want {
				report("option %d has id %q, want %q", i+1, o.ID, want)
			}
		}
		if len(q.Correct) == 0 {
			report("no correct answer")
		}
		for _, id := range danglingAnswerIDs(q) {
			report("correct answer %q is not an option", id)
		}
		if q.Multi != (len(q.Correct) > 1) {
			report("multi is %t with %d correct answer(s)", q.Multi, len(q.Correct))
		}
	}
	return issues
}
