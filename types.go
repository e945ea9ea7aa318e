package quizdeck

import (
	"strconv"
	"strings"
)

// DefaultTitle is the deck title used when the input does not name one.
const DefaultTitle = "My Study Deck"

// Deck is the document written to questions.json.
type Deck struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is one quiz item.
//
// Section is a pointer so that converters which track sections always emit
// the key, even when empty, while the lettered converter omits it.
type Question struct {
	ID          string   `json:"id"`
	Section     *string  `json:"section,omitempty"`
	Question    string   `json:"question"`
	Multi       bool     `json:"multi"`
	Options     []Option `json:"options"`
	Correct     []string `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Option is a single answer choice.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// NewDeck returns an empty deck with the given title.
func NewDeck(title string) *Deck {
	return &Deck{Title: title, Questions: []Question{}}
}

// SectionName returns the section or "" when the question has none.
func (q Question) SectionName() string {
	if q.Section == nil {
		return ""
	}
	return *q.Section
}

// questionID returns the id for the n-th accepted question (1-based).
func questionID(n int) string {
	return "q" + strconv.Itoa(n)
}

// optionID returns the letter for the option at index i: A, B, C, ...
func optionID(i int) string {
	return string(rune('A' + i))
}

// pendingOption is an option collected before ids are assigned.
type pendingOption struct {
	text    string
	correct bool
}

// buildQuestion assigns option ids in encounter order and derives correct,
// multi and, when explanation is empty, a synthesized explanation.
func buildQuestion(id, section, text string, opts []pendingOption, explanation string) Question {
	q := Question{
		ID:       id,
		Section:  &section,
		Question: text,
		Options:  make([]Option, 0, len(opts)),
		Correct:  []string{},
	}

	var correctTexts []string
	for i, o := range opts {
		oid := optionID(i)
		q.Options = append(q.Options, Option{ID: oid, Text: o.text})
		if o.correct {
			q.Correct = append(q.Correct, oid)
			correctTexts = append(correctTexts, o.text)
		}
	}
	q.Multi = len(q.Correct) > 1

	if explanation == "" {
		explanation = synthesizeExplanation(correctTexts)
	}
	q.Explanation = explanation
	return q
}

// synthesizeExplanation spells out the correct answers:
// "Correct answer: X." or "Correct answers: X; Y.".
func synthesizeExplanation(correctTexts []string) string {
	label := "Correct answer"
	if len(correctTexts) > 1 {
		label = "Correct answers"
	}
	return label + ": " + strings.Join(correctTexts, "; ") + "."
}

// hasCorrect reports whether at least one option is flagged correct.
func hasCorrect(opts []pendingOption) bool {
	for _, o := range opts {
		if o.correct {
			return true
		}
	}
	return false
}
