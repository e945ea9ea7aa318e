package quizdeck

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/alnah/go-quizdeck/internal/textnorm"
)

// Line tags of the lettered format. Tags are case-sensitive and must start
// the line.
const (
	tagTitle       = "TITLE:"
	tagQuestion    = "Q:"
	tagAnswer      = "ANS:"
	tagExplanation = "EXPL:"
)

// letteredOptionPattern matches "A) text" on a trimmed line.
var letteredOptionPattern = regexp.MustCompile(`^([A-Z])\)\s*(.+)$`)

// LetteredConverter converts the tagged format (TITLE:, Q:, A), ANS:, EXPL:).
//
// It does not validate questions: ANS: ids are kept even when no option has
// that id, and questions with zero or one option are emitted. Use Check to
// find such records.
type LetteredConverter struct {
	cfg converterConfig
}

// NewLetteredConverter creates a LetteredConverter.
func NewLetteredConverter(opts ...ConverterOption) *LetteredConverter {
	cfg := defaultConverterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LetteredConverter{cfg: cfg}
}

// Convert decodes data as strict UTF-8 and returns every question found.
// Returns ErrDecodeInput if data is not valid UTF-8.
func (c *LetteredConverter) Convert(data []byte) (*Deck, error) {
	text, err := textnorm.DecodeStrict(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeInput, err)
	}
	doc := textnorm.NormalizeQuotes(textnorm.NormalizeLineSeparators(textnorm.NormalizeDocument(text)))

	sess := &letteredSession{log: c.cfg.logger, deck: NewDeck(DefaultTitle)}
	for i, line := range textnorm.SplitLines(doc) {
		sess.feed(i+1, line)
	}
	sess.flush()

	return sess.deck, nil
}

// letteredSession is the per-conversion accumulator. current is nil
// between questions.
type letteredSession struct {
	log     *slog.Logger
	deck    *Deck
	current *Question
}

// feed dispatches one line. Checks run in priority order and the first
// applicable one consumes the line.
func (s *letteredSession) feed(lineNo int, line string) {
	switch {
	case textnorm.IsBlank(line):
		s.flush()

	case strings.HasPrefix(line, tagTitle):
		if title := textnorm.Trim(strings.TrimPrefix(line, tagTitle)); title != "" {
			s.deck.Title = title
		}

	case strings.HasPrefix(line, tagQuestion):
		s.flush()
		s.current = &Question{
			ID:       questionID(len(s.deck.Questions) + 1),
			Question: textnorm.Trim(strings.TrimPrefix(line, tagQuestion)),
			Options:  []Option{},
			Correct:  []string{},
		}

	case s.current == nil:
		s.log.Debug("line outside question ignored", "line", lineNo)

	default:
		s.feedQuestionLine(line)
	}
}

// feedQuestionLine handles option, answer, explanation and continuation
// lines while a question is open.
func (s *letteredSession) feedQuestionLine(line string) {
	q := s.current

	if m := letteredOptionPattern.FindStringSubmatch(textnorm.Trim(line)); m != nil {
		q.Options = append(q.Options, Option{ID: m[1], Text: textnorm.Trim(m[2])})
		return
	}

	switch {
	case strings.HasPrefix(line, tagAnswer):
		q.Correct = parseAnswerIDs(strings.TrimPrefix(line, tagAnswer))
	case strings.HasPrefix(line, tagExplanation):
		q.Explanation = textnorm.Trim(strings.TrimPrefix(line, tagExplanation))
	default:
		q.Explanation = textnorm.Trim(q.Explanation + "\n" + line)
	}
}

// parseAnswerIDs splits an ANS: value on commas, trims each id and drops
// empty ones. Ids are not checked against the declared options.
func parseAnswerIDs(value string) []string {
	ids := []string{}
	for _, part := range strings.Split(value, ",") {
		if id := textnorm.Trim(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// flush appends the open question, if any. A question is emitted as is,
// whatever its options and answers.
func (s *letteredSession) flush() {
	q := s.current
	if q == nil {
		return
	}
	q.Multi = len(q.Correct) > 1

	for _, id := range danglingAnswerIDs(*q) {
		s.log.Debug("answer references undeclared option", "question", q.ID, "answer", id)
	}
	if len(q.Options) < 2 {
		s.log.Debug("question has fewer than two options", "question", q.ID, "options", len(q.Options))
	}

	s.deck.Questions = append(s.deck.Questions, *q)
	s.current = nil
}

// danglingAnswerIDs returns the correct ids that no option declares.
func danglingAnswerIDs(q Question) []string {
	declared := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		declared[o.ID] = true
	}
	var dangling []string
	for _, id := range q.Correct {
		if !declared[id] {
			dangling = append(dangling, id)
		}
	}
	return dangling
}
