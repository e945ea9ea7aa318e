package quizdeck

import (
	"log/slog"
	"strings"

	"github.com/alnah/go-quizdeck/internal/textnorm"
)

// SymbolConverter converts the symbol format: options introduced by a glyph
// marker, correct options prefixed with a token.
type SymbolConverter struct {
	cfg converterConfig
}

// NewSymbolConverter creates a SymbolConverter.
// Returns an error if the configured syntax is invalid.
func NewSymbolConverter(opts ...ConverterOption) (*SymbolConverter, error) {
	cfg := defaultConverterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.syntax.Validate(); err != nil {
		return nil, err
	}
	return &SymbolConverter{cfg: cfg}, nil
}

// Convert decodes data leniently and returns the accepted questions.
// The deck title is always DefaultTitle. Malformed questions are dropped.
func (c *SymbolConverter) Convert(data []byte) (*Deck, error) {
	doc := textnorm.NormalizeDocument(textnorm.DecodeLenient(data))

	sess := newSymbolSession(c.cfg)
	for i, line := range textnorm.SplitLines(doc) {
		sess.feed(i+1, line)
	}
	sess.finish()

	return sess.deck, nil
}

// symbolState tracks where the session is within the current question.
type symbolState int

const (
	// awaitingQuestion: nothing buffered since the last flush.
	awaitingQuestion symbolState = iota
	// accumulatingText: the last non-blank line was question text.
	accumulatingText
	// accumulatingOptions: the last non-blank line was an option.
	accumulatingOptions
)

func (s symbolState) String() string {
	switch s {
	case awaitingQuestion:
		return "awaiting-question"
	case accumulatingText:
		return "accumulating-text"
	case accumulatingOptions:
		return "accumulating-options"
	default:
		return "unknown"
	}
}

// symbolSession is the per-conversion accumulator.
//
// Transitions:
//
//	blank   in accumulatingOptions with text buffered  -> flush -> awaitingQuestion
//	header  with text and options buffered             -> flush; section changes
//	option                                             -> accumulatingOptions
//	text    in accumulatingOptions with text+options   -> flush, then buffer line
//	text                                               -> accumulatingText
//	EOF     with text and options buffered             -> flush
//
// Options seen before any question text stay buffered and attach to the next
// question.
type symbolSession struct {
	classifier *lineClassifier
	log        *slog.Logger

	state     symbolState
	section   string
	textLines []string
	options   []pendingOption
	startLine int

	deck *Deck
}

func newSymbolSession(cfg converterConfig) *symbolSession {
	return &symbolSession{
		classifier: newLineClassifier(cfg.syntax),
		log:        cfg.logger,
		state:      awaitingQuestion,
		deck:       NewDeck(DefaultTitle),
	}
}

func (s *symbolSession) feed(lineNo int, raw string) {
	line := textnorm.Trim(raw)
	kind, rule := s.classifier.classify(line)

	switch kind {
	case lineBlank:
		if s.state == accumulatingOptions && len(s.textLines) > 0 {
			s.flush()
		}

	case lineHeader:
		if s.hasTextAndOptions() {
			s.flush()
		}
		s.section = textnorm.Clean(line)

	case lineOption:
		s.state = accumulatingOptions
		text, correct, ok := s.classifier.parseOption(line)
		if !ok {
			s.log.Debug("empty option discarded", "line", lineNo, "rule", rule)
			return
		}
		s.options = append(s.options, pendingOption{text: text, correct: correct})

	case lineText:
		if s.state == accumulatingOptions && s.hasTextAndOptions() {
			s.flush()
		}
		if len(s.textLines) == 0 {
			s.startLine = lineNo
		}
		s.textLines = append(s.textLines, line)
		s.state = accumulatingText
	}
}

func (s *symbolSession) finish() {
	if s.hasTextAndOptions() {
		s.flush()
	}
}

func (s *symbolSession) hasTextAndOptions() bool {
	return len(s.textLines) > 0 && len(s.options) > 0
}

// flush validates the buffered question, appends it when valid and resets
// the buffers either way.
func (s *symbolSession) flush() {
	text := textnorm.Clean(strings.Join(s.textLines, " "))

	switch {
	case text == "":
		s.log.Debug("question dropped", "line", s.startLine, "reason", "empty text")
	case len(s.options) < 2:
		s.log.Debug("question dropped", "line", s.startLine, "reason", "fewer than two options", "options", len(s.options))
	case !hasCorrect(s.options):
		s.log.Debug("question dropped", "line", s.startLine, "reason", "no correct option", "question", text)
	default:
		id := questionID(len(s.deck.Questions) + 1)
		s.deck.Questions = append(s.deck.Questions, buildQuestion(id, s.section, text, s.options, ""))
	}

	s.textLines = nil
	s.options = nil
	s.state = awaitingQuestion
}
