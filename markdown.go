package quizdeck

import (
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-quizdeck/internal/textnorm"
)

// MarkdownConverter converts Markdown quiz banks written with GFM task lists.
//
//	# Networking
//
//	## Layers
//
//	Which layer routes packets?
//
//	- [ ] Data Link
//	- [x] Network
//
//	> Routing is Layer 3.
type MarkdownConverter struct {
	cfg converterConfig
	md  goldmark.Markdown
}

// NewMarkdownConverter creates a MarkdownConverter.
func NewMarkdownConverter(opts ...ConverterOption) *MarkdownConverter {
	cfg := defaultConverterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MarkdownConverter{
		cfg: cfg,
		md:  goldmark.New(goldmark.WithExtensions(extension.TaskList)),
	}
}

// Convert parses data as Markdown and returns the accepted questions.
// Questions follow the symbol format rules: text, at least two options and
// at least one checked option are required.
func (c *MarkdownConverter) Convert(data []byte) (*Deck, error) {
	src := []byte(textnorm.NormalizeDocument(textnorm.DecodeLenient(data)))
	doc := c.md.Parser().Parse(text.NewReader(src))

	sess := &markdownSession{log: c.cfg.logger, src: src, deck: NewDeck(DefaultTitle)}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		sess.visit(n)
	}
	sess.flush()

	return sess.deck, nil
}

// markdownSession walks the top-level blocks of one document.
type markdownSession struct {
	log *slog.Logger
	src []byte

	titleSet    bool
	section     string
	textParts   []string
	options     []pendingOption
	explanation string

	deck *Deck
}

func (s *markdownSession) visit(n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		s.flush()
		heading := textnorm.Clean(plainText(node, s.src, false))
		if node.Level == 1 && !s.titleSet {
			if heading != "" {
				s.deck.Title = heading
			}
			s.titleSet = true
			return
		}
		s.section = heading

	case *ast.Paragraph:
		if len(s.options) > 0 {
			s.flush()
		}
		s.textParts = append(s.textParts, plainText(node, s.src, false))

	case *ast.List:
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			s.addOption(item)
		}

	case *ast.Blockquote:
		s.explanation = textnorm.Clean(plainText(node, s.src, false))

	case *ast.ThematicBreak:
		s.flush()
	}
}

// addOption records a list item as an option; a checked task box marks it
// correct. Nested lists are not part of the option text. Items that reduce
// to empty text are skipped.
func (s *markdownSession) addOption(item ast.Node) {
	correct := false
	_ = ast.Walk(item, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*ast.List); ok && entering && n != item {
			return ast.WalkSkipChildren, nil
		}
		if box, ok := n.(*extast.TaskCheckBox); ok && entering {
			correct = box.IsChecked
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	optText := textnorm.Clean(plainText(item, s.src, true))
	if optText == "" {
		return
	}
	s.options = append(s.options, pendingOption{text: optText, correct: correct})
}

func (s *markdownSession) flush() {
	text := textnorm.Clean(strings.Join(s.textParts, " "))

	switch {
	case text == "" && len(s.options) == 0:
		// nothing buffered
	case text == "":
		s.log.Debug("question dropped", "reason", "empty text", "options", len(s.options))
	case len(s.options) < 2:
		s.log.Debug("question dropped", "reason", "fewer than two options", "question", text)
	case !hasCorrect(s.options):
		s.log.Debug("question dropped", "reason", "no correct option", "question", text)
	default:
		id := questionID(len(s.deck.Questions) + 1)
		s.deck.Questions = append(s.deck.Questions, buildQuestion(id, s.section, text, s.options, s.explanation))
	}

	s.textParts = nil
	s.options = nil
	s.explanation = ""
}

// plainText concatenates the text content under n as a reader would see it:
// backslash escapes are removed and entity references resolved. Block
// boundaries and line breaks become spaces. With skipLists, lists nested
// below n are left out.
func plainText(n ast.Node, src []byte, skipLists bool) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := c.(*ast.List); ok && skipLists && c != n {
			return ast.WalkSkipChildren, nil
		}
		if c != n && c.Type() == ast.TypeBlock && b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(resolveText(t.Segment.Value(src)))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(src))
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				b.Write(seg.Value(src))
			}
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := c.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(src))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// resolveText applies the unescaping the HTML renderer performs on text
// segments.
func resolveText(v []byte) []byte {
	return util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(v)))
}
