package quizdeck

import (
	"strings"

	"github.com/alnah/go-quizdeck/internal/textnorm"
)

// lineKind is the classification of one input line in the symbol format.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeader
	lineOption
	lineText
)

func (k lineKind) String() string {
	switch k {
	case lineBlank:
		return "blank"
	case lineHeader:
		return "header"
	case lineOption:
		return "option"
	case lineText:
		return "text"
	default:
		return "unknown"
	}
}

// optionMatcher is one named rule of the option predicate.
// s is the trimmed line and lower its lowercase form.
type optionMatcher struct {
	name  string
	match func(s, lower string) bool
}

// optionMatchers returns the option rules in evaluation order. A line is an
// option as soon as any rule matches; the order only decides which rule name
// is reported. The rules overlap: "ff © x" satisfies both marker-anywhere and
// token-marker.
func optionMatchers(syn SymbolSyntax) []optionMatcher {
	token := strings.ToLower(syn.CorrectToken)
	marker := strings.ToLower(syn.Marker)
	fallback := strings.ToLower(syn.FallbackMarker)

	return []optionMatcher{
		{"marker-anywhere", func(s, _ string) bool {
			return strings.Contains(s, syn.Marker)
		}},
		{"fallback-prefix", func(s, _ string) bool {
			return strings.HasPrefix(s, syn.FallbackMarker)
		}},
		{"token-fallback", func(_, lower string) bool {
			return strings.HasPrefix(lower, token+" "+fallback)
		}},
		{"token-marker", func(_, lower string) bool {
			return strings.HasPrefix(lower, token+" "+marker) || strings.HasPrefix(lower, token+marker)
		}},
		{"boolean-literal", func(_, lower string) bool {
			return lower == "true" || lower == "false"
		}},
		{"token-word", func(_, lower string) bool {
			return strings.HasPrefix(lower, token+" ")
		}},
	}
}

// lineClassifier classifies symbol-format lines.
type lineClassifier struct {
	syntax        SymbolSyntax
	sectionPrefix string
	matchers      []optionMatcher
}

func newLineClassifier(syn SymbolSyntax) *lineClassifier {
	return &lineClassifier{
		syntax:        syn,
		sectionPrefix: strings.ToLower(syn.SectionPrefix),
		matchers:      optionMatchers(syn),
	}
}

// classify returns the kind of the trimmed line s. For options it also
// returns the name of the first matching rule.
// Headers are checked before options.
func (c *lineClassifier) classify(s string) (lineKind, string) {
	if s == "" {
		return lineBlank, ""
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, c.sectionPrefix) {
		return lineHeader, ""
	}
	if rule, ok := c.matchOption(s, lower); ok {
		return lineOption, rule
	}
	return lineText, ""
}

func (c *lineClassifier) matchOption(s, lower string) (string, bool) {
	for _, m := range c.matchers {
		if m.match(s, lower) {
			return m.name, true
		}
	}
	return "", false
}

// parseOption extracts the option text and correctness from an option line.
// ok is false when nothing remains after the markers are stripped.
//
// Stripping order: the correct token prefix, then everything up to and
// including the first marker (or a leading fallback marker), then a leading
// run of '.', '-' and '_'.
func (c *lineClassifier) parseOption(line string) (text string, correct bool, ok bool) {
	s := textnorm.Trim(line)
	if s == "" {
		return "", false, false
	}

	token := c.syntax.CorrectToken
	if len(s) >= len(token) && strings.EqualFold(s[:len(token)], token) {
		correct = true
		s = textnorm.Trim(s[len(token):])
	}

	if idx := strings.Index(s, c.syntax.Marker); idx >= 0 {
		s = textnorm.Trim(s[idx+len(c.syntax.Marker):])
	} else if strings.HasPrefix(s, c.syntax.FallbackMarker) {
		s = textnorm.Trim(s[len(c.syntax.FallbackMarker):])
	}

	s = textnorm.Trim(strings.TrimLeft(s, ".-_"))
	if s == "" {
		return "", false, false
	}
	return textnorm.Clean(s), correct, true
}
