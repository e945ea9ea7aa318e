package quizdeck

import (
	"fmt"
	"strings"
)

// Format names an input dialect.
type Format string

// Supported input formats.
const (
	FormatSymbol   Format = "symbol"
	FormatLettered Format = "lettered"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatSymbol, FormatLettered, FormatMarkdown}
}

// Converter turns raw input bytes into a deck.
// Each call is independent; no state survives between calls.
type Converter interface {
	Convert(data []byte) (*Deck, error)
}

// Compile-time interface implementation checks.
var (
	_ Converter = (*SymbolConverter)(nil)
	_ Converter = (*LetteredConverter)(nil)
	_ Converter = (*MarkdownConverter)(nil)
)

// NewConverter returns the converter for format.
func NewConverter(format Format, opts ...ConverterOption) (Converter, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatSymbol:
		return NewSymbolConverter(opts...)
	case FormatLettered:
		return NewLetteredConverter(opts...), nil
	case FormatMarkdown:
		return NewMarkdownConverter(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
