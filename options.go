package quizdeck

import (
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// SymbolSyntax describes the markers of the symbol format.
type SymbolSyntax struct {
	// Marker introduces an option anywhere on the line.
	Marker string
	// FallbackMarker introduces an option at the start of the line.
	FallbackMarker string
	// CorrectToken, placed before a marker, flags the option as correct.
	// Matched case-insensitively.
	CorrectToken string
	// SectionPrefix starts a section header line. Matched case-insensitively.
	SectionPrefix string
}

// DefaultSymbolSyntax returns the markers used by exported study banks.
func DefaultSymbolSyntax() SymbolSyntax {
	return SymbolSyntax{
		Marker:         "©",
		FallbackMarker: "@",
		CorrectToken:   "ff",
		SectionPrefix:  "knowledge assessment",
	}
}

// Validate checks that every marker is set and that both markers are a
// single character.
func (s SymbolSyntax) Validate() error {
	if s.Marker == "" || s.FallbackMarker == "" {
		return ErrEmptyMarker
	}
	if utf8.RuneCountInString(s.Marker) != 1 || utf8.RuneCountInString(s.FallbackMarker) != 1 {
		return ErrInvalidMarker
	}
	if strings.TrimSpace(s.CorrectToken) == "" {
		return ErrEmptyCorrectToken
	}
	if strings.TrimSpace(s.SectionPrefix) == "" {
		return ErrEmptySectionTitle
	}
	return nil
}

// converterConfig holds settings shared by all converters.
type converterConfig struct {
	logger *slog.Logger
	syntax SymbolSyntax
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		syntax: DefaultSymbolSyntax(),
	}
}

// ConverterOption configures a converter.
type ConverterOption func(*converterConfig)

// WithLogger sets the logger that receives diagnostics about dropped or
// suspicious questions. A nil logger is ignored.
func WithLogger(l *slog.Logger) ConverterOption {
	return func(c *converterConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSymbolSyntax overrides the symbol format markers.
// Only the symbol converter reads it.
func WithSymbolSyntax(s SymbolSyntax) ConverterOption {
	return func(c *converterConfig) {
		c.syntax = s
	}
}
