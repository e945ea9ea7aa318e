package main

import (
	"errors"

	quizdeck "github.com/alnah/go-quizdeck"
	"github.com/alnah/go-quizdeck/internal/config"
)

// Exit codes for the quizdeck CLI.
// A missing input argument, a missing input file and unreadable input all
// exit 1; only invalid flags, config or commands exit 2.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Missing input, I/O, decode or check failures
	ExitUsage   = 2 // Invalid flags, config, or command
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, config.ErrInvalidMarker) ||
		errors.Is(err, quizdeck.ErrUnknownFormat) ||
		errors.Is(err, quizdeck.ErrEmptyMarker) ||
		errors.Is(err, quizdeck.ErrInvalidMarker) ||
		errors.Is(err, quizdeck.ErrEmptyCorrectToken) ||
		errors.Is(err, quizdeck.ErrEmptySectionTitle) {
		return ExitUsage
	}

	return ExitGeneral
}
