// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForInputNotFound returns a hint for a missing input file.
// Relative paths get a reminder about the working directory.
func ForInputNotFound(path string) string {
	if filepath.IsAbs(path) {
		return format("check the path and file name")
	}
	return format("paths are relative to the current directory")
}

// ForInvalidEncoding returns a hint for input that is not valid UTF-8.
func ForInvalidEncoding() string {
	return format("re-save the file as UTF-8, or use the symbol command which tolerates bad bytes")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-quizdeck") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownCommand lists the available commands.
func ForUnknownCommand(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForCheckIssues points lenient decks to their usual cause.
func ForCheckIssues() string {
	return formatHints([]string{
		"ANS: ids must match an option letter",
		"each Q: needs at least two options",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
