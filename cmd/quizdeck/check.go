package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	quizdeck "github.com/alnah/go-quizdeck"
	"github.com/alnah/go-quizdeck/internal/hints"
)

// runCheck reports structural issues in a written deck.
// The deck path defaults to QUIZDECK_OUTPUT, then the configured output path.
func runCheck(args []string, env *Environment) error {
	flags, positional, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfigWithHints(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	path := resolveOutputPath("", envCfg, cfg)
	if len(positional) > 0 {
		path = positional[0]
	}

	data, err := os.ReadFile(path) // #nosec G304 -- deck path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s%s", ErrInputNotFound, path, hints.ForInputNotFound(path))
		}
		return fmt.Errorf("%w: %v", ErrReadDeck, err)
	}

	deck, err := quizdeck.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadDeck, path, err)
	}

	issues := quizdeck.Check(deck)
	for _, issue := range issues {
		fmt.Fprintln(env.Stdout, issue)
	}
	if len(issues) > 0 {
		return fmt.Errorf("%w: %s: %d issue(s)%s", ErrCheckFailed, path, len(issues), hints.ForCheckIssues())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s: %d questions, no issues.\n", path, len(deck.Questions))
	}
	return nil
}
