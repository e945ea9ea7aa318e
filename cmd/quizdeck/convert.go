package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	quizdeck "github.com/alnah/go-quizdeck"
	"github.com/alnah/go-quizdeck/internal/config"
	"github.com/alnah/go-quizdeck/internal/hints"
)

// convertCommands maps converter command names to their input format.
var convertCommands = map[string]quizdeck.Format{
	"symbol":   quizdeck.FormatSymbol,
	"lettered": quizdeck.FormatLettered,
	"markdown": quizdeck.FormatMarkdown,
}

// runConvert converts one input file with the converter for format.
// Returns nil on -h/--help.
func runConvert(format quizdeck.Format, args []string, env *Environment) error {
	usage := func(w io.Writer) { printConvertUsage(w, format) }

	flags, positional, err := parseConvertFlags(string(format), args, usage, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) == 0 {
		usage(env.Stderr)
		return ErrMissingInput
	}
	inputPath := positional[0]

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfigWithHints(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	data, err := readInput(format, inputPath)
	if err != nil {
		return err
	}

	conv, err := quizdeck.NewConverter(format,
		quizdeck.WithLogger(newLogger(env.Stderr, flags.common.verbose)),
		quizdeck.WithSymbolSyntax(symbolSyntax(cfg)),
	)
	if err != nil {
		return fmt.Errorf("configuring %s converter: %w", format, err)
	}

	deck, err := conv.Convert(data)
	if err != nil {
		if errors.Is(err, quizdeck.ErrDecodeInput) {
			return fmt.Errorf("%w: %s: %v%s", ErrInvalidEncoding, inputPath, err, hints.ForInvalidEncoding())
		}
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	if flags.stdout {
		return writeStdout(deck, flags.common.quiet, env)
	}

	outputPath := resolveOutputPath(flags.output, envCfg, cfg)
	if err := quizdeck.WriteFile(outputPath, deck); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s with %d questions.\n", outputPath, len(deck.Questions))
	}
	return nil
}

// readInput reads the whole input file.
// The symbol format has no existence check: a missing file surfaces as the
// underlying read error. The other formats report ErrInputNotFound first.
func readInput(format quizdeck.Format, path string) ([]byte, error) {
	if format != quizdeck.FormatSymbol {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s%s", ErrInputNotFound, path, hints.ForInputNotFound(path))
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// writeStdout prints the encoded deck. The confirmation line goes to stderr
// so stdout stays valid JSON.
func writeStdout(deck *quizdeck.Deck, quiet bool, env *Environment) error {
	data, err := quizdeck.Encode(deck)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(env.Stdout, string(data)); err != nil {
		return fmt.Errorf("%w: %v", quizdeck.ErrWriteDeck, err)
	}
	if !quiet {
		fmt.Fprintf(env.Stderr, "Wrote %d questions to stdout.\n", len(deck.Questions))
	}
	return nil
}

// loadConfigWithHints resolves the config and appends a hint when the named
// config cannot be found.
func loadConfigWithHints(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	cfg, err := resolveConfig(flagConfig, envCfg)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			name := flagConfig
			if name == "" {
				name = envCfg.ConfigPath
			}
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// symbolSyntax maps the config file's symbol section to converter options.
func symbolSyntax(cfg *config.Config) quizdeck.SymbolSyntax {
	return quizdeck.SymbolSyntax{
		Marker:         cfg.Symbol.Marker,
		FallbackMarker: cfg.Symbol.FallbackMarker,
		CorrectToken:   cfg.Symbol.CorrectToken,
		SectionPrefix:  cfg.Symbol.SectionPrefix,
	}
}

// newLogger returns a debug-level text logger on w when verbose is set, and a
// logger that discards everything otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
