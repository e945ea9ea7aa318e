package main

import (
	"fmt"
	"io"

	quizdeck "github.com/alnah/go-quizdeck"
	"github.com/alnah/go-quizdeck/internal/hints"
)

// formatDescriptions is the one-line summary of each converter command.
var formatDescriptions = map[quizdeck.Format]string{
	quizdeck.FormatSymbol:   "Convert a symbol-marked bank (© options, ff = correct)",
	quizdeck.FormatLettered: "Convert a tagged bank (TITLE:, Q:, A), ANS:, EXPL:)",
	quizdeck.FormatMarkdown: "Convert a Markdown bank with task-list options",
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quizdeck <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, f := range quizdeck.Formats() {
		fmt.Fprintf(w, "  %-10s %s\n", f, formatDescriptions[f])
	}
	fmt.Fprintln(w, "  check      Report structural issues in a questions.json")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'quizdeck help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for a converter command.
func printConvertUsage(w io.Writer, format quizdeck.Format) {
	fmt.Fprintf(w, "Usage: quizdeck %s <input> [flags]\n", format)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s.\n", formatDescriptions[format])
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Plain-text quiz bank")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default questions.json)")
	fmt.Fprintln(w, "      --stdout              Write JSON to stdout instead of a file")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log dropped and suspicious questions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  QUIZDECK_CONFIG           Config file name or path")
	fmt.Fprintln(w, "  QUIZDECK_OUTPUT           Output file")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quizdeck check [questions.json] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report questions with fewer than two options, missing or undeclared")
	fmt.Fprintln(w, "answers, inconsistent multi flags, or out-of-sequence ids.")
	fmt.Fprintln(w, "Exits 1 when any issue is found.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show issues")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quizdeck config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after defaults, config file and environment")
	fmt.Fprintln(w, "are applied. The output is a valid config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	if format, ok := convertCommands[args[0]]; ok {
		printConvertUsage(env.Stdout, format)
		return nil
	}

	switch args[0] {
	case "check":
		printCheckUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: quizdeck version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: quizdeck help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s%s", ErrUnknownCommand, args[0], hints.ForUnknownCommand(commandNames()))
	}
	return nil
}
