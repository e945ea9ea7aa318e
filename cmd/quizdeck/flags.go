package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the symbol, lettered and markdown commands.
type convertFlags struct {
	common commonFlags
	output string
	stdout bool
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log dropped and suspicious questions")
}

// parseConvertFlags parses flags of a converter command and returns
// positional args. usage is printed on -h/--help and on flag errors.
func parseConvertFlags(name string, args []string, usage func(io.Writer), stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default questions.json)")
	fs.BoolVar(&f.stdout, "stdout", false, "write JSON to stdout instead of a file")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, stderr io.Writer) (*checkFlags, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &checkFlags{}

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printCheckUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
