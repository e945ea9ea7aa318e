package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	quizdeck "github.com/alnah/go-quizdeck"
	"github.com/alnah/go-quizdeck/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitGeneral
	}

	cmd, rest := args[1], args[2:]
	err := dispatch(cmd, rest, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

func dispatch(cmd string, args []string, env *Environment) error {
	if format, ok := convertCommands[cmd]; ok {
		return runConvert(format, args, env)
	}

	switch cmd {
	case "check":
		return runCheck(args, env)
	case "config":
		return runConfig(args, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "quizdeck %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(args, env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s%s", ErrUnknownCommand, cmd, hints.ForUnknownCommand(commandNames()))
	}
}

// commandNames lists every command in display order.
func commandNames() []string {
	names := make([]string, 0, len(convertCommands)+4)
	for _, f := range quizdeck.Formats() {
		names = append(names, string(f))
	}
	return append(names, "check", "config", "version", "help")
}
