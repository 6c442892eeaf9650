package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdNormalize = "normalize"
	cmdRender    = "render"
	cmdExcerpt   = "excerpt"
	cmdFormat    = "format"
	cmdWatch     = "watch"
	cmdVersion   = "version"
	cmdHelp      = "help"
)

var commands = []string{cmdNormalize, cmdRender, cmdExcerpt, cmdFormat, cmdWatch, cmdVersion, cmdHelp}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(hasVerboseFlag(os.Args[1:]), os.Stderr)))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := runCommand(ctx, cmd, rest, env)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, ErrFormatFailed):
		// Per-draft failures were already reported.
	default:
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

func runCommand(ctx context.Context, cmd string, args []string, env *Environment) error {
	switch cmd {
	case cmdNormalize, cmdRender, cmdExcerpt:
		return runText(ctx, cmd, args, env)
	case cmdFormat:
		return runFormat(ctx, args, env)
	case cmdWatch:
		return runWatch(ctx, args, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "contentorch %s\n", Version)
		return nil
	case cmdHelp:
		return runHelp(args, env)
	}
	return fmt.Errorf("%w: unknown command: %s", ErrInvalidArgs, cmd)
}

// isCommand reports whether s names a command. Matching is case sensitive.
func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// hasVerboseFlag scans args for -v or --verbose before flags are parsed.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

func maxprocsLogger(verbose bool, w io.Writer) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}
