package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: contentorch <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  normalize  Print a draft as cleaned markdown")
	fmt.Fprintln(w, "  render     Print a draft as an HTML fragment")
	fmt.Fprintln(w, "  excerpt    Print the introduction excerpt of a draft")
	fmt.Fprintln(w, "  format     Write publish bundles for drafts")
	fmt.Fprintln(w, "  watch      Format drafts as they change")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'contentorch help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags shared by every command.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and debug logs")
}

// printTextUsage prints usage for normalize, render and excerpt.
func printTextUsage(w io.Writer, cmd, summary string) {
	fmt.Fprintf(w, "Usage: contentorch %s <file|-> [flags]\n", cmd)
	fmt.Fprintln(w)
	fmt.Fprintln(w, summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Draft (.md, .markdown, .json), or - to read markdown from stdin")
	fmt.Fprintln(w)
	if cmd == cmdNormalize {
		fmt.Fprintln(w, "Normalize:")
		fmt.Fprintln(w, "      --labels-only         Only convert \"H2: Title\" labels")
		fmt.Fprintln(w)
	}
	printCommonFlags(w)
}

// printFormatUsage prints usage for the format command.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: contentorch format <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format drafts and write <slug>.md, <slug>.html and <slug>.json for each.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Draft file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	printBatchFlags(w)
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: contentorch watch <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format drafts below dir whenever they are created or saved.")
	fmt.Fprintln(w, "Stops on Ctrl+C.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir      Draft directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	printBatchFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "      --debounce <d>        Quiet period before formatting (default 200ms)")
	fmt.Fprintln(w, "      --initial             Format existing drafts first")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

func printBatchFlags(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: <input dir>/formatted)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publishing:")
	fmt.Fprintln(w, "      --status <s>          publish, draft, pending, private, future")
	fmt.Fprintln(w, "      --tag <s>             Tag added to every bundle (repeatable)")
	fmt.Fprintln(w, "      --category <s>        Category added to every bundle (repeatable)")
}

// printCommandUsage prints usage for cmd. Unknown commands print nothing.
func printCommandUsage(w io.Writer, cmd string) {
	switch cmd {
	case cmdNormalize:
		printTextUsage(w, cmd, "Remove model-written tables of contents, SEO preface lines and\npostscripts, and convert \"H2: Title\" labels into markdown headings.")
	case cmdRender:
		printTextUsage(w, cmd, "Render a cleaned draft as an HTML fragment with a table of contents.")
	case cmdExcerpt:
		printTextUsage(w, cmd, "Print the \"## Introduction\" section as plain text.")
	case cmdFormat:
		printFormatUsage(w)
	case cmdWatch:
		printWatchUsage(w)
	case cmdVersion:
		fmt.Fprintln(w, "Usage: contentorch version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(w, "Usage: contentorch help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	if !isCommand(args[0]) {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command: %s", ErrInvalidArgs, args[0])
	}
	printCommandUsage(env.Stdout, args[0])
	return nil
}
