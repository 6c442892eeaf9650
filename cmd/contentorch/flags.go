package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/watch"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// textFlags holds flags for the single-draft commands (normalize, render, excerpt).
type textFlags struct {
	common     commonFlags
	labelsOnly bool // normalize: only convert "H2:" labels
}

// publishFlags holds the metadata stamped on bundles.
type publishFlags struct {
	status     string
	tags       []string
	categories []string
}

// formatFlags holds all flags for the format command.
type formatFlags struct {
	common  commonFlags
	output  string
	workers int
	publish publishFlags
}

// watchFlags holds all flags for the watch command.
type watchFlags struct {
	format   formatFlags
	debounce time.Duration
	initial  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-draft timing and debug logs")
}

// addPublishFlags adds bundle metadata flags to a FlagSet.
func addPublishFlags(fs *flag.FlagSet, f *publishFlags) {
	fs.StringVar(&f.status, "status", "", "post status: publish, draft, pending, private, future")
	fs.StringSliceVar(&f.tags, "tag", nil, "tag added to every bundle (repeatable)")
	fs.StringSliceVar(&f.categories, "category", nil, "category added to every bundle (repeatable)")
}

// addOutputFlags adds output and concurrency flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: <input dir>/formatted)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// newFlagSet creates a FlagSet that reports parse errors instead of exiting
// and prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseError wraps a pflag error so it maps to ExitUsage. Help requests
// pass through unchanged.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
}

// parseTextFlags parses flags for normalize, render and excerpt.
func parseTextFlags(cmd string, args []string, w io.Writer) (*textFlags, []string, error) {
	f := &textFlags{}
	fs := newFlagSet(cmd, w, func(w io.Writer) { printCommandUsage(w, cmd) })

	addCommonFlags(fs, &f.common)
	if cmd == cmdNormalize {
		fs.BoolVar(&f.labelsOnly, "labels-only", false, "only convert \"H2: Title\" labels, keep everything else")
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseFormatFlags parses format command flags and returns positional args.
func parseFormatFlags(args []string, w io.Writer) (*formatFlags, []string, error) {
	f := &formatFlags{}
	fs := newFlagSet(cmdFormat, w, func(w io.Writer) { printCommandUsage(w, cmdFormat) })

	addOutputFlags(fs, f)
	addPublishFlags(fs, &f.publish)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string, w io.Writer) (*watchFlags, []string, error) {
	f := &watchFlags{}
	fs := newFlagSet(cmdWatch, w, func(w io.Writer) { printCommandUsage(w, cmdWatch) })

	addOutputFlags(fs, &f.format)
	addPublishFlags(fs, &f.format.publish)
	addCommonFlags(fs, &f.format.common)
	fs.DurationVar(&f.debounce, "debounce", watch.DefaultDebounce, "quiet period before a changed draft is formatted")
	fs.BoolVar(&f.initial, "initial", false, "format existing drafts before watching")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	if f.debounce < 0 {
		return nil, nil, fmt.Errorf("%w: --debounce must not be negative", ErrInvalidArgs)
	}
	return f, fs.Args(), nil
}
