package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/draft"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/fileutil"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/watch"
)

// runWatch formats drafts as they are created or saved below a directory.
// It returns nil when ctx is cancelled.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, logger, err := prepareRun(&flags.format, env)
	if err != nil {
		return err
	}

	dir, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	if !fileutil.DirExists(dir) {
		if fileutil.FileExists(dir) {
			return fmt.Errorf("%w: %s", watch.ErrNotDirectory, dir)
		}
		return fmt.Errorf("watch root %s: %w", dir, os.ErrNotExist)
	}

	outputDir := cfg.Output.DefaultDir
	if outputDir == "" {
		outputDir = filepath.Join(dir, defaultOutputDirName)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}
	if absDir == absOutput {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, dir)
	}

	quiet, verbose := flags.format.common.quiet, flags.format.common.verbose
	b := newBatch(cfg, logger, env)

	if flags.initial {
		files, err := discoverDrafts(absDir, absOutput)
		if err != nil {
			return fmt.Errorf("discovering drafts: %w", err)
		}
		printResultsWithWriter(b.run(ctx, files, resolveWorkers(cfg.Workers)), quiet, verbose, env)
	}

	w := watch.New(absDir,
		watch.WithExclude(absOutput),
		watch.WithFilter(draft.IsDraftFile),
		watch.WithDebounce(flags.debounce),
		watch.WithLogger(logger),
	)
	defer w.Close()

	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	logger.Info("watching for drafts", "dir", absDir, "output", absOutput)

	for path := range changes {
		file := DraftFile{InputPath: path, OutputDir: resolveOutputDir(path, absOutput, absDir)}
		printResultsWithWriter(b.run(ctx, []DraftFile{file}, 1), quiet, verbose, env)
	}

	logger.Debug("watch stopped")
	return nil
}
