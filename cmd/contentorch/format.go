package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	contentorch "github.com/sabers13/agentic-ai-content-orchestrator"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/config"
)

// runFormat formats a draft file or every draft below a directory.
func runFormat(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFormatFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, logger, err := prepareRun(flags, env)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	outputDir := cfg.Output.DefaultDir
	if outputDir == "" {
		outputDir = defaultOutputDir(inputPath)
	}

	files, err := discoverDrafts(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering drafts: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no drafts found in %s", ErrNoInput, inputPath)
	}

	b := newBatch(cfg, logger, env)
	workers := resolveWorkers(cfg.Workers)
	logger.Debug("formatting drafts", "drafts", len(files), "workers", workers, "output", outputDir)

	results := b.run(ctx, files, workers)
	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)

	if err := ctx.Err(); err != nil {
		return err
	}
	return batchError(results)
}

// prepareRun resolves configuration for format and watch and builds the
// run logger.
func prepareRun(flags *formatFlags, env *Environment) (*config.Config, *slog.Logger, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return nil, nil, err
	}

	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, newLogger(env.Stderr, flags.common), nil
}

// newBatch creates a batch with a fresh run id attached to every log record.
func newBatch(cfg *config.Config, logger *slog.Logger, env *Environment) *batch {
	runID := uuid.New().String()
	logger = logger.With("run_id", runID)
	return &batch{
		formatter: contentorch.New(contentorch.WithLogger(logger)),
		cfg:       cfg,
		runID:     runID,
		now:       env.Now,
		logger:    logger,
		claims:    newSlugClaims(),
	}
}

// mergeFlags applies explicitly set CLI flags over config values (CLI wins).
// Tags and categories from flags are added to the configured ones.
func mergeFlags(flags *formatFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.publish.status != "" {
		cfg.Publish.Status = flags.publish.status
	}
	if len(flags.publish.tags) > 0 {
		cfg.Publish.Tags = mergeTerms(cfg.Publish.Tags, flags.publish.tags)
	}
	if len(flags.publish.categories) > 0 {
		cfg.Publish.Categories = mergeTerms(cfg.Publish.Categories, flags.publish.categories)
	}
}

// resolveInputPath returns the positional input or the configured default
// directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected one input, got %d", ErrInvalidArgs, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}
