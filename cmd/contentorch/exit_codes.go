package main

import (
	"errors"
	"os"

	contentorch "github.com/sabers13/agentic-ai-content-orchestrator"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/config"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/draft"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/watch"
)

// Exit codes for the contentorch CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All drafts formatted
	ExitGeneral = 1 // General/unexpected error, or failures in a multi-draft batch
	ExitUsage   = 2 // Invalid flags, config, or draft
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, draft.ErrDraftTooLarge) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrOutputIsInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidStatus) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrTooManyTerms) ||
		errors.Is(err, draft.ErrUnsupportedFormat) ||
		errors.Is(err, draft.ErrDraftParse) ||
		errors.Is(err, draft.ErrInvalidDraft) ||
		errors.Is(err, contentorch.ErrTitleTooLong) ||
		errors.Is(err, contentorch.ErrSlugTooLong) ||
		errors.Is(err, contentorch.ErrInvalidSlug) ||
		errors.Is(err, watch.ErrNotDirectory) {
		return ExitUsage
	}

	return ExitGeneral
}
