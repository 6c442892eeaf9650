package main

import (
	"errors"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/config"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/draft"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs   = errors.New("invalid arguments")
	ErrNoInput       = errors.New("no input specified")
	ErrReadInput     = errors.New("failed to read input")
	ErrWriteOutput   = errors.New("failed to write output")
	ErrOutputDir     = errors.New("failed to create output directory")
	ErrOutputIsInput = errors.New("output directory must differ from the watched directory")
	ErrDuplicateSlug = errors.New("another draft in this run already uses the slug")
	ErrFormatFailed  = errors.New("formatting failed")
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.AppName))
	case errors.Is(err, config.ErrInvalidStatus):
		return hints.ForInvalidStatus(config.ValidStatuses)
	case errors.Is(err, draft.ErrUnsupportedFormat):
		return hints.ForUnsupportedDraft(draft.Extensions)
	case errors.Is(err, draft.ErrDraftParse):
		return hints.ForDraftParse()
	case errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
