package main

// Notes:
// - exitCodeFor: every sentinel the CLI can surface is mapped, plus wrapped
//   forms to verify the errors.Is() chain, including the double-%w wrap used
//   by batchError for single-draft runs.
// - Exit code constants: Unix conventions (0=success, 1=general, 2=usage) and
//   custom codes below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	contentorch "github.com/sabers13/agentic-ai-content-orchestrator"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/config"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/draft"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/watch"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"output dir", ErrOutputDir, ExitIO},
		{"draft too large", draft.ErrDraftTooLarge, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"invalid args", ErrInvalidArgs, ExitUsage},
		{"output is input", ErrOutputIsInput, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid status", config.ErrInvalidStatus, ExitUsage},
		{"invalid workers", config.ErrInvalidWorkers, ExitUsage},
		{"too many terms", config.ErrTooManyTerms, ExitUsage},
		{"unsupported draft", draft.ErrUnsupportedFormat, ExitUsage},
		{"draft parse", draft.ErrDraftParse, ExitUsage},
		{"invalid draft", draft.ErrInvalidDraft, ExitUsage},
		{"title too long", contentorch.ErrTitleTooLong, ExitUsage},
		{"slug too long", contentorch.ErrSlugTooLong, ExitUsage},
		{"invalid slug", contentorch.ErrInvalidSlug, ExitUsage},
		{"watch root not a directory", watch.ErrNotDirectory, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},
		{"single failed draft", fmt.Errorf("%w: %w", ErrFormatFailed, draft.ErrInvalidDraft), ExitUsage},

		// General errors (exit 1)
		{"batch failure", fmt.Errorf("%w: 2 of 3 drafts", ErrFormatFailed), ExitGeneral},
		{"duplicate slug", ErrDuplicateSlug, ExitGeneral},
		{"html conversion", contentorch.ErrHTMLConversion, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	// Custom codes stay below 126 (Unix convention)
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, should be < 126", ExitIO)
	}
}
