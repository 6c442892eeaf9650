package contentorch

import (
	"errors"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Input validation errors.
	ErrTitleTooLong = errors.New("title too long")
	ErrSlugTooLong  = errors.New("slug too long")
	ErrInvalidSlug  = errors.New("invalid slug")
)
