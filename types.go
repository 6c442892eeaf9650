package contentorch

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/goliatone/go-slug"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/pipeline"
)

// Field length limits, counted in characters.
const (
	MaxTitleLength = 300
	MaxSlugLength  = 200
)

// Input contains the draft to format.
type Input struct {
	Title    string
	Slug     string // derived from Title when empty
	Markdown string
}

// Validate checks field limits and the explicit slug, if any.
func (in Input) Validate() error {
	if n := utf8.RuneCountInString(in.Title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrTitleTooLong, n, MaxTitleLength)
	}
	if in.Slug == "" {
		return nil
	}
	if n := utf8.RuneCountInString(in.Slug); n > MaxSlugLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrSlugTooLong, n, MaxSlugLength)
	}
	if !slug.IsValid(in.Slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, in.Slug)
	}
	return nil
}

// Heading is a navigable heading of the rendered article.
type Heading = pipeline.Heading

// Tier is the rank of a rendered heading.
type Tier = pipeline.Tier

// Heading tiers.
const (
	TierSection    = pipeline.TierSection
	TierSubsection = pipeline.TierSubsection
)

// Result is a formatted article.
type Result struct {
	Title    string
	Slug     string
	Markdown string // cleaned Markdown
	HTML     string // rendered fragment, TOC first
	Excerpt  string // plain-text introduction, may be empty
	Headings []Heading
	HasFAQ   bool
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger sets the logger used for per-document diagnostics.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}
