package contentorch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/pipeline"
)

// Compile-time interface implementation checks.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// defaultSlug is the post slug of a draft without a usable title.
const defaultSlug = "untitled"

// Formatter runs the formatting pipeline over drafts.
// Create with New() and reuse across goroutines.
type Formatter struct {
	logger    *slog.Logger
	converter pipeline.HTMLConverter
	excerpter *pipeline.Excerpter
}

// New creates a Formatter with default configuration.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		logger:    slog.New(slog.DiscardHandler),
		converter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.excerpter = pipeline.NewExcerpter(f.converter)
	return f
}

// Format cleans the draft, renders it and extracts its excerpt.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (f *Formatter) Format(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cleaned := pipeline.StripTOCAndPreface(input.Markdown)
	doc := pipeline.RenderDocument(cleaned)

	excerpt, err := f.excerpter.Extract(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("extracting excerpt: %w", err)
	}

	postSlug := input.Slug
	if postSlug == "" {
		postSlug = PostSlug(input.Title)
	}

	f.logger.Debug("formatted draft",
		"slug", postSlug,
		"headings", len(doc.Headings),
		"faq", doc.HasFAQ,
		"excerpt", excerpt != "",
		"html_bytes", len(doc.HTML),
	)

	return &Result{
		Title:    strings.TrimSpace(input.Title),
		Slug:     postSlug,
		Markdown: cleaned,
		HTML:     doc.HTML,
		Excerpt:  excerpt,
		Headings: doc.Headings,
		HasFAQ:   doc.HasFAQ,
	}, nil
}

// PostSlug derives a URL slug from a post title. Titles that normalize to
// nothing yield "untitled". The result never exceeds MaxSlugLength.
func PostSlug(title string) string {
	normalized, err := slug.Normalize(strings.TrimSpace(title))
	if err != nil || normalized == "" {
		return defaultSlug
	}
	if r := []rune(normalized); len(r) > MaxSlugLength {
		normalized = strings.TrimRight(string(r[:MaxSlugLength]), "-")
	}
	return normalized
}

// withHTMLConverter replaces the excerpt converter. For tests.
func withHTMLConverter(c pipeline.HTMLConverter) Option {
	return func(f *Formatter) {
		f.converter = c
	}
}
