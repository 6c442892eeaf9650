package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-slug"

	contentorch "github.com/sabers13/agentic-ai-content-orchestrator"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/config"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/draft"
)

// dirPermissions applies to created output directories.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// Artifact extensions written per draft.
const (
	extMarkdown = ".md"
	extHTML     = ".html"
	extBundle   = ".json"
)

// maxAutoWorkers caps the worker count derived from GOMAXPROCS.
const maxAutoWorkers = 8

// DraftFormatter is the interface for the formatting service.
type DraftFormatter interface {
	Format(ctx context.Context, input contentorch.Input) (*contentorch.Result, error)
}

// Compile-time interface implementation check.
var _ DraftFormatter = (*contentorch.Formatter)(nil)

// FormatResult holds the outcome of formatting a single draft.
type FormatResult struct {
	InputPath  string
	OutputPath string // bundle path
	Slug       string
	Err        error
	Duration   time.Duration
}

// batch formats drafts with settings shared across a run. A run spans every
// call to run on the same batch, so a watch session is one run.
type batch struct {
	formatter DraftFormatter
	cfg       *config.Config
	runID     string
	now       func() time.Time
	logger    *slog.Logger
	claims    *slugClaims
}

// run formats files concurrently with at most workers goroutines. Results
// are returned in input order.
func (b *batch) run(ctx context.Context, files []DraftFile, workers int) []FormatResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]FormatResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = FormatResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = b.formatFile(ctx, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// formatFile loads, formats and writes a single draft.
func (b *batch) formatFile(ctx context.Context, f DraftFile) FormatResult {
	start := time.Now()
	result := FormatResult{InputPath: f.InputPath}
	fail := func(err error) FormatResult {
		result.Err = err
		result.Duration = time.Since(start)
		b.logger.Debug("draft failed", "input", f.InputPath, "error", err)
		return result
	}

	d, err := draft.Load(f.InputPath)
	if err != nil {
		return fail(err)
	}

	res, err := b.formatter.Format(ctx, draftInput(d, b.logger))
	if err != nil {
		return fail(err)
	}
	result.Slug = res.Slug

	base := filepath.Join(f.OutputDir, res.Slug)
	if owner, ok := b.claims.claim(base, f.InputPath); !ok {
		return fail(fmt.Errorf("%w %q: %s", ErrDuplicateSlug, res.Slug, owner))
	}

	if err := os.MkdirAll(f.OutputDir, dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrOutputDir, err))
	}

	bundle := b.bundle(f.InputPath, d, res)
	cleaned := &draft.Draft{
		Title:      bundle.Title,
		Slug:       res.Slug,
		Brief:      d.Brief,
		Tone:       d.Tone,
		Tags:       bundle.Tags,
		Categories: bundle.Categories,
		Content:    res.Markdown,
	}

	if err := draft.WriteMarkdown(base+extMarkdown, cleaned); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	if err := draft.WriteHTML(base+extHTML, res.HTML); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	if err := draft.WriteBundle(base+extBundle, bundle); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.OutputPath = base + extBundle
	result.Duration = time.Since(start)
	return result
}

// bundle assembles the publish bundle for a formatted draft.
func (b *batch) bundle(source string, d *draft.Draft, res *contentorch.Result) *draft.Bundle {
	title := res.Title
	if title == "" {
		title = draft.DefaultTitle
	}

	toc := make([]draft.TOCEntry, 0, len(res.Headings))
	for _, h := range res.Headings {
		level := 3
		if h.Tier == contentorch.TierSubsection {
			level = 4
		}
		toc = append(toc, draft.TOCEntry{Title: h.Title, Slug: h.Slug, Level: level})
	}

	return &draft.Bundle{
		RunID:           b.runID,
		Source:          source,
		FormattedAt:     b.now().UTC(),
		Title:           title,
		Slug:            res.Slug,
		Status:          b.cfg.EffectiveStatus(),
		Tags:            mergeTerms(d.Tags, b.cfg.Publish.Tags),
		Categories:      mergeTerms(d.Categories, b.cfg.Publish.Categories),
		Excerpt:         res.Excerpt,
		ContentHTML:     res.HTML,
		ContentMarkdown: res.Markdown,
		TOC:             toc,
		HasFAQ:          res.HasFAQ,
	}
}

// draftInput converts a draft to formatter input. Slugs written by the
// generator are not always URL-safe ("what-is-ai?"); those are normalized
// rather than rejected.
func draftInput(d *draft.Draft, logger *slog.Logger) contentorch.Input {
	postSlug := d.Slug
	if postSlug != "" && !slug.IsValid(postSlug) {
		normalized := contentorch.PostSlug(postSlug)
		logger.Warn("normalized draft slug", "slug", postSlug, "normalized", normalized)
		postSlug = normalized
	}
	return contentorch.Input{
		Title:    d.Title,
		Slug:     postSlug,
		Markdown: d.Content,
	}
}

// mergeTerms appends extra to terms, dropping blanks and case-insensitive
// duplicates while keeping first-seen order and spelling.
func mergeTerms(terms, extra []string) []string {
	out := make([]string, 0, len(terms)+len(extra))
	seen := make(map[string]bool, cap(out))
	for _, t := range slices.Concat(terms, extra) {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// slugClaims records which draft owns each output path within a run. A draft
// may reclaim its own path, so re-saving it rewrites its artifacts.
type slugClaims struct {
	mu     sync.Mutex
	owners map[string]string
}

func newSlugClaims() *slugClaims {
	return &slugClaims{owners: make(map[string]string)}
}

// claim reserves base for input. It returns the current owner and false
// when another draft already holds it.
func (c *slugClaims) claim(base, input string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if owner, ok := c.owners[base]; ok && owner != input {
		return owner, false
	}
	c.owners[base] = input
	return input, true
}

// resolveWorkers determines the worker count.
// Priority: explicit setting > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}

// ResultSummary holds the count of succeeded and failed drafts.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed drafts.
func countResults(results []FormatResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs formatting results using the provided writers.
// Returns the number of failures.
func printResultsWithWriter(results []FormatResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// batchError summarizes failures. A single failed draft keeps its cause in
// the chain so the exit code reflects it.
func batchError(results []FormatResult) error {
	summary := countResults(results)
	if summary.Failed == 0 {
		return nil
	}
	if len(results) == 1 {
		return fmt.Errorf("%w: %w", ErrFormatFailed, results[0].Err)
	}
	return fmt.Errorf("%w: %d of %d drafts", ErrFormatFailed, summary.Failed, len(results))
}
