package contentorch

import "github.com/sabers13/agentic-ai-content-orchestrator/internal/pipeline"

// NormalizeMarkdown converts "H2: Title" style labels into Markdown headings
// and normalizes line endings.
func NormalizeMarkdown(content string) string {
	return pipeline.NormalizeMarkdown(content)
}

// StripTOCAndPreface removes model-written tables of contents, metadata
// preface lines and anything after an SEO postscript marker.
func StripTOCAndPreface(content string) string {
	return pipeline.StripTOCAndPreface(content)
}

// Render converts a draft into an HTML fragment with a generated table of
// contents and a trailing FAQ block. Content is rendered as given; call
// StripTOCAndPreface first to drop a model-written table of contents, as
// Formatter.Format does.
func Render(content string) string {
	return pipeline.Render(content)
}

// ExtractIntroductionExcerpt returns the "## Introduction" section as plain
// text, or "" when there is none.
func ExtractIntroductionExcerpt(content string) string {
	return pipeline.ExtractIntroductionExcerpt(content)
}

// Slugify derives the anchor id used for a heading.
func Slugify(text string) string {
	return pipeline.Slugify(text)
}
