// Package contentorch turns generated article drafts into publish-ready
// Markdown, HTML and excerpts.
//
// # Quick Start
//
// Create a formatter and format a draft:
//
//	f := contentorch.New()
//
//	result, err := f.Format(ctx, contentorch.Input{
//	    Title:    "AI Tools for Marketing",
//	    Markdown: draft,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Slug, result.Excerpt)
//
// # Formatting Pipeline
//
// Format runs these stages:
//
//  1. Cleanup: line endings, "H2: Title" labels, model-written tables of
//     contents, metadata preface lines and SEO postscripts
//  2. Rendering: an HTML fragment with a generated table of contents,
//     <h3>/<h4> headings with anchor ids and a trailing FAQ block
//  3. Excerpt: the "## Introduction" section as plain text
//  4. Post slug: derived from the title unless one is given
//
// The stages are also available as standalone functions: NormalizeMarkdown,
// StripTOCAndPreface, Render and ExtractIntroductionExcerpt. They never fail
// and hold no state.
//
// # Concurrency
//
// A Formatter is safe for concurrent use. Batch callers share one instance
// across workers.
package contentorch
