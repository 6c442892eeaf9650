// Package pipeline implements the article formatting stages.
//
// Generated drafts pass through three stages:
//   - Normalization: line endings, "H2: Title" labels, model-written tables
//     of contents, metadata preface lines and SEO postscripts
//   - Rendering: a line-oriented pass producing an HTML fragment with a
//     single generated table of contents, tiered headings and an FAQ block
//   - Excerpt extraction: the "## Introduction" section as plain text,
//     converted via Goldmark and read back with goquery
//
// Every stage is a pure function of its input. Publishing and draft I/O live
// in the root contentorch package and the draft package.
package pipeline
