package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/fileutil"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/yamlutil"
)

// filePermissions applies to every artifact written by this package.
const filePermissions = 0o644

// DefaultTitle is the post title of a draft that has none.
const DefaultTitle = "Untitled"

// TOCEntry is one heading of a formatted article. Level is the HTML heading
// level it was rendered at (3 or 4).
type TOCEntry struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Level int    `json:"level"`
}

// Bundle is the publish-ready form of a draft.
type Bundle struct {
	RunID           string     `json:"run_id,omitempty"`
	Source          string     `json:"source,omitempty"`
	FormattedAt     time.Time  `json:"formatted_at"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Status          string     `json:"status"`
	Tags            []string   `json:"tags"`
	Categories      []string   `json:"categories"`
	Excerpt         string     `json:"excerpt"`
	ContentHTML     string     `json:"content_html"`
	ContentMarkdown string     `json:"content_markdown"`
	TOC             []TOCEntry `json:"toc"`
	HasFAQ          bool       `json:"has_faq"`
}

// MarshalIndent encodes the bundle as two-space indented JSON with a
// trailing newline. HTML characters are not escaped and nil lists encode
// as [].
func (b *Bundle) MarshalIndent() ([]byte, error) {
	out := *b
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	if out.TOC == nil {
		out.TOC = []TOCEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("encoding bundle: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteBundle writes b as JSON to path.
func WriteBundle(path string, b *Bundle) error {
	data, err := b.MarshalIndent()
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, filePermissions)
}

// frontMatterHeader is the metadata written above a cleaned Markdown draft.
type frontMatterHeader struct {
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Brief      string   `yaml:"brief,omitempty"`
	Tone       string   `yaml:"tone,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

// MarshalMarkdown renders d as a Markdown file with a YAML front matter
// header. The result loads back into an equivalent Draft.
func MarshalMarkdown(d *Draft) ([]byte, error) {
	header, err := yamlutil.Marshal(frontMatterHeader{
		Title:      d.Title,
		Slug:       d.Slug,
		Brief:      d.Brief,
		Tone:       d.Tone,
		Tags:       d.Tags,
		Categories: d.Categories,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	if !bytes.HasSuffix(header, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString("---\n\n")
	buf.WriteString(d.Content)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteMarkdown writes d as a front matter Markdown file to path.
func WriteMarkdown(path string, d *Draft) error {
	data, err := MarshalMarkdown(d)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, filePermissions)
}

// WriteHTML writes an HTML fragment to path.
func WriteHTML(path, fragment string) error {
	return fileutil.WriteFileAtomic(path, []byte(fragment+"\n"), filePermissions)
}
