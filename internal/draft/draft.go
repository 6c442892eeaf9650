// Package draft loads article drafts and writes the formatted artifacts.
//
// Drafts come in two shapes: the JSON documents produced by the generation
// step ({"title", "slug", "brief", "tone", "content", ...}) and Markdown files
// with an optional YAML front matter header. Both decode into a Draft.
package draft

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/fileutil"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/yamlutil"
)

// Sentinel errors for draft operations.
var (
	ErrUnsupportedFormat = errors.New("unsupported draft format")
	ErrDraftParse        = errors.New("failed to parse draft")
	ErrDraftTooLarge     = errors.New("draft exceeds maximum size")
	ErrInvalidDraft      = errors.New("invalid draft")
)

// MaxDraftSize limits the size of a draft file (10MB).
const MaxDraftSize = 10 << 20

// Draft field limits.
const (
	maxTitleLength = 300
	maxTermLength  = 100
	maxTerms       = 50
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".md", ".markdown", ".json"}

// yamlFrontMatter parses "---" delimited YAML through yamlutil so drafts and
// config files share one YAML decoder.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yamlutil.FrontMatter)

// Draft is an unformatted article. Extra keys in the source (scores, SEO
// analysis, run metadata) are ignored.
type Draft struct {
	Title      string   `json:"title" yaml:"title"`
	Slug       string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	Brief      string   `json:"brief,omitempty" yaml:"brief,omitempty"`
	Tone       string   `json:"tone,omitempty" yaml:"tone,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Content    string   `json:"content" yaml:"-"`
}

// Validate checks that the draft has content and that its metadata fits
// the limits of a published post.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Content, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("draft.content_required", "content is required")
			}
			return nil
		})),
		validation.Field(&d.Title, validation.RuneLength(0, maxTitleLength)),
		validation.Field(&d.Tags, validation.Length(0, maxTerms), validation.Each(validation.Required, validation.RuneLength(1, maxTermLength))),
		validation.Field(&d.Categories, validation.Length(0, maxTerms), validation.Each(validation.Required, validation.RuneLength(1, maxTermLength))),
	)
}

// IsDraftFile reports whether path has a draft extension.
func IsDraftFile(path string) bool {
	return fileutil.HasExtension(path, Extensions...)
}

// Load reads and parses the draft at path, then validates it.
func Load(path string) (*Draft, error) {
	if !IsDraftFile(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxDraftSize {
		return nil, fmt.Errorf("%w: %s (%d bytes, max %d)", ErrDraftTooLarge, path, info.Size(), MaxDraftSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- discovered or user-provided path
	if err != nil {
		return nil, err
	}

	return Parse(path, data)
}

// Parse decodes data as a draft, choosing the format from name's extension.
// Names without a draft extension are parsed as Markdown, which lets stdin
// be read as "-".
func Parse(name string, data []byte) (*Draft, error) {
	var d Draft
	var err error

	if fileutil.HasExtension(name, ".json") {
		err = parseJSON(data, &d)
	} else {
		err = parseMarkdown(data, &d)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDraftParse, name, err)
	}

	d.Title = strings.TrimSpace(d.Title)
	d.Slug = strings.TrimSpace(d.Slug)

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDraft, name, err)
	}
	return &d, nil
}

func parseJSON(data []byte, d *Draft) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(d); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON object")
	}
	return nil
}

func parseMarkdown(data []byte, d *Draft) error {
	body, err := frontmatter.Parse(bytes.NewReader(data), d, yamlFrontMatter)
	if err != nil {
		return err
	}
	d.Content = string(body)
	return nil
}
