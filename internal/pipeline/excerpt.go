package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// introHeadingPattern matches a "## Introduction" heading line.
	introHeadingPattern = regexp.MustCompile(`(?im)^##\s+introduction\b.*$`)

	// nextSectionPattern matches the start of the next "##" section; "###"
	// subsections stay inside the introduction.
	nextSectionPattern = regexp.MustCompile(`(?m)^\s*##\s+`)

	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
)

// Excerpter extracts the plain-text introduction of an article.
type Excerpter struct {
	converter HTMLConverter
}

// NewExcerpter creates an Excerpter using converter, or goldmark when nil.
func NewExcerpter(converter HTMLConverter) *Excerpter {
	if converter == nil {
		converter = NewGoldmarkConverter()
	}
	return &Excerpter{converter: converter}
}

// Extract returns the "## Introduction" section as plain text with markup
// removed, or "" when there is no such section or it is empty.
func (e *Excerpter) Extract(ctx context.Context, content string) (string, error) {
	section := introductionSection(content)
	if section == "" {
		return "", nil
	}

	fragment, err := e.converter.ToHTML(ctx, section)
	if err != nil {
		return "", err
	}

	text, err := plainText(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " ")), nil
}

var defaultExcerpter = NewExcerpter(nil)

// ExtractIntroductionExcerpt is Extract without cancellation. It never fails;
// content that cannot be converted yields "".
func ExtractIntroductionExcerpt(content string) string {
	text, err := defaultExcerpter.Extract(context.Background(), content)
	if err != nil {
		return ""
	}
	return text
}

// introductionSection returns the trimmed markdown between the introduction
// heading and the next "##" heading.
func introductionSection(content string) string {
	loc := introHeadingPattern.FindStringIndex(content)
	if loc == nil {
		return ""
	}

	rest := content[loc[1]:]
	if next := nextSectionPattern.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return strings.TrimSpace(rest)
}

// plainText joins the trimmed text nodes of an HTML fragment with single spaces.
func plainText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Find("body").Nodes {
		walk(n)
	}

	return strings.Join(parts, " "), nil
}
