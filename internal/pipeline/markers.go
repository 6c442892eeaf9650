package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexical markers emitted by generators. Matching is case-insensitive.
var (
	// prefaceMarkers announce metadata lines that never belong in the article body.
	prefaceMarkers = []string{
		"title:",
		"proposed seo title:",
		"proposed seo",
		"meta description",
		"proposed meta description",
		"suggested slug",
		"excerpt",
		"seo enhancements",
	}

	// tailMarkers start a postscript appended after the article proper.
	tailMarkers = []string{
		"optional seo enhancements",
		"optional seo enhancements for wordpress",
		"seo enhancements",
		"seo suggestions",
	}

	faqMarkers = map[string]bool{
		"faq":                        true,
		"faqs":                       true,
		"frequently asked questions": true,
	}

	tocMarkers = map[string]bool{
		"table of contents": true,
		"toc":               true,
	}
)

// maxHeadingRunes bounds the length of a plain line promoted to a heading.
const maxHeadingRunes = 80

// Precompiled regex patterns for performance.
var (
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// "H2: Title", "h3 - Title", "H1 Title"
	headingLabelPattern = regexp.MustCompile(`(?i)^\s*H([1-6])\s*[:\-]?\s+(.*)$`)

	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	bulletPattern  = regexp.MustCompile(`^[-*•\x{2013}\x{2014}]\s+(.+)$`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// splitLines returns the lines of content with line endings normalized.
// Empty content yields no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(normalizeLineEndings(content), "\n")
}

// normalizeKey lowercases s, trims it and collapses inner whitespace.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRun.ReplaceAllString(s, " ")
}

func hasAnyPrefix(lower string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// isPreface reports whether a trimmed line is generator metadata.
func isPreface(line string) bool {
	return hasAnyPrefix(strings.ToLower(line), prefaceMarkers)
}

// isOptionalTail reports whether a trimmed line starts the generator postscript.
func isOptionalTail(line string) bool {
	return hasAnyPrefix(strings.ToLower(line), tailMarkers)
}

// isTOCMarker reports whether a line (with or without # markers) names a table of contents.
func isTOCMarker(line string) bool {
	return tocMarkers[normalizeKey(strings.TrimLeft(line, "#"))]
}

func isFAQMarker(title string) bool {
	return faqMarkers[normalizeKey(title)]
}

// bulletText returns the item text of a bullet line.
func bulletText(line string) (string, bool) {
	m := bulletPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// markdownHeading returns the marker depth and trimmed title of a "#" heading line.
func markdownHeading(line string) (depth int, title string, ok bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), strings.TrimSpace(m[2]), true
}

// looksLikeHeading reports whether a plain line reads as a title: short,
// capitalized and not ending a sentence.
func looksLikeHeading(line string) bool {
	if line == "" || utf8.RuneCountInString(line) >= maxHeadingRunes {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(first) && !strings.HasSuffix(line, ".")
}
