package pipeline

import (
	"strconv"
	"strings"
)

// maxLabelDepth caps the heading depth produced from "H<n>:" labels.
const maxLabelDepth = 3

// NormalizeMarkdown rewrites heading labels such as "H2: Title" or "h3 - Title"
// into "#" headings. Every other line passes through unchanged.
func NormalizeMarkdown(content string) string {
	lines := splitLines(content)
	for i, line := range lines {
		lines[i] = convertHeadingLabel(line)
	}
	return strings.Join(lines, "\n")
}

// convertHeadingLabel converts a single "H<n>" label line, clamping the depth to 1..3.
func convertHeadingLabel(line string) string {
	m := headingLabelPattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	depth, _ := strconv.Atoi(m[1])
	depth = max(1, min(depth, maxLabelDepth))
	return strings.Repeat("#", depth) + " " + strings.TrimSpace(m[2])
}

// StripTOCAndPreface normalizes heading labels and removes everything a
// generator adds around the article: preface metadata lines, a table of
// contents block, and any optional postscript. The HTML renderer builds the
// only table of contents, so none survives here.
func StripTOCAndPreface(content string) string {
	var out []string
	skippingTOC := false

	for _, raw := range splitLines(NormalizeMarkdown(content)) {
		line := strings.TrimSpace(raw)

		if line == "" {
			skippingTOC = false
			out = append(out, "")
			continue
		}
		if isPreface(line) {
			continue
		}
		if isOptionalTail(line) {
			break
		}
		if isTOCMarker(line) {
			skippingTOC = true
			continue
		}
		if skippingTOC {
			if _, ok := bulletText(line); ok {
				continue
			}
			skippingTOC = false
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
