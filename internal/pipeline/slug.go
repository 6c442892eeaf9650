package pipeline

import (
	"regexp"
	"strings"
)

var (
	// nonSlugRune matches anything other than letters, numbers, underscore,
	// whitespace and hyphen.
	nonSlugRune  = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}-]`)
	slugSpaceRun = regexp.MustCompile(`[\s\p{Z}]+`)
)

// Slugify derives the anchor id for a heading. The same text always yields
// the same slug; duplicate headings share an anchor.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugRune.ReplaceAllString(s, "")
	return slugSpaceRun.ReplaceAllString(s, "-")
}
