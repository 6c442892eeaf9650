// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config, the CONTENTORCH_CONFIG variable, and the first
// per-user candidate among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/contentorch/") {
			hint += " or create " + p
			break
		}
	}

	return formatHints([]string{hint, "or set CONTENTORCH_CONFIG"})
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsupportedDraft lists the draft extensions that can be loaded.
func ForUnsupportedDraft(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return format("supported draft formats: " + strings.Join(supported, ", "))
}

// ForDraftParse returns a hint for malformed drafts.
func ForDraftParse() string {
	return format("front matter must be YAML between --- lines; JSON drafts need a \"content\" field")
}

// ForInvalidStatus lists the accepted publish statuses.
func ForInvalidStatus(valid []string) string {
	if len(valid) == 0 {
		return ""
	}
	return format("valid statuses: " + strings.Join(valid, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
