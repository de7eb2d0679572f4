// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForUnknownTemplate lists the valid layout names.
func ForUnknownTemplate(valid string) string {
	return format("valid templates: " + valid)
}

// ForInputNotFound returns hints for a missing or unreadable notebook.
func ForInputNotFound(path string) string {
	if path != "" && !strings.EqualFold(filepath.Ext(path), ".ipynb") {
		return format("expected a Jupyter notebook (.ipynb), got " + filepath.Base(path))
	}
	return format("check the notebook path and read permissions")
}

// ForInvalidNotebook returns hints for input that is not notebook JSON.
func ForInvalidNotebook() string {
	return format("the file must be nbformat 4 JSON with a top-level \"cells\" array; re-save it from Jupyter")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-nbdash/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a .css path")
}

// ForHighlightStyle returns a hint for unknown chroma style names.
func ForHighlightStyle() string {
	return format("use a chroma style name such as github, monokai or dracula")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
