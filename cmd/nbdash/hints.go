package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	nbdash "github.com/alnah/go-nbdash"
	"github.com/alnah/go-nbdash/internal/assets"
	"github.com/alnah/go-nbdash/internal/config"
	"github.com/alnah/go-nbdash/internal/hints"
)

// hintFor returns an actionable hint for err, or "" if none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, nbdash.ErrUnknownTemplate):
		return hints.ForUnknownTemplate(strings.Join(nbdash.Templates(), ", "))
	case errors.Is(err, nbdash.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle()
	case errors.Is(err, nbdash.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.AvailableStyles())
	case errors.Is(err, nbdash.ErrInputNotFound):
		return hints.ForInputNotFound(notFoundPath(err))
	case errors.Is(err, nbdash.ErrFormat):
		return hints.ForInvalidNotebook()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigCandidates())
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	}
	return ""
}

// notFoundPath extracts the path from an "input not found: <path>" message.
func notFoundPath(err error) string {
	msg := err.Error()
	prefix := nbdash.ErrInputNotFound.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return ""
}

// userConfigCandidates returns the per-user config locations worth suggesting.
func userConfigCandidates() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-nbdash", "nbdash.yaml")}
}
