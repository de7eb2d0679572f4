package main

import (
	"errors"
	"os"

	nbdash "github.com/alnah/go-nbdash"
	"github.com/alnah/go-nbdash/internal/config"
)

// Exit codes for the nbdash CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or style
	ExitIO      = 3 // Input not found, unreadable, or output not writable
	ExitFormat  = 4 // Input is not a notebook
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Format errors (exit 4)
	if errors.Is(err, nbdash.ErrFormat) {
		return ExitFormat
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, nbdash.ErrConfig) ||
		errors.Is(err, nbdash.ErrUnknownTemplate) ||
		errors.Is(err, nbdash.ErrUnknownHighlightStyle) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, nbdash.ErrInputNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoNotebooks) ||
		errors.Is(err, ErrReadNotebook) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	return ExitGeneral
}
