package nbdash

import (
	"errors"
	"fmt"

	"github.com/alnah/go-nbdash/internal/notebook"
	"github.com/alnah/go-nbdash/internal/pipeline"
	"github.com/alnah/go-nbdash/internal/render"
)

// Error categories. Specific errors below match one of them under errors.Is.
var (
	// ErrInputNotFound indicates the notebook file could not be read.
	ErrInputNotFound = errors.New("input not found")

	// ErrFormat indicates the notebook is not valid JSON or lacks a cell list.
	ErrFormat = notebook.ErrFormat

	// ErrConfig indicates an invalid option, template, style or path.
	ErrConfig = errors.New("invalid configuration")
)

// Specific errors.
var (
	ErrEmptyNotebook = fmt.Errorf("%w: notebook content cannot be empty", ErrFormat)

	// ErrUnknownTemplate is returned wrapped in ErrConfig.
	ErrUnknownTemplate = render.ErrUnknownLayout

	// ErrUnknownHighlightStyle is returned wrapped in ErrConfig.
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlightStyle

	ErrInvalidOutputPath = fmt.Errorf("%w: invalid output path", ErrConfig)
	ErrStyleNotFound     = fmt.Errorf("%w: style not found", ErrConfig)
	ErrInvalidAssetPath  = fmt.Errorf("%w: invalid asset path", ErrConfig)
	ErrRender            = render.ErrRender
)

// configError marks err as a configuration error while keeping err
// reachable through errors.Is.
func configError(err error) error {
	return fmt.Errorf("%w: %w", ErrConfig, err)
}
