package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	nbdash "github.com/alnah/go-nbdash"
	"github.com/alnah/go-nbdash/internal/config"
)

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string // substring; "" means no hint
	}{
		{"unknown template", fmt.Errorf("%w: %w", nbdash.ErrConfig, nbdash.ErrUnknownTemplate), "valid templates: default, minimal, grid"},
		{"highlight style", fmt.Errorf("%w: %w", nbdash.ErrConfig, nbdash.ErrUnknownHighlightStyle), "chroma style"},
		{"style not found", nbdash.ErrStyleNotFound, "available: default, grid, minimal"},
		{"input with other extension", fmt.Errorf("%w: %s", nbdash.ErrInputNotFound, "notes.txt"), "got notes.txt"},
		{"input notebook", fmt.Errorf("%w: %s", nbdash.ErrInputNotFound, "a.ipynb"), "check the notebook path"},
		{"format", nbdash.ErrEmptyNotebook, "nbformat 4"},
		{"config not found", config.ErrConfigNotFound, "--config"},
		{"write", ErrWriteHTML, "writable"},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want no hint", got)
				}
				return
			}
			if !strings.HasPrefix(got, "\n  hint: ") || !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want hint containing %q", got, tt.want)
			}
		})
	}
}
