package render

import (
	"errors"
	"fmt"
	"strings"
)

// Layout names a page layout.
type Layout string

// Supported layouts.
const (
	LayoutDefault Layout = "default" // titled sections, text above its plots
	LayoutMinimal Layout = "minimal" // bare sequential blocks
	LayoutGrid    Layout = "grid"    // responsive card grid
)

// Layouts lists every supported layout in display order.
var Layouts = []Layout{LayoutDefault, LayoutMinimal, LayoutGrid}

// ErrUnknownLayout indicates a layout name outside Layouts.
var ErrUnknownLayout = errors.New("unknown template")

// ParseLayout resolves a user-supplied layout name.
// Matching is case-insensitive and ignores surrounding whitespace.
// An empty name selects LayoutDefault.
func ParseLayout(name string) (Layout, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return LayoutDefault, nil
	}
	for _, l := range Layouts {
		if string(l) == normalized {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownLayout, name, LayoutNames())
}

// LayoutNames returns the supported layout names as a comma-separated list.
func LayoutNames() string {
	names := make([]string, len(Layouts))
	for i, l := range Layouts {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
