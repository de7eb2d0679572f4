package nbdash

import (
	"go.uber.org/zap"

	"github.com/alnah/go-nbdash/internal/render"
)

// Template names accepted in Input.Template.
const (
	TemplateDefault = string(render.LayoutDefault)
	TemplateMinimal = string(render.LayoutMinimal)
	TemplateGrid    = string(render.LayoutGrid)
)

// Templates returns the valid template names in display order.
func Templates() []string {
	names := make([]string, len(render.Layouts))
	for i, l := range render.Layouts {
		names[i] = string(l)
	}
	return names
}

// Input contains the data for a single conversion.
type Input struct {
	Notebook []byte // raw .ipynb JSON (required)
	Template string // default, minimal or grid (empty = default, case-insensitive)
	Title    string // replaces the detected title when set
	CSS      string // extra CSS appended after the template style
	Date     string // "Generated on" stamp, already formatted (empty = none)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML  []byte
	Title string // the title used in the report
	Stats Stats
}

// Stats counts what the conversion produced and what it skipped.
// Skipped items never fail a conversion.
type Stats struct {
	Cells         int // cells loaded
	SkippedCells  int // cell entries that could not be loaded
	TextBlocks    int
	ImageBlocks   int
	EmptyText     int // markdown cells with no renderable text
	SkippedImages int // image payloads that failed validation
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	assetPath      string
	styleInput     string
	resolvedStyle  string
	highlightStyle string
	defaultTitle   string
}

// WithLogger sets the logger used for skipped items and conversion stats.
// A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

// WithAssetLoader sets a custom loader for template styles.
// Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithAssetPath sets a directory whose styles/{name}.css files override the
// built-in template styles. Missing styles fall back to the built-in ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithStyle replaces the template style for every layout.
// Accepts a style name ("grid"), a file path ("./custom.css") or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithHighlightStyle sets the chroma style for fenced code blocks.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}

// WithDefaultTitle sets the title used when the notebook has no level-1
// heading. Empty keeps "Dashboard".
func WithDefaultTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.defaultTitle = title
	}
}
