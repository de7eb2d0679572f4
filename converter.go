package nbdash

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/alnah/go-nbdash/internal/assets"
	"github.com/alnah/go-nbdash/internal/fileutil"
	"github.com/alnah/go-nbdash/internal/notebook"
	"github.com/alnah/go-nbdash/internal/pipeline"
	"github.com/alnah/go-nbdash/internal/render"
)

// Compile-time interface checks.
var (
	_ assets.AssetLoader = (*publicToInternalAdapter)(nil)
	_ AssetLoader        = (*assetLoaderAdapter)(nil)
)

// Converter orchestrates the notebook-to-HTML pipeline.
// Create with NewConverter and call Convert for each notebook.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	log               *zap.Logger
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	extractor         *pipeline.Extractor
	renderer          *render.Renderer
	styles            map[render.Layout]string
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithAssetPath, WithLogger).
// Returns an error wrapping ErrConfig if a style, asset path or highlight
// style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		log:         zap.NewNop(),
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, convertAssetError(err)
		}
		c.assetLoader = resolver
		c.log.Debug("style overrides enabled", zap.String("path", resolver.CustomPath()))
	}

	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{
			pub:      c.publicAssetLoader,
			embedded: assets.NewEmbeddedLoader(),
		}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.loadLayoutStyles(); err != nil {
		return nil, err
	}

	highlighter, err := pipeline.NewHighlighter(c.cfg.highlightStyle)
	if err != nil {
		return nil, configError(err)
	}
	c.extractor = pipeline.NewExtractor(pipeline.NewMarkdownConverter(highlighter), c.log)

	c.renderer, err = render.New(c.assetLoader)
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the rendered report.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	layout, err := c.validateInput(input)
	if err != nil {
		return nil, err
	}

	nb, err := notebook.Parse(input.Notebook)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	blocks, stats := c.extractor.Extract(nb)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title := input.Title
	if title == "" {
		fallback := c.cfg.defaultTitle
		if fallback == "" {
			fallback = pipeline.DefaultTitle
		}
		title = pipeline.DetectTitle(blocks, fallback)
	}

	model := &pipeline.Model{
		Title:    title,
		Date:     input.Date,
		Kernel:   nb.Meta.Kernel,
		Language: nb.Meta.Language,
		Units:    pipeline.Pair(blocks),
	}

	// Template style first, user CSS last so it can override.
	css := c.styles[layout]
	if input.CSS != "" {
		css += "\n" + input.CSS
	}

	html, err := c.renderer.Render(model, layout, css)
	if err != nil {
		return nil, err
	}

	c.log.Debug("notebook converted",
		zap.String("template", string(layout)),
		zap.String("title", title),
		zap.Int("cells", stats.Cells),
		zap.Int("units", len(model.Units)),
		zap.Int("text_blocks", stats.TextBlocks),
		zap.Int("image_blocks", stats.ImageBlocks),
		zap.Int("skipped_cells", stats.SkippedCells),
		zap.Int("skipped_images", stats.SkippedImages))

	return &ConvertResult{
		HTML:  html,
		Title: title,
		Stats: Stats(stats),
	}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter after options are applied and the asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil // each layout uses its own style
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %w", ErrConfig, input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// loadLayoutStyles fixes the CSS of every layout so Convert does no I/O.
// A resolved style override applies to all layouts; otherwise each layout
// loads the style of the same name.
func (c *Converter) loadLayoutStyles() error {
	c.styles = make(map[render.Layout]string, len(render.Layouts))
	for _, l := range render.Layouts {
		if c.cfg.resolvedStyle != "" {
			c.styles[l] = c.cfg.resolvedStyle
			continue
		}
		css, err := c.assetLoader.LoadStyle(string(l))
		if err != nil {
			return fmt.Errorf("loading style %q: %w", l, convertAssetError(err))
		}
		c.styles[l] = css
	}
	return nil
}

// validateInput checks the input and returns the selected layout.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their config validated earlier by config.Validate; both
// paths converge here.
func (c *Converter) validateInput(input Input) (render.Layout, error) {
	if len(input.Notebook) == 0 {
		return "", ErrEmptyNotebook
	}
	layout, err := render.ParseLayout(input.Template)
	if err != nil {
		return "", configError(err)
	}
	return layout, nil
}
