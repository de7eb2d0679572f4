// Package pipeline implements the notebook-to-report content pipeline.
//
// This package handles the stages between loading and rendering:
//   - Markdown conversion of narrative cells (fixed subset, escaped first)
//   - Syntax highlighting of fenced code blocks via chroma
//   - Image extraction and normalization (base64 raster checks, SVG sanitizing)
//   - Pairing of text blocks with the images that follow them
//   - Title detection
//
// Loading is handled by internal/notebook and HTML layout by internal/render.
// This package produces the Model that the renderer consumes and never
// touches the filesystem.
package pipeline
