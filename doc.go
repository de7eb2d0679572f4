// Package nbdash converts Jupyter notebooks into self-contained HTML dashboards.
//
// # Quick Start
//
// Create a converter and convert the raw notebook JSON:
//
//	conv, err := nbdash.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, _ := os.ReadFile("analysis.ipynb")
//	result, err := conv.Convert(ctx, nbdash.Input{
//	    Notebook: data,
//	    Template: nbdash.TemplateGrid,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("analysis.html", result.HTML, 0644)
//
// The report carries its CSS inline, embeds raster images as data: URIs and
// SVG figures as inline markup, and references no external resource.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Notebook loading (cells in document order, MIME bundles of outputs)
//  2. Extraction of text blocks (markdown subset) and image blocks
//  3. Pairing of each text block with the images that follow it
//  4. Title detection (first level-1 heading, "Dashboard" otherwise)
//  5. Rendering through the selected template
//
// Markdown cell text is HTML-escaped before any formatting is applied, and
// SVG outputs are sanitized, so notebook content cannot inject scripts.
//
// # Templates
//
// Three templates are built in: "default" (sections of text and figures),
// "minimal" (one narrow column) and "grid" (responsive cards).
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := nbdash.NewConverter(
//	    nbdash.WithStyle("./brand.css"),
//	    nbdash.WithHighlightStyle("monokai"),
//	    nbdash.WithDefaultTitle("Untitled analysis"),
//	    nbdash.WithLogger(logger),
//	)
//
// # Error Handling
//
// Notebook and configuration problems satisfy errors.Is for ErrFormat or
// ErrConfig; ErrInputNotFound is the category for unreadable input files.
// More specific errors such as ErrUnknownTemplate and ErrEmptyNotebook can
// be matched as well:
//
//	if errors.Is(err, nbdash.ErrUnknownTemplate) {
//	    // invalid Input.Template
//	}
package nbdash
