// Package render turns a pipeline.Model into a self-contained HTML document.
//
// Layout templates are parsed once by New and never mutated, so a Renderer
// is safe for concurrent use. Output carries its CSS inline, embeds raster
// images as data: URIs and SVG as inline markup, and references nothing
// outside the document.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-nbdash/internal/assets"
	"github.com/alnah/go-nbdash/internal/pipeline"
)

// ErrRender indicates a layout template failed to execute.
var ErrRender = errors.New("rendering failed")

// Renderer executes the parsed layout templates.
type Renderer struct {
	layouts map[Layout]*template.Template
}

// New parses the shared partials and every layout from loader.
func New(loader assets.AssetLoader) (*Renderer, error) {
	partials, err := loader.LoadLayout(assets.PartialsLayout)
	if err != nil {
		return nil, fmt.Errorf("loading partials: %w", err)
	}

	base, err := template.New(assets.PartialsLayout).Parse(partials)
	if err != nil {
		return nil, fmt.Errorf("parsing partials: %w", err)
	}

	layouts := make(map[Layout]*template.Template, len(Layouts))
	for _, l := range Layouts {
		content, err := loader.LoadLayout(string(l))
		if err != nil {
			return nil, fmt.Errorf("loading layout %q: %w", l, err)
		}

		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning partials: %w", err)
		}
		tmpl, err := clone.New(string(l)).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parsing layout %q: %w", l, err)
		}
		layouts[l] = tmpl
	}

	return &Renderer{layouts: layouts}, nil
}

// pageData is the root value handed to a layout template.
type pageData struct {
	Title    string
	CSS      template.CSS
	Date     string
	Kernel   string
	Language string
	Sections []sectionData
}

// sectionData is one display unit.
type sectionData struct {
	ID      string
	Label   string
	HasText bool
	Text    template.HTML
	Images  []imageData
}

// imageData is one figure; exactly one of SVG or Src is set.
type imageData struct {
	Vector bool
	SVG    template.HTML
	Src    template.URL
	Alt    string
}

// Render produces the HTML document for model using layout. css is placed
// in the document's <style> element as-is, after escaping sequences that
// would close the element.
func (r *Renderer) Render(model *pipeline.Model, layout Layout, css string) ([]byte, error) {
	tmpl, ok := r.layouts[layout]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownLayout, layout, LayoutNames())
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, string(layout), newPageData(model, css)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// newPageData converts the model into template values. Fragment HTML and
// SVG markup are trusted here: both were escaped or sanitized by the
// pipeline before reaching the model.
func newPageData(model *pipeline.Model, css string) pageData {
	page := pageData{
		Title:    model.Title,
		CSS:      template.CSS(sanitizeCSS(css)), // #nosec G203 -- style element breakouts escaped
		Date:     model.Date,
		Kernel:   model.Kernel,
		Language: model.Language,
		Sections: make([]sectionData, 0, len(model.Units)),
	}

	figure := 0
	for i, u := range model.Units {
		section := sectionData{
			ID:    fmt.Sprintf("section-%d", i+1),
			Label: pipeline.SectionLabel(u),
		}
		if u.Text != nil {
			section.HasText = true
			section.Text = template.HTML(u.Text.HTML) // #nosec G203 -- escaped by MarkdownConverter
		}
		for _, img := range u.Images {
			figure++
			data := imageData{Alt: fmt.Sprintf("Figure %d", figure)}
			if img.IsVector() {
				data.Vector = true
				data.SVG = template.HTML(img.Data) // #nosec G203 -- sanitized by SanitizeSVG
			} else {
				data.Src = template.URL(img.DataURI()) // #nosec G203 -- base64 payload validated on extraction
			}
			section.Images = append(section.Images, data)
		}
		page.Sections = append(page.Sections, section)
	}

	return page
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
