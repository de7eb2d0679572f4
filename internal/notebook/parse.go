package notebook

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
)

// Parse loads a notebook from raw JSON.
// Returns ErrFormat (wrapped) if the data is not valid JSON, the top level is
// not an object, or the "cells" field is missing or not an array.
// Cell entries that are not objects are skipped and counted in Notebook.Skipped.
// The input slice is never modified.
func Parse(data []byte) (*Notebook, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrFormat)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrFormat)
	}

	cells := root.Get("cells")
	if !cells.Exists() {
		return nil, fmt.Errorf("%w: missing \"cells\" list", ErrFormat)
	}
	if !cells.IsArray() {
		return nil, fmt.Errorf("%w: \"cells\" must be a list, got %s", ErrFormat, cells.Type)
	}

	nb := &Notebook{Meta: parseMetadata(root)}
	for i, raw := range cells.Array() {
		if !raw.IsObject() {
			nb.Skipped++
			continue
		}
		nb.Cells = append(nb.Cells, parseCell(i, raw))
	}

	return nb, nil
}

// parseMetadata extracts the informational notebook-level fields.
func parseMetadata(root gjson.Result) Metadata {
	return Metadata{
		FormatMajor: int(root.Get("nbformat").Int()),
		FormatMinor: int(root.Get("nbformat_minor").Int()),
		Kernel:      root.Get("metadata.kernelspec.display_name").String(),
		Language:    root.Get("metadata.language_info.name").String(),
	}
}

// parseCell converts one cell object.
// Unknown cell types are kept with their declared kind; the extractor ignores them.
func parseCell(index int, raw gjson.Result) Cell {
	cell := Cell{
		Index:  index,
		Kind:   Kind(raw.Get("cell_type").String()),
		Source: lines(raw.Get("source")),
	}

	if cell.Kind != KindCode {
		return cell
	}

	for _, out := range raw.Get("outputs").Array() {
		if !out.IsObject() {
			continue
		}
		cell.Outputs = append(cell.Outputs, parseOutput(out))
	}
	return cell
}

// parseOutput converts one output record, flattening its MIME bundle.
// Iterating with ForEach keeps MIME keys such as "image/svg+xml" away from
// gjson path syntax.
func parseOutput(raw gjson.Result) Output {
	out := Output{Type: raw.Get("output_type").String()}

	data := raw.Get("data")
	if !data.IsObject() {
		return out
	}

	out.Data = make(map[string]string)
	data.ForEach(func(key, value gjson.Result) bool {
		if payload, ok := joined(value); ok {
			out.Data[key.String()] = payload
		}
		return true
	})
	return out
}

// lines normalizes a multi-line field: a string or a list of strings.
func lines(r gjson.Result) []string {
	switch {
	case r.Type == gjson.String:
		return []string{r.String()}
	case r.IsArray():
		items := r.Array()
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item.Type == gjson.String {
				out = append(out, item.String())
			}
		}
		return out
	}
	return nil
}

// joined returns a multi-line field as one string.
// Returns false for values that are neither strings nor lists of strings
// (e.g. application/json payloads), which carry no image data.
func joined(r gjson.Result) (string, bool) {
	if r.Type != gjson.String && !r.IsArray() {
		return "", false
	}
	var buf bytes.Buffer
	for _, line := range lines(r) {
		buf.WriteString(line)
	}
	return buf.String(), true
}
