// Package notebook loads Jupyter notebook documents into ordered cell records.
//
// Only the parts of the nbformat document needed to build a report are kept:
// cell kind, source lines and the MIME bundles of code cell outputs. The
// loader is tolerant of the shape variations found in the wild (source as a
// single string or a list of lines, payloads split across lines) and strict
// about the top-level structure.
package notebook

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for notebook loading.
var (
	// ErrFormat indicates the document is not valid JSON or lacks a cell list.
	ErrFormat = errors.New("invalid notebook format")

	// ErrEmptyDocument indicates the document has no content at all.
	ErrEmptyDocument = fmt.Errorf("%w: empty document", ErrFormat)

	// ErrDocumentTooLarge indicates the document exceeds MaxDocumentSize.
	ErrDocumentTooLarge = fmt.Errorf("%w: document too large", ErrFormat)
)

// MaxDocumentSize limits the notebook size to prevent memory exhaustion (256MB).
var MaxDocumentSize = 256 << 20

// Kind identifies the type of a notebook cell.
type Kind string

// Cell kinds defined by nbformat.
const (
	KindMarkdown Kind = "markdown"
	KindCode     Kind = "code"
	KindRaw      Kind = "raw"
)

// Output types that may carry rich display data.
const (
	OutputDisplayData       = "display_data"
	OutputExecuteResult     = "execute_result"
	OutputUpdateDisplayData = "update_display_data"
	OutputStream            = "stream"
	OutputError             = "error"
)

// Cell is one markdown, code or raw unit of the notebook, in document order.
type Cell struct {
	Index   int      // position in the document's cell list
	Kind    Kind     // cell_type
	Source  []string // source lines, line endings preserved
	Outputs []Output // code cells only
}

// Text returns the cell source as a single string.
func (c Cell) Text() string {
	return strings.Join(c.Source, "")
}

// Output is one output record of a code cell.
type Output struct {
	Type string            // output_type
	Data map[string]string // MIME type -> payload, multi-line payloads joined
}

// HasRichData reports whether the output type can carry a MIME bundle.
func (o Output) HasRichData() bool {
	switch o.Type {
	case OutputDisplayData, OutputExecuteResult, OutputUpdateDisplayData:
		return true
	}
	return false
}

// Metadata holds the informational notebook-level fields.
type Metadata struct {
	FormatMajor int    // nbformat
	FormatMinor int    // nbformat_minor
	Kernel      string // metadata.kernelspec.display_name
	Language    string // metadata.language_info.name
}

// Notebook is a loaded notebook document.
type Notebook struct {
	Cells []Cell
	Meta  Metadata

	// Skipped counts cell entries that were not objects and could not be loaded.
	Skipped int
}
