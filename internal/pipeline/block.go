package pipeline

import "strings"

// Block is a renderable unit extracted from one notebook cell.
// The set of block kinds is closed: TextBlock and ImageBlock.
type Block interface {
	// CellIndex returns the index of the cell the block came from.
	CellIndex() int
	isBlock()
}

// Heading is a heading found while converting a markdown cell.
type Heading struct {
	Level int    // 1-3
	Text  string // source text, not escaped
}

// TextBlock holds the HTML fragment rendered from one markdown cell.
type TextBlock struct {
	Cell     int
	HTML     string
	Headings []Heading
}

// CellIndex implements Block.
func (b TextBlock) CellIndex() int { return b.Cell }

func (TextBlock) isBlock() {}

// FirstHeading returns the text of the first heading at the given level.
func (b TextBlock) FirstHeading(level int) (string, bool) {
	for _, h := range b.Headings {
		if h.Level == level {
			return h.Text, true
		}
	}
	return "", false
}

// ImageBlock holds one image output, normalized for inline embedding.
type ImageBlock struct {
	Cell int
	MIME string // normalized MIME type, e.g. "image/png"
	Data string // base64 payload for raster images, sanitized markup for SVG
}

// CellIndex implements Block.
func (b ImageBlock) CellIndex() int { return b.Cell }

func (ImageBlock) isBlock() {}

// IsVector reports whether the image is inline SVG markup.
func (b ImageBlock) IsVector() bool {
	return b.MIME == mimeSVG
}

// DataURI returns the image as a data: URI.
// Only meaningful for raster images.
func (b ImageBlock) DataURI() string {
	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(b.MIME) + len(b.Data))
	sb.WriteString("data:")
	sb.WriteString(b.MIME)
	sb.WriteString(";base64,")
	sb.WriteString(b.Data)
	return sb.String()
}
