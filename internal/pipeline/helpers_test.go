package pipeline

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/alnah/go-nbdash/internal/notebook"
)

// testImage returns a small solid image.
func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img
}

// encodeBase64 encodes testImage with the given encoder and returns base64.
func encodeBase64(t *testing.T, encode func(*bytes.Buffer, image.Image) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := encode(&buf, testImage()); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func pngBase64(t *testing.T) string {
	t.Helper()
	return encodeBase64(t, func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })
}

func jpegBase64(t *testing.T) string {
	t.Helper()
	return encodeBase64(t, func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) })
}

func gifBase64(t *testing.T) string {
	t.Helper()
	return encodeBase64(t, func(b *bytes.Buffer, img image.Image) error { return gif.Encode(b, img, nil) })
}

func bmpBase64(t *testing.T) string {
	t.Helper()
	return encodeBase64(t, func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) })
}

// markdownCell builds a markdown cell.
func markdownCell(index int, source ...string) notebook.Cell {
	return notebook.Cell{Index: index, Kind: notebook.KindMarkdown, Source: source}
}

// codeCell builds a code cell with one display_data output per bundle.
func codeCell(index int, bundles ...map[string]string) notebook.Cell {
	cell := notebook.Cell{Index: index, Kind: notebook.KindCode, Source: []string{"plot()"}}
	for _, data := range bundles {
		cell.Outputs = append(cell.Outputs, notebook.Output{Type: notebook.OutputDisplayData, Data: data})
	}
	return cell
}
