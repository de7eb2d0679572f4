package pipeline

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Sentinel errors for image normalization.
var (
	ErrImageEncoding = errors.New("invalid image encoding")
	ErrImageDecode   = errors.New("image payload does not decode")
)

// MIME types recognized in output bundles.
const (
	mimePNG  = "image/png"
	mimeJPEG = "image/jpeg"
	mimeGIF  = "image/gif"
	mimeWebP = "image/webp"
	mimeBMP  = "image/bmp"
	mimeSVG  = "image/svg+xml"
)

// imageMIMETypes lists the image keys looked up in each output bundle, in
// emission order. A bundle carrying several representations of the same
// figure yields one block per representation.
var imageMIMETypes = []string{mimePNG, mimeJPEG, mimeGIF, mimeWebP, mimeBMP, mimeSVG}

// formatMIME maps image.DecodeConfig format names to MIME types.
var formatMIME = map[string]string{
	"png":  mimePNG,
	"jpeg": mimeJPEG,
	"gif":  mimeGIF,
	"webp": mimeWebP,
	"bmp":  mimeBMP,
}

// normalizeMIME lowercases a MIME type, drops parameters and maps common
// aliases to their canonical form.
func normalizeMIME(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i != -1 {
		mime = strings.TrimSpace(mime[:i])
	}
	switch mime {
	case "image/jpg", "image/pjpeg":
		return mimeJPEG
	case "image/svg", "image/svg-xml":
		return mimeSVG
	case "image/x-ms-bmp", "image/x-bmp":
		return mimeBMP
	}
	return mime
}

// normalizeRaster validates a base64 raster payload and returns it without
// whitespace, along with the MIME type of the format it actually decodes as.
func normalizeRaster(payload string) (mime, data string, err error) {
	data = strings.Join(strings.Fields(payload), "")
	if data == "" {
		return "", "", fmt.Errorf("%w: empty payload", ErrImageEncoding)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrImageEncoding, err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	mime, ok := formatMIME[format]
	if !ok {
		return "", "", fmt.Errorf("%w: unsupported format %q", ErrImageDecode, format)
	}
	return mime, data, nil
}

// normalizeImage turns one MIME bundle entry into an ImageBlock.
func normalizeImage(cell int, mime, payload string) (ImageBlock, error) {
	if normalizeMIME(mime) == mimeSVG {
		markup, err := SanitizeSVG(payload)
		if err != nil {
			return ImageBlock{}, err
		}
		return ImageBlock{Cell: cell, MIME: mimeSVG, Data: markup}, nil
	}

	actual, data, err := normalizeRaster(payload)
	if err != nil {
		return ImageBlock{}, err
	}
	return ImageBlock{Cell: cell, MIME: actual, Data: data}, nil
}
