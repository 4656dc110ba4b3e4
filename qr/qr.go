// Package qr generates QR code blocks as in-memory images for appending
// below label text.
package qr

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/stickerfactory/labelpress/raster"
)

// moduleWidth is the pixel width of one QR module in the intermediate
// rendering; the result is rescaled to the requested side afterwards.
const moduleWidth = 4

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Image encodes content as a QR code and returns it as a square image of
// the given side length, black on white with no quiet-zone border (the
// pipeline adds its own padding and borders). Module edges stay sharp:
// the rescale uses nearest-neighbor.
func Image(content string, side int) (image.Image, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: empty content")
	}
	if side <= 0 {
		return nil, fmt.Errorf("qr: invalid side %d", side)
	}

	qrc, err := qrcode.NewWith(content,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart))
	if err != nil {
		return nil, fmt.Errorf("qr: failed to encode content: %w", err)
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf},
		standard.WithQRWidth(moduleWidth),
		standard.WithBorderWidth(0),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT))
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("qr: failed to render: %w", err)
	}

	img, err := raster.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("qr: failed to decode rendering: %w", err)
	}

	return raster.Resize(img, side, side, raster.InterpolationNearest), nil
}
