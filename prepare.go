package labelpress

import (
	"fmt"
	"image"

	"github.com/stickerfactory/labelpress/raster"
)

// Prepare converts an arbitrary decoded image into the two buffers the
// print path chooses between: an 8-bit grayscale rendition and a 1-bit
// Floyd-Steinberg dithered rendition, both at exactly labelWidth pixels
// wide.
//
// Transparency is flattened onto white first; a printer has no alpha
// channel. Grayscale input skips the color round trip and is resized in
// gray space. The aspect ratio is preserved when resizing.
func Prepare(img image.Image, labelWidth int) (*raster.GrayImage, *raster.Bitmap, error) {
	if labelWidth <= 0 {
		return nil, nil, fmt.Errorf("prepare to width %d: %w", labelWidth, ErrInvalidDimensions)
	}

	var gray *raster.GrayImage
	switch img.(type) {
	case *image.Gray, *raster.GrayImage:
		// Grayscale input has no alpha to flatten; stay in gray space.
		gray = raster.GrayFromImage(img)
		if gray.Width() != labelWidth {
			gray = raster.ResizeGrayToWidth(gray, labelWidth, raster.InterpolationArea)
		}
	default:
		rgba := raster.CompositeOnWhite(raster.FromImage(img))
		if rgba.Width() != labelWidth {
			rgba = raster.ResizeToWidth(rgba, labelWidth, raster.InterpolationArea)
		}
		gray = raster.ToGrayscale(rgba)
	}

	dithered := DitherFloydSteinberg(gray)

	return gray, dithered, nil
}
