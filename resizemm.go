package labelpress

import (
	"fmt"
	"image"
	"math"

	"github.com/stickerfactory/labelpress/raster"
)

// ResizeToWidthMM resizes an image to a physical width in millimeters at
// the given print resolution (DefaultDPI when dpi <= 0), preserving the
// aspect ratio. When the physical width is narrower than the label's full
// printable width, the result is centered on a white canvas spanning the
// label, keeping the invariant that every print-bound buffer matches the
// label width. A physical width wider than the label is rejected with
// ErrInvalidDimensions rather than silently downscaled.
func ResizeToWidthMM(img image.Image, mm float64, labelWidth, dpi int) (*raster.RGBAImage, error) {
	targetWidth := MMToPixels(mm, dpi)

	rgba := raster.CompositeOnWhite(raster.FromImage(img))
	newHeight := int(math.Round(float64(targetWidth) / float64(rgba.Width()) * float64(rgba.Height())))
	if targetWidth <= 0 || newHeight <= 0 {
		return nil, fmt.Errorf("resize to %gmm (%dpx): %w", mm, targetWidth, ErrInvalidDimensions)
	}
	if targetWidth > labelWidth {
		return nil, fmt.Errorf("resize to %gmm (%dpx) exceeds the %dpx label: %w",
			mm, targetWidth, labelWidth, ErrInvalidDimensions)
	}

	resized := raster.Resize(rgba, targetWidth, newHeight, raster.InterpolationArea)

	if targetWidth < labelWidth {
		canvas := raster.NewWhiteRGBA(labelWidth, newHeight)
		resized = canvas.Paste(resized.RGBA, (labelWidth-targetWidth)/2, 0)
	}

	return resized, nil
}
