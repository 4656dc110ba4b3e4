package labelpress

import (
	"fmt"
	"image"

	"github.com/stickerfactory/labelpress/raster"
)

// ConcatV stacks two buffers vertically: bottom is forced to a side*side
// square and pasted below top at top's natural width. The canvas height
// is top's height plus side. Used to append a QR code block under a text
// label, with side equal to the label width.
func ConcatV(top *raster.RGBAImage, bottom image.Image, side int) (*raster.RGBAImage, error) {
	if side <= 0 {
		return nil, fmt.Errorf("concat with square side %d: %w", side, ErrInvalidDimensions)
	}

	square := raster.Resize(raster.FromImage(bottom), side, side, raster.InterpolationArea)

	out := raster.NewWhiteRGBA(top.Width(), top.Height()+side)
	out = out.Paste(top.RGBA, 0, 0)
	out = out.Paste(square.RGBA, 0, top.Height())
	return out, nil
}
