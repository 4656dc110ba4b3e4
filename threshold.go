package labelpress

import "github.com/stickerfactory/labelpress/raster"

// Threshold converts a grayscale buffer to 1-bit with a single cutoff:
// samples strictly greater than cutoff become white, everything else
// black. No dithering is applied, so hard edges survive -- the right
// choice for text and line art where halftoning would fuzz the strokes.
//
// The operation is idempotent: re-thresholding an already binary buffer
// at the same cutoff reproduces it.
func Threshold(gray *raster.GrayImage, cutoff uint8) *raster.Bitmap {
	width, height := gray.Width(), gray.Height()
	out := raster.NewBitmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray.GetGray(x, y) <= cutoff {
				out.SetBlack(x, y, true)
			}
		}
	}

	return out
}
