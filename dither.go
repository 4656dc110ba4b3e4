package labelpress

import "github.com/stickerfactory/labelpress/raster"

// DitherFloydSteinberg converts a grayscale buffer to 1-bit using
// Floyd-Steinberg error diffusion: each pixel snaps to black or white and
// the quantization error spreads to the unvisited neighbors with the
// classic 7/16, 3/16, 5/16, 1/16 weights.
func DitherFloydSteinberg(gray *raster.GrayImage) *raster.Bitmap {
	width, height := gray.Width(), gray.Height()
	out := raster.NewBitmap(width, height)

	// Working copy of the samples; diffusion pushes values outside 0..255.
	work := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			work[y*width+x] = float64(gray.GetGray(x, y))
		}
	}

	diffuse := func(x, y int, v float64) {
		if x >= 0 && x < width && y >= 0 && y < height {
			work[y*width+x] += v
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := work[y*width+x]
			var target float64
			if old < 128 {
				out.SetBlack(x, y, true)
				target = 0
			} else {
				target = 255
			}
			quantErr := old - target

			diffuse(x+1, y, quantErr*7.0/16.0)
			diffuse(x-1, y+1, quantErr*3.0/16.0)
			diffuse(x, y+1, quantErr*5.0/16.0)
			diffuse(x+1, y+1, quantErr*1.0/16.0)
		}
	}

	return out
}
