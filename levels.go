package labelpress

import (
	"fmt"

	"github.com/stickerfactory/labelpress/raster"
)

// Levels maps the input range [black, white] linearly onto [0, 255].
// Samples at or below the black point clamp to 0, samples at or above the
// white point clamp to 255. Returns ErrInvalidRange when black >= white.
func Levels(gray *raster.GrayImage, black, white uint8) (*raster.GrayImage, error) {
	if black >= white {
		return nil, fmt.Errorf("levels %d..%d: %w", black, white, ErrInvalidRange)
	}

	var lut [256]uint8
	span := float64(white) - float64(black)
	for i := 0; i < 256; i++ {
		switch {
		case uint8(i) <= black:
			lut[i] = 0
		case uint8(i) >= white:
			lut[i] = 255
		default:
			lut[i] = uint8((float64(i) - float64(black)) / span * 255)
		}
	}

	return applyLUT(gray, &lut), nil
}

// Equalize applies histogram equalization, spreading the used tonal range
// uniformly across [0, 255].
func Equalize(gray *raster.GrayImage) *raster.GrayImage {
	var histo [256]int
	for _, v := range gray.Pix {
		histo[v]++
	}

	// Identity when the image has at most one tone or too few samples to
	// build a meaningful cumulative step.
	total := 0
	nonZero := 0
	last := 0
	for v, n := range histo {
		if n > 0 {
			total += n
			nonZero++
			last = v
		}
	}

	var lut [256]uint8
	step := (total - histo[last]) / 255
	if nonZero <= 1 || step == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return applyLUT(gray, &lut)
	}

	n := step / 2
	for i := 0; i < 256; i++ {
		v := n / step
		if v > 255 {
			v = 255
		}
		lut[i] = uint8(v)
		n += histo[i]
	}

	return applyLUT(gray, &lut)
}

// LevelsEqualize runs the levels adjustment and then histogram
// equalization on the leveled result.
func LevelsEqualize(gray *raster.GrayImage, black, white uint8) (*raster.GrayImage, error) {
	leveled, err := Levels(gray, black, white)
	if err != nil {
		return nil, err
	}
	return Equalize(leveled), nil
}

func applyLUT(gray *raster.GrayImage, lut *[256]uint8) *raster.GrayImage {
	out := raster.NewGrayImage(gray.Width(), gray.Height())
	for i, v := range gray.Pix {
		out.Pix[i] = lut[v]
	}
	return out
}
