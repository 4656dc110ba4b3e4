package raster

import "image/color"

// ToGrayscale converts an RGBA image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B (BT.601).
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			// Integer math for speed, scaled by 1000
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.Gray.SetGray(x, y, color.Gray{Y: uint8(lum)})
		}
	}

	return gray
}

// CompositeOnWhite flattens any transparency onto a white background.
// Printers have no alpha channel, so RGBA content must not reach the
// printer with transparent pixels undefined.
func CompositeOnWhite(img *RGBAImage) *RGBAImage {
	width, height := img.Width(), img.Height()
	out := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			if c.A == 0xff {
				out.SetRGBA(x, y, c)
				continue
			}
			a := int(c.A)
			// image.RGBA stores premultiplied alpha, so the white
			// contribution is simply (255 - A) per channel.
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(int(c.R) + 255 - a),
				G: uint8(int(c.G) + 255 - a),
				B: uint8(int(c.B) + 255 - a),
				A: 0xff,
			})
		}
	}

	return out
}
