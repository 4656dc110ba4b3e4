package labelpress

import "github.com/stickerfactory/labelpress/raster"

// Border adds a solid black border of the given width around an RGBA
// buffer. Both dimensions grow by exactly 2*width.
func Border(img *raster.RGBAImage, width int) *raster.RGBAImage {
	if width <= 0 {
		return img.Clone()
	}

	out := raster.NewRGBAImage(img.Width()+2*width, img.Height()+2*width)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff // opaque black
	}
	return out.Paste(img.RGBA, width, width)
}

// BorderBitmap adds a solid black border around a 1-bit buffer. A fresh
// black canvas is allocated and the original pasted inside the inset;
// expanding a packed bitmap in place would assume a multi-bit color mode
// it does not have.
func BorderBitmap(bm *raster.Bitmap, width int) *raster.Bitmap {
	if width <= 0 {
		return bm.Clone()
	}

	out := raster.NewBitmap(bm.Width()+2*width, bm.Height()+2*width)
	out.Fill(true)
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			out.SetBlack(x+width, y+width, bm.Black(x, y))
		}
	}
	return out
}
