package raster

import (
	"image"
	"image/color"
)

// Bitmap is a 1-bit-per-pixel buffer in printer raster layout: rows are
// packed MSB first, a set bit means black ink. Stride is the row length
// in bytes, (width+7)/8.
//
// Bitmap implements image.Image so it can be previewed and encoded with
// the standard library.
type Bitmap struct {
	W, H   int
	Stride int
	Pix    []byte
}

// NewBitmap creates an all-white Bitmap with the specified dimensions.
func NewBitmap(width, height int) *Bitmap {
	stride := (width + 7) / 8
	return &Bitmap{
		W:      width,
		H:      height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.W }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.H }

// Black reports whether the pixel at (x, y) is black.
func (b *Bitmap) Black(x, y int) bool {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return false
	}
	return b.Pix[y*b.Stride+x/8]&(0x80>>uint(x%8)) != 0
}

// SetBlack sets or clears the pixel at (x, y).
func (b *Bitmap) SetBlack(x, y int, black bool) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	mask := byte(0x80 >> uint(x%8))
	if black {
		b.Pix[y*b.Stride+x/8] |= mask
	} else {
		b.Pix[y*b.Stride+x/8] &^= mask
	}
}

// Fill sets every pixel to black or white.
func (b *Bitmap) Fill(black bool) {
	v := byte(0x00)
	if black {
		v = 0xff
	}
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Clone creates a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	clone := NewBitmap(b.W, b.H)
	copy(clone.Pix, b.Pix)
	return clone
}

// Row returns a copy of row y in packed printer layout.
func (b *Bitmap) Row(y int) []byte {
	row := make([]byte, b.Stride)
	copy(row, b.Pix[y*b.Stride:(y+1)*b.Stride])
	return row
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.W, b.H) }

// At implements image.Image. Black pixels map to gray 0, white to 255.
func (b *Bitmap) At(x, y int) color.Color {
	if b.Black(x, y) {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 255}
}

// ToGray expands the bitmap to an 8-bit grayscale buffer with values
// 0 and 255 only.
func (b *Bitmap) ToGray() *GrayImage {
	gray := NewGrayImage(b.W, b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Black(x, y) {
				gray.SetGrayValue(x, y, 0)
			} else {
				gray.SetGrayValue(x, y, 255)
			}
		}
	}
	return gray
}
