// Package raster provides the pixel-buffer layer for label preparation:
// thin wrappers around image.RGBA and image.Gray, a packed 1-bit Bitmap
// for printer-bound output, resizing, grayscale conversion, and image IO.
//
// Every operation in this package returns a new buffer and never mutates
// its input, so buffers can be shared freely across request handlers.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
// Pixels start fully transparent.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewWhiteRGBA creates an opaque white canvas. Label canvases start white
// because thermal media is white where no ink is burned.
func NewWhiteRGBA(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// FromImage converts any image.Image to RGBAImage, normalizing the origin
// to (0,0).
func FromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*RGBAImage); ok {
		return rgba
	}
	bounds := img.Bounds()
	dst := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.RGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// Crop returns a copy of the rectangle r of the image. The result owns its
// pixels; modifying it does not affect the source.
func (img *RGBAImage) Crop(r image.Rectangle) *RGBAImage {
	r = r.Intersect(img.Bounds())
	dst := NewRGBAImage(r.Dx(), r.Dy())
	draw.Draw(dst.RGBA, dst.Bounds(), img.RGBA, r.Min, draw.Src)
	return dst
}

// Paste returns a copy of the image with src drawn at (x, y).
func (img *RGBAImage) Paste(src image.Image, x, y int) *RGBAImage {
	dst := img.Clone()
	sb := src.Bounds()
	draw.Draw(dst.RGBA, image.Rect(x, y, x+sb.Dx(), y+sb.Dy()), src, sb.Min, draw.Over)
	return dst
}

// GrayImage wraps image.Gray for 8-bit single-channel buffers.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// GrayFromImage converts any image.Image to GrayImage using the standard
// library's gray color model.
func GrayFromImage(img image.Image) *GrayImage {
	if gray, ok := img.(*GrayImage); ok {
		return gray
	}
	bounds := img.Bounds()
	dst := NewGrayImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.Gray, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetGrayValue sets the grayscale value at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.SetGray(x, y, color.Gray{Y: v})
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
