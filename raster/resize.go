package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the high-quality default for
	// scaling label art in both directions.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation. Keeps
	// hard edges, used for QR modules and already-binary content.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	scalerFor(interp).Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	scalerFor(interp).Scale(dst.Gray, dstRect, img.Gray, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio. The resulting height is rounded to the nearest pixel.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	height := scaledHeight(img.Width(), img.Height(), width)
	return Resize(img, width, height, interp)
}

// ResizeGrayToWidth is ResizeToWidth for grayscale buffers, with the same
// height rounding.
func ResizeGrayToWidth(img *GrayImage, width int, interp Interpolation) *GrayImage {
	height := scaledHeight(img.Width(), img.Height(), width)
	return ResizeGray(img, width, height, interp)
}

// scaledHeight returns round(width/srcW*srcH), the aspect-preserving
// height for a target width.
func scaledHeight(srcW, srcH, width int) int {
	return (2*width*srcH + srcW) / (2 * srcW)
}
