// Package labelpress prepares raster images for thermal label printers.
//
// The pipeline is a set of pure transforms on in-memory buffers: normalize
// alpha, resize to the label width preserving aspect ratio, convert to
// grayscale, adjust tone levels, dither or threshold to 1-bit, add a
// border, tile a tall image across multiple labels, and stack buffers
// vertically. Every transform returns a new buffer; none mutates its
// input, so the package is safe to call from concurrent request handlers
// without locking.
//
// Decoding file formats, printer transport, and the web UI live outside
// this package; it deals in pixel buffers only.
package labelpress

import "math"

// DefaultDPI is the print resolution assumed when sizing from physical
// millimeter dimensions.
const DefaultDPI = 300

// LabelSpec describes the printable raster geometry of the loaded label
// media. WidthPx is the fixed pixel width every print-bound buffer must
// match.
type LabelSpec struct {
	WidthPx int
	DPI     int
}

// MMToPixels converts a physical width in millimeters to pixels at the
// given print resolution: round(mm/25.4*dpi).
func MMToPixels(mm float64, dpi int) int {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return int(math.Round(mm / 25.4 * float64(dpi)))
}
