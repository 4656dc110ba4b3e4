package printer

import (
	"fmt"

	"github.com/stickerfactory/labelpress/raster"
)

// PackRows encodes a 1-bit buffer as printer raster rows: one byte slice
// per scan line, pixels packed MSB first, a set bit meaning black. Rows
// are padded to the media's dot width so every line has the same length.
func PackRows(bm *raster.Bitmap, dots int) ([][]byte, error) {
	if bm.Width() > dots {
		return nil, fmt.Errorf("printer: buffer width %d exceeds media width %d dots", bm.Width(), dots)
	}

	stride := (dots + 7) / 8
	rows := make([][]byte, bm.Height())
	for y := 0; y < bm.Height(); y++ {
		row := make([]byte, stride)
		copy(row, bm.Row(y))
		rows[y] = row
	}
	return rows, nil
}
