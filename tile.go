package labelpress

import (
	"fmt"
	"image"

	"github.com/stickerfactory/labelpress/raster"
)

// previewMaxWidth caps the width of an assembled tile preview.
const previewMaxWidth = 300

// previewSpacing is the vertical gap, in preview pixels, between tiles.
const previewSpacing = 10

// TileRows returns the number of label rows a tall image is split into.
// Always two, to save label stock. The signature takes the image and the
// label width so a future policy could weigh the aspect ratio, but the
// current behavior is deliberately fixed.
func TileRows(img image.Image, labelWidth int) int {
	return 2
}

// SplitTiles resizes an image to the label width and splits it vertically
// into rows tiles. All tiles share the height floor(H/rows) except the
// last, which absorbs the remainder, so tile heights always sum to the
// resized height exactly.
func SplitTiles(img image.Image, labelWidth, rows int) ([]*raster.RGBAImage, error) {
	if labelWidth <= 0 || rows <= 0 {
		return nil, fmt.Errorf("split into %d rows at width %d: %w", rows, labelWidth, ErrInvalidDimensions)
	}

	rgba := raster.CompositeOnWhite(raster.FromImage(img))
	if rgba.Width() != labelWidth {
		rgba = raster.ResizeToWidth(rgba, labelWidth, raster.InterpolationArea)
	}

	height := rgba.Height()
	tileHeight := height / rows

	tiles := make([]*raster.RGBAImage, 0, rows)
	y := 0
	for i := 0; i < rows; i++ {
		h := tileHeight
		if i == rows-1 {
			h = height - y
		}
		tiles = append(tiles, rgba.Crop(image.Rect(0, y, labelWidth, y+h)))
		y += h
	}

	return tiles, nil
}

// TilePreview assembles tiles into a single vertically stacked column,
// uniformly scaled down so each tile is at most 300px wide, with a fixed
// 10px white gap between tiles. The preview exists for visual
// confirmation before committing label stock to a multi-tile print.
func TilePreview(tiles []*raster.RGBAImage, labelWidth int) (*raster.RGBAImage, error) {
	if len(tiles) == 0 || labelWidth <= 0 {
		return nil, fmt.Errorf("preview of %d tiles at width %d: %w", len(tiles), labelWidth, ErrInvalidDimensions)
	}

	previewWidth := labelWidth
	if labelWidth > previewMaxWidth {
		previewWidth = previewMaxWidth
	}
	scale := float64(previewWidth) / float64(labelWidth)

	maxTileHeight := 0
	for _, tile := range tiles {
		if tile.Height() > maxTileHeight {
			maxTileHeight = tile.Height()
		}
	}

	rowHeight := int(float64(maxTileHeight) * scale)
	previewHeight := rowHeight*len(tiles) + previewSpacing*(len(tiles)-1)

	preview := raster.NewWhiteRGBA(previewWidth, previewHeight)
	y := 0
	for _, tile := range tiles {
		scaled := raster.Resize(tile, previewWidth, int(float64(tile.Height())*scale), raster.InterpolationArea)
		preview = preview.Paste(scaled.RGBA, 0, y)
		y += scaled.Height() + previewSpacing
	}

	return preview, nil
}
