// Package text renders multi-line label text onto a white canvas at the
// printer's label width, ready for the labelpress pipeline.
package text

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/stickerfactory/labelpress"
	"github.com/stickerfactory/labelpress/raster"
)

// Align selects horizontal line placement.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

const (
	defaultLineSpacing = 20
	defaultPadding     = 20

	minFontSize = 10
	maxFontSize = 200
)

// Options configures text rendering. A nil Font falls back to the
// embedded Go Regular face; a zero FontSize auto-fits the longest line to
// the label width.
type Options struct {
	Font        *truetype.Font
	FontSize    float64
	Align       Align
	LineSpacing int
	Padding     int
}

var (
	defaultFontOnce sync.Once
	defaultFont     *truetype.Font
)

// ParseFont parses TTF font data supplied by the caller. Enumerating OS
// fonts is out of scope here; the bytes come from the application layer.
func ParseFont(data []byte) (*truetype.Font, error) {
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

// DefaultFont returns the embedded Go Regular face.
func DefaultFont() *truetype.Font {
	defaultFontOnce.Do(func() {
		f, err := freetype.ParseFont(goregular.TTF)
		if err != nil {
			// goregular.TTF is embedded and known-good
			panic(fmt.Sprintf("text: parsing embedded font: %v", err))
		}
		defaultFont = f
	})
	return defaultFont
}

// Render draws content onto a white canvas exactly labelWidth wide. The
// canvas height follows from the line count, font metrics, line spacing,
// and vertical padding.
func Render(content string, labelWidth int, opts Options) (*raster.RGBAImage, error) {
	if labelWidth <= 0 {
		return nil, fmt.Errorf("render text at width %d: %w", labelWidth, labelpress.ErrInvalidDimensions)
	}

	ttf := opts.Font
	if ttf == nil {
		ttf = DefaultFont()
	}
	spacing := opts.LineSpacing
	if spacing <= 0 {
		spacing = defaultLineSpacing
	}
	padding := opts.Padding
	if padding < 0 {
		padding = defaultPadding
	}

	size := opts.FontSize
	if size <= 0 {
		size = MaxFontSize(ttf, content, labelWidth)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()

	lines := strings.Split(content, "\n")
	canvasHeight := len(lines)*(lineHeight+spacing) + 2*padding

	img := raster.NewWhiteRGBA(labelWidth, canvasHeight)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	y := padding + ascent
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			lineWidth := font.MeasureString(face, line).Ceil()

			x := 0
			switch opts.Align {
			case AlignCenter:
				x = (labelWidth - lineWidth) / 2
			case AlignRight:
				x = labelWidth - lineWidth
			}
			if x < 0 {
				x = 0
			}

			if _, err := ctx.DrawString(line, freetype.Pt(x, y)); err != nil {
				return nil, fmt.Errorf("failed to draw line: %w", err)
			}
		}
		y += lineHeight + spacing
	}

	return img, nil
}

// MaxFontSize walks point sizes upward and returns the largest at which
// the longest line still fits within the label width.
func MaxFontSize(ttf *truetype.Font, content string, labelWidth int) float64 {
	best := minFontSize

	for size := minFontSize; size <= maxFontSize; size++ {
		face := truetype.NewFace(ttf, &truetype.Options{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})

		widest := 0
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if w := font.MeasureString(face, line).Ceil(); w > widest {
				widest = w
			}
		}
		face.Close()

		if widest > labelWidth {
			break
		}
		best = size
	}

	return float64(best)
}
