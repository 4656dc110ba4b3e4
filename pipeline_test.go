package labelpress

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stickerfactory/labelpress/raster"
)

func TestMMToPixels(t *testing.T) {
	cases := []struct {
		mm   float64
		dpi  int
		want int
	}{
		{50, 300, 591}, // round(50/25.4*300)
		{62, 300, 732},
		{25.4, 300, 300},
		{25.4, 0, 300}, // dpi <= 0 falls back to DefaultDPI
	}
	for _, tc := range cases {
		if got := MMToPixels(tc.mm, tc.dpi); got != tc.want {
			t.Errorf("MMToPixels(%g, %d) = %d, want %d", tc.mm, tc.dpi, got, tc.want)
		}
	}
}

func TestPrepareWidthAndAspect(t *testing.T) {
	img := raster.CreateGradientImage(200, 100)

	gray, dithered, err := Prepare(img, 696)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if gray.Width() != 696 || dithered.Width() != 696 {
		t.Errorf("Prepared buffers must match label width 696, got %d and %d",
			gray.Width(), dithered.Width())
	}

	// round(696/200*100) = 348
	if diff := gray.Height() - 348; diff < -1 || diff > 1 {
		t.Errorf("Expected height 348 (+-1), got %d", gray.Height())
	}
	if gray.Height() != dithered.Height() {
		t.Errorf("Gray and dithered heights differ: %d vs %d", gray.Height(), dithered.Height())
	}
}

func TestPrepareFlattensAlpha(t *testing.T) {
	img := raster.NewRGBAImage(100, 50) // fully transparent

	gray, dithered, err := Prepare(img, 100)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if v := gray.GetGray(50, 25); v != 255 {
		t.Errorf("Transparent input should prepare to white, got gray %d", v)
	}
	if dithered.Black(50, 25) {
		t.Error("Transparent input should dither to white")
	}
}

func TestPrepareInvalidWidth(t *testing.T) {
	_, _, err := Prepare(raster.NewWhiteRGBA(10, 10), 0)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestPrepareGrayInput(t *testing.T) {
	src := raster.NewGrayImage(696, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 696; x++ {
			src.SetGrayValue(x, y, uint8(x%256))
		}
	}

	// Already at label width: values pass through unchanged.
	gray, dithered, err := Prepare(src.Gray, 696)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if gray.Width() != 696 || dithered.Width() != 696 {
		t.Errorf("Prepared buffers must match label width 696, got %d and %d",
			gray.Width(), dithered.Width())
	}
	if got := gray.GetGray(100, 5); got != 100 {
		t.Errorf("Gray input at label width should pass through, got %d at x=100", got)
	}

	// Narrower gray input gets resized in gray space.
	small := raster.CreateSolidGray(100, 50, 200)
	gray, _, err = Prepare(small.Gray, 696)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if gray.Width() != 696 {
		t.Errorf("Gray input should be resized to 696, got %d", gray.Width())
	}
	// round(696/100*50) = 348
	if diff := gray.Height() - 348; diff < -1 || diff > 1 {
		t.Errorf("Expected height 348 (+-1), got %d", gray.Height())
	}
	if got := gray.GetGray(348, 174); got != 200 {
		t.Errorf("Solid gray should survive the resize, got %d", got)
	}
}

func TestResizeToWidthMM(t *testing.T) {
	// 50mm at 300dpi on a 100px-wide source: target width 591px
	img := raster.NewWhiteRGBA(100, 40)

	out, err := ResizeToWidthMM(img, 50, 591, 300)
	if err != nil {
		t.Fatalf("ResizeToWidthMM failed: %v", err)
	}
	if out.Width() != 591 {
		t.Errorf("Expected width 591, got %d", out.Width())
	}
	// round(591/100*40) = 236
	if diff := out.Height() - 236; diff < -1 || diff > 1 {
		t.Errorf("Expected height 236 (+-1), got %d", out.Height())
	}
}

func TestResizeToWidthMMCenterPads(t *testing.T) {
	img := raster.CreateSolidImage(100, 100, color.RGBA{A: 255}) // black square

	// 10mm at 300dpi = 118px, narrower than the 696px label
	out, err := ResizeToWidthMM(img, 10, 696, 300)
	if err != nil {
		t.Fatalf("ResizeToWidthMM failed: %v", err)
	}
	if out.Width() != 696 {
		t.Errorf("Narrow result must be padded to label width 696, got %d", out.Width())
	}

	gray := raster.ToGrayscale(out)
	if v := gray.GetGray(0, 0); v != 255 {
		t.Errorf("Left padding should be white, got %d", v)
	}
	if v := gray.GetGray(348, 59); v > 64 {
		t.Errorf("Center should hold the black content, got %d", v)
	}
}

func TestResizeToWidthMMInvalid(t *testing.T) {
	img := raster.NewWhiteRGBA(100, 100)
	if _, err := ResizeToWidthMM(img, 0, 696, 300); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions for 0mm, got %v", err)
	}
	if _, err := ResizeToWidthMM(img, -5, 696, 300); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions for negative mm, got %v", err)
	}
}

func TestResizeToWidthMMRejectsWiderThanLabel(t *testing.T) {
	img := raster.NewWhiteRGBA(100, 50)

	// 100mm at 300dpi = 1181px, wider than the 696px label
	if _, err := ResizeToWidthMM(img, 100, 696, 300); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Physical width wider than the label must fail, got %v", err)
	}
}

func TestThreshold(t *testing.T) {
	gray := raster.NewGrayImage(3, 1)
	gray.SetGrayValue(0, 0, 100)
	gray.SetGrayValue(1, 0, 128)
	gray.SetGrayValue(2, 0, 129)

	bm := Threshold(gray, 128)
	if !bm.Black(0, 0) {
		t.Error("100 <= 128 should be black")
	}
	if !bm.Black(1, 0) {
		t.Error("128 <= 128 should be black (strictly-greater rule)")
	}
	if bm.Black(2, 0) {
		t.Error("129 > 128 should be white")
	}
}

func TestThresholdIdempotent(t *testing.T) {
	gray := raster.CreateGradientImage(64, 16)
	first := Threshold(raster.ToGrayscale(gray), 90)
	second := Threshold(first.ToGray(), 90)

	for y := 0; y < first.Height(); y++ {
		for x := 0; x < first.Width(); x++ {
			if first.Black(x, y) != second.Black(x, y) {
				t.Fatalf("Threshold not idempotent at (%d,%d)", x, y)
			}
		}
	}
}

func TestLevelsIdentity(t *testing.T) {
	gray := raster.ToGrayscale(raster.CreateGradientImage(256, 4))

	out, err := Levels(gray, 0, 255)
	if err != nil {
		t.Fatalf("Levels failed: %v", err)
	}

	if mse := raster.CalculateMSEGray(gray, out); mse != 0 {
		t.Errorf("Levels(0,255) should be the identity, MSE=%f", mse)
	}
}

func TestLevelsClamps(t *testing.T) {
	gray := raster.NewGrayImage(3, 1)
	gray.SetGrayValue(0, 0, 10)
	gray.SetGrayValue(1, 0, 128)
	gray.SetGrayValue(2, 0, 250)

	out, err := Levels(gray, 50, 200)
	if err != nil {
		t.Fatalf("Levels failed: %v", err)
	}

	if v := out.GetGray(0, 0); v != 0 {
		t.Errorf("Below black point should clamp to 0, got %d", v)
	}
	if v := out.GetGray(2, 0); v != 255 {
		t.Errorf("Above white point should clamp to 255, got %d", v)
	}
	// (128-50)/150*255 = 132.6 -> 132
	if v := out.GetGray(1, 0); v < 131 || v > 133 {
		t.Errorf("Midtone should map to ~132, got %d", v)
	}
}

func TestLevelsInvalidRange(t *testing.T) {
	gray := raster.NewGrayImage(2, 2)
	if _, err := Levels(gray, 128, 128); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Equal black and white points must fail, got %v", err)
	}
	if _, err := Levels(gray, 200, 100); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Inverted range must fail, got %v", err)
	}
}

func TestEqualizeSpreadsRange(t *testing.T) {
	// Narrow-range input: values 100..131
	gray := raster.NewGrayImage(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			gray.SetGrayValue(x, y, uint8(100+x))
		}
	}

	out := Equalize(gray)

	minV, maxV := uint8(255), uint8(0)
	for _, v := range out.Pix {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if int(maxV)-int(minV) <= 31 {
		t.Errorf("Equalization should widen the 31-step range, got %d..%d", minV, maxV)
	}
}

func TestBorderDimensions(t *testing.T) {
	img := raster.NewWhiteRGBA(40, 30)
	out := Border(img, 3)

	if out.Width() != 46 || out.Height() != 36 {
		t.Errorf("Border of 3 should grow 40x30 to 46x36, got %dx%d", out.Width(), out.Height())
	}

	gray := raster.ToGrayscale(out)
	if v := gray.GetGray(0, 0); v != 0 {
		t.Errorf("Border pixel should be black, got %d", v)
	}
	if v := gray.GetGray(23, 18); v != 255 {
		t.Errorf("Interior should keep the original white, got %d", v)
	}
}

func TestBorderBitmap(t *testing.T) {
	bm := raster.NewBitmap(10, 10) // all white
	out := BorderBitmap(bm, 2)

	if out.Width() != 14 || out.Height() != 14 {
		t.Errorf("Expected 14x14, got %dx%d", out.Width(), out.Height())
	}
	if !out.Black(0, 0) || !out.Black(13, 13) {
		t.Error("Border ring should be black")
	}
	if out.Black(7, 7) {
		t.Error("Interior should keep the original white")
	}
}

func TestTileRowsFixedPolicy(t *testing.T) {
	tall := raster.NewWhiteRGBA(100, 5000)
	squat := raster.NewWhiteRGBA(100, 10)

	if got := TileRows(tall, 696); got != 2 {
		t.Errorf("TileRows should always return 2, got %d", got)
	}
	if got := TileRows(squat, 696); got != 2 {
		t.Errorf("TileRows should always return 2, got %d", got)
	}
}

func TestSplitTilesHeights(t *testing.T) {
	cases := []struct {
		height int
		rows   int
		want   []int
	}{
		{1000, 2, []int{500, 500}},
		{1001, 2, []int{500, 501}},
		{1000, 3, []int{333, 333, 334}},
		{7, 4, []int{1, 1, 1, 4}},
	}

	for _, tc := range cases {
		// Source already at label width so no resize perturbs heights.
		img := raster.NewWhiteRGBA(200, tc.height)
		tiles, err := SplitTiles(img, 200, tc.rows)
		if err != nil {
			t.Fatalf("SplitTiles(h=%d, rows=%d) failed: %v", tc.height, tc.rows, err)
		}
		if len(tiles) != tc.rows {
			t.Fatalf("Expected %d tiles, got %d", tc.rows, len(tiles))
		}

		sum := 0
		for i, tile := range tiles {
			if tile.Width() != 200 {
				t.Errorf("Tile %d width %d, want 200", i, tile.Width())
			}
			if tile.Height() != tc.want[i] {
				t.Errorf("h=%d rows=%d: tile %d height %d, want %d",
					tc.height, tc.rows, i, tile.Height(), tc.want[i])
			}
			sum += tile.Height()
		}
		if sum != tc.height {
			t.Errorf("Tile heights must sum to %d, got %d", tc.height, sum)
		}
	}
}

func TestSplitTilesContent(t *testing.T) {
	// Top half black, bottom half white
	img := raster.NewWhiteRGBA(100, 100)
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}

	tiles, err := SplitTiles(img, 100, 2)
	if err != nil {
		t.Fatalf("SplitTiles failed: %v", err)
	}

	top := raster.ToGrayscale(tiles[0])
	bottom := raster.ToGrayscale(tiles[1])
	if v := top.GetGray(50, 25); v != 0 {
		t.Errorf("First tile should hold the black half, got %d", v)
	}
	if v := bottom.GetGray(50, 25); v != 255 {
		t.Errorf("Second tile should hold the white half, got %d", v)
	}
}

func TestSplitTilesInvalid(t *testing.T) {
	img := raster.NewWhiteRGBA(10, 10)
	if _, err := SplitTiles(img, 100, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Zero rows must fail, got %v", err)
	}
	if _, err := SplitTiles(img, 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Zero label width must fail, got %v", err)
	}
}

func TestTilePreview(t *testing.T) {
	img := raster.NewWhiteRGBA(696, 1000)
	tiles, err := SplitTiles(img, 696, 2)
	if err != nil {
		t.Fatalf("SplitTiles failed: %v", err)
	}

	preview, err := TilePreview(tiles, 696)
	if err != nil {
		t.Fatalf("TilePreview failed: %v", err)
	}

	if preview.Width() != 300 {
		t.Errorf("Wide labels should scale to exactly the 300px cap, got %d", preview.Width())
	}

	// scale = 300/696, tile height 500 -> 215 rows per tile + 10px gap
	scale := 300.0 / 696.0
	wantHeight := int(500*scale)*2 + 10
	if preview.Height() != wantHeight {
		t.Errorf("Expected preview height %d, got %d", wantHeight, preview.Height())
	}
}

func TestTilePreviewSmallLabelKeepsScale(t *testing.T) {
	tiles := []*raster.RGBAImage{
		raster.NewWhiteRGBA(200, 80),
		raster.NewWhiteRGBA(200, 80),
	}

	preview, err := TilePreview(tiles, 200)
	if err != nil {
		t.Fatalf("TilePreview failed: %v", err)
	}
	if preview.Width() != 200 {
		t.Errorf("Labels narrower than 300px should not be scaled up, got width %d", preview.Width())
	}
	if preview.Height() != 80*2+10 {
		t.Errorf("Expected height %d, got %d", 80*2+10, preview.Height())
	}
}

func TestConcatV(t *testing.T) {
	top := raster.NewWhiteRGBA(696, 400)
	qr := raster.CreateSolidImage(100, 100, color.RGBA{A: 255})

	out, err := ConcatV(top, qr, 696)
	if err != nil {
		t.Fatalf("ConcatV failed: %v", err)
	}

	if out.Width() != 696 {
		t.Errorf("Output width should match the top buffer, got %d", out.Width())
	}
	if out.Height() != 400+696 {
		t.Errorf("Output height should be top height plus side, got %d", out.Height())
	}

	gray := raster.ToGrayscale(out)
	if v := gray.GetGray(348, 200); v != 255 {
		t.Errorf("Top region should stay white, got %d", v)
	}
	if v := gray.GetGray(348, 400+348); v > 64 {
		t.Errorf("Bottom square should hold the appended block, got %d", v)
	}
}

func TestConcatVInvalidSide(t *testing.T) {
	top := raster.NewWhiteRGBA(100, 100)
	if _, err := ConcatV(top, top.RGBA, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Zero side must fail, got %v", err)
	}
}
