package raster

import (
	"image/color"
	"testing"
)

func TestBitmapSetGet(t *testing.T) {
	bm := NewBitmap(13, 4) // odd width exercises the partial last byte

	if bm.Stride != 2 {
		t.Errorf("Expected stride 2 for width 13, got %d", bm.Stride)
	}

	bm.SetBlack(0, 0, true)
	bm.SetBlack(12, 3, true)
	bm.SetBlack(7, 1, true)

	if !bm.Black(0, 0) || !bm.Black(12, 3) || !bm.Black(7, 1) {
		t.Error("Set pixels should read back black")
	}
	if bm.Black(1, 0) || bm.Black(11, 3) {
		t.Error("Unset pixels should read back white")
	}

	bm.SetBlack(7, 1, false)
	if bm.Black(7, 1) {
		t.Error("Cleared pixel should read back white")
	}
}

func TestBitmapOutOfBounds(t *testing.T) {
	bm := NewBitmap(8, 8)
	bm.SetBlack(-1, 0, true)
	bm.SetBlack(8, 0, true)
	bm.SetBlack(0, 8, true)

	for _, b := range bm.Pix {
		if b != 0 {
			t.Fatal("Out-of-bounds writes must not touch the buffer")
		}
	}
	if bm.Black(-1, 0) || bm.Black(8, 0) {
		t.Error("Out-of-bounds reads should report white")
	}
}

func TestBitmapImageInterface(t *testing.T) {
	bm := NewBitmap(4, 4)
	bm.SetBlack(2, 2, true)

	if got := bm.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Errorf("Unexpected bounds %v", got)
	}
	if c := bm.At(2, 2).(color.Gray); c.Y != 0 {
		t.Errorf("Black pixel should be gray 0, got %d", c.Y)
	}
	if c := bm.At(0, 0).(color.Gray); c.Y != 255 {
		t.Errorf("White pixel should be gray 255, got %d", c.Y)
	}
}

func TestBitmapRowPacking(t *testing.T) {
	bm := NewBitmap(10, 2)
	// Row 0: pixels 0 and 9 black -> 0x80, 0x40
	bm.SetBlack(0, 0, true)
	bm.SetBlack(9, 0, true)

	row := bm.Row(0)
	if row[0] != 0x80 || row[1] != 0x40 {
		t.Errorf("Expected row [0x80 0x40], got [%#02x %#02x]", row[0], row[1])
	}

	// Row is a copy
	row[0] = 0
	if !bm.Black(0, 0) {
		t.Error("Mutating a returned row must not affect the bitmap")
	}
}

func TestBitmapFillAndToGray(t *testing.T) {
	bm := NewBitmap(5, 5)
	bm.Fill(true)
	bm.SetBlack(2, 2, false)

	gray := bm.ToGray()
	if gray.GetGray(0, 0) != 0 {
		t.Error("Filled pixel should expand to gray 0")
	}
	if gray.GetGray(2, 2) != 255 {
		t.Error("Cleared pixel should expand to gray 255")
	}
}
