package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 4},
		{R: 10, G: 20, B: 30, A: 40},
	}
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 4, 10, 20, 30, 40, 10, 20, 30, 40}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	cells := []uint8{1, 2}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}

func TestBinaryPalette(t *testing.T) {
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{0, 1}, BinaryPalette)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}
