package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{R: 200, G: 210, B: 220, A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		10, 20, 30, 255,
		200, 210, 220, 255,
		10, 20, 30, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("unexpected pixels %v", buf)
	}
}

func TestDefaultColors(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []bool{true, false}, LiveColor, DeadColor)
	if !slices.Equal(buf, []byte{0, 0, 0, 255, 255, 255, 255, 255}) {
		t.Fatalf("live cells must be black and dead cells white, got %v", buf)
	}
}
