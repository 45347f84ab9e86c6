package render

import (
	"image/color"
	"testing"
)

func TestFillPackedRGBA(t *testing.T) {
	// cells 0, 2 and 9 alive out of 10
	cells := []byte{0b00000101, 0b00000010}
	n := 10
	buf := make([]byte, 4*n)

	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	fillPackedRGBA(buf, cells, n, on, off)

	liveIdx := map[int]bool{0: true, 2: true, 9: true}
	for i := 0; i < n; i++ {
		base := i * 4
		want := off
		if liveIdx[i] {
			want = on
		}
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, expected %v", i, got, want)
		}
	}
}

func TestFillPackedRGBAColors(t *testing.T) {
	cells := []byte{0b00000001}
	buf := make([]byte, 4)

	fillPackedRGBA(buf, cells, 1, color.RGBA{R: 10, G: 20, B: 30, A: 40}, color.Black)
	got := [4]byte{buf[0], buf[1], buf[2], buf[3]}
	if got != [4]byte{10, 20, 30, 40} {
		t.Fatalf("live pixel channels %v, expected [10 20 30 40]", got)
	}
}
