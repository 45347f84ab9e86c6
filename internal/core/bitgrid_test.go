package core

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitGridBufferLength(t *testing.T) {
	cases := []struct {
		w, h int
		want int
	}{
		{1, 1, 1},
		{8, 1, 1},
		{9, 1, 2},
		{5, 5, 4},
		{8, 8, 8},
		{256, 256, 8192},
	}
	for _, c := range cases {
		g, err := NewBitGrid(c.w, c.h)
		if err != nil {
			t.Fatalf("NewBitGrid(%d, %d): %v", c.w, c.h, err)
		}
		if len(g.Bytes()) != c.want {
			t.Fatalf("NewBitGrid(%d, %d): buffer length %d, expected %d", c.w, c.h, len(g.Bytes()), c.want)
		}
	}
}

func TestBitGridRejectsBadDimensions(t *testing.T) {
	for _, c := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		if _, err := NewBitGrid(c[0], c[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewBitGrid(%d, %d): error %v, expected ErrInvalidDimensions", c[0], c[1], err)
		}
	}
}

func TestBitGridSetGetWrap(t *testing.T) {
	g, err := NewBitGrid(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, true)

	// every wrapped alias of (0,0) must read the same bit
	aliases := [][2]int{{0, 0}, {4, 0}, {0, 5}, {4, 5}, {-4, -5}, {8, 10}}
	for _, a := range aliases {
		if !g.Get(a[0], a[1]) {
			t.Fatalf("Get(%d, %d) dead, expected alive via wraparound", a[0], a[1])
		}
	}
	if g.Population() != 1 {
		t.Fatalf("population %d, expected 1", g.Population())
	}

	g.Set(-1, -1, true) // wraps to (3, 4)
	if !g.Get(3, 4) {
		t.Fatal("Set(-1, -1) did not land on (3, 4)")
	}
}

func TestBitGridToggleLocality(t *testing.T) {
	g, err := NewBitGrid(10, 7)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, true)
	g.Set(6, 9, true)
	before := append([]byte(nil), g.Bytes()...)

	g.Toggle(3, 4)

	idx := g.Index(3, 4)
	diff := 0
	for i, b := range g.Bytes() {
		if b == before[i] {
			continue
		}
		diff++
		if i != idx/8 || b^before[i] != 1<<(idx%8) {
			t.Fatalf("byte %d changed by %08b, expected only bit %d of byte %d", i, b^before[i], idx%8, idx/8)
		}
	}
	if diff != 1 {
		t.Fatalf("%d bytes changed, expected exactly 1", diff)
	}

	g.Toggle(3, 4)
	if !bytes.Equal(g.Bytes(), before) {
		t.Fatal("double toggle did not restore the buffer")
	}
}

func TestBitGridFinalBytePadding(t *testing.T) {
	// 3x3 = 9 bits across 2 bytes; the final byte uses one bit
	g, err := NewBitGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			g.Set(row, col, true)
		}
	}
	buf := g.Bytes()
	if buf[0] != 0xff || buf[1] != 0x01 {
		t.Fatalf("buffer %08b %08b, expected 11111111 00000001", buf[0], buf[1])
	}
	if g.Population() != 9 {
		t.Fatalf("population %d, expected 9", g.Population())
	}

	g.Clear()
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d is %08b after Clear, expected 0", i, b)
		}
	}
}
