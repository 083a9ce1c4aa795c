package rimage

import (
	"image/color"
	"testing"
)

func TestCompositeCopiesVerbatim(t *testing.T) {
	t.Parallel()

	dst, err := New(4, 4)
	if err != nil {
		t.Fatalf("New dst: %v", err)
	}
	src, err := New(2, 2)
	if err != nil {
		t.Fatalf("New src: %v", err)
	}
	src.pix.SetNRGBA(0, 0, color.NRGBA{R: 9, A: 128}) // partial alpha must NOT be blended

	if err := Composite(dst, src, 1, 1); err != nil {
		t.Fatalf("Composite: %v", err)
	}

	got := dst.pix.NRGBAAt(1, 1)
	if got.R != 9 || got.A != 128 {
		t.Fatalf("Composite blended rather than overwriting: got %+v, want {9 0 0 128}", got)
	}
}

func TestCompositeOutOfBoundsFails(t *testing.T) {
	t.Parallel()

	dst, _ := New(2, 2)
	src, _ := New(3, 3)

	if err := Composite(dst, src, 0, 0); err == nil {
		t.Fatal("expected error compositing an oversized source")
	}

	dst2, _ := New(4, 4)
	src2, _ := New(2, 2)
	if err := Composite(dst2, src2, -1, 0); err == nil {
		t.Fatal("expected error for negative offset")
	}
	if err := Composite(dst2, src2, 3, 3); err == nil {
		t.Fatal("expected error when offset pushes source past dst bounds")
	}
}

func TestAddBorderStampsOuterRing(t *testing.T) {
	t.Parallel()

	im, err := New(3, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	im.AddBorder()

	red := color.NRGBA{R: 255, A: 255}
	for x := 0; x < 3; x++ {
		if im.pix.NRGBAAt(x, 0) != red || im.pix.NRGBAAt(x, 2) != red {
			t.Fatalf("top/bottom row not bordered at x=%d", x)
		}
	}
	for y := 0; y < 3; y++ {
		if im.pix.NRGBAAt(0, y) != red || im.pix.NRGBAAt(2, y) != red {
			t.Fatalf("left/right column not bordered at y=%d", y)
		}
	}
	if im.pix.NRGBAAt(1, 1) == red {
		t.Fatal("interior pixel should not be bordered")
	}
}
