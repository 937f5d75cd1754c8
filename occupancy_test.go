package gridsight

import (
	"image"
	"image/color"
	"testing"
)

func TestNewOccupancyGrid(t *testing.T) {
	g := NewOccupancyGrid(100, 50, OutsideOpen)
	if g.Width() != 100 || g.Height() != 50 {
		t.Errorf("expected 100x50, got %dx%d", g.Width(), g.Height())
	}
	if g.Count() != 0 {
		t.Errorf("expected empty grid, got %d occupied", g.Count())
	}
	if g.Bounds() != image.Rect(0, 0, 100, 50) {
		t.Errorf("Bounds() = %v", g.Bounds())
	}
}

func TestNewOccupancyGridNegativeSize(t *testing.T) {
	g := NewOccupancyGrid(-3, 5, OutsideOpen)
	if g.Width() != 0 || g.Height() != 5 {
		t.Errorf("expected 0x5, got %dx%d", g.Width(), g.Height())
	}
}

func TestOccupancyGridSetClear(t *testing.T) {
	g := NewOccupancyGrid(10, 10, OutsideOpen)

	g.Set(C(3, 4))
	if !g.At(C(3, 4)) {
		t.Error("expected (3,4) occupied after Set")
	}
	if g.At(C(4, 3)) {
		t.Error("Set must not touch the transposed cell")
	}

	g.Clear(C(3, 4))
	if g.At(C(3, 4)) {
		t.Error("expected (3,4) free after Clear")
	}

	// Out of bounds writes are ignored.
	g.Set(C(-1, 0))
	g.Set(C(10, 0))
	if g.Count() != 0 {
		t.Errorf("out of bounds Set changed the grid, count = %d", g.Count())
	}
}

func TestOccupancyGridToggle(t *testing.T) {
	g := NewOccupancyGrid(4, 4, OutsideOpen)
	if !g.Toggle(C(1, 1)) {
		t.Error("first Toggle should occupy")
	}
	if g.Toggle(C(1, 1)) {
		t.Error("second Toggle should free")
	}
	if g.Toggle(C(9, 9)) {
		t.Error("Toggle outside an open grid should report free")
	}
}

func TestOccupancyGridOutsidePolicy(t *testing.T) {
	tests := []struct {
		policy OutsidePolicy
		want   bool
	}{
		{OutsideOpen, false},
		{OutsideBlocked, true},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			g := NewOccupancyGrid(5, 5, tt.policy)
			for _, c := range []Cell{C(-1, 2), C(5, 2), C(2, -1), C(2, 5)} {
				if got := g.Occluded(c); got != tt.want {
					t.Errorf("Occluded(%v) = %v, want %v", c, got, tt.want)
				}
			}
			if g.Occluded(C(2, 2)) {
				t.Error("inside cell should be free")
			}
		})
	}
}

func TestNilOccupancyGrid(t *testing.T) {
	var g *OccupancyGrid
	if g.Width() != 0 || g.Height() != 0 || g.Count() != 0 {
		t.Errorf("nil grid = %dx%d with %d occupied, want empty", g.Width(), g.Height(), g.Count())
	}
	if g.In(C(0, 0)) || g.At(C(0, 0)) || g.At(C(-1, -1)) {
		t.Error("nil grid should report every cell free")
	}
	if v := Visible(C(0, 0), C(3, 3), 18, g); !v.Clear() {
		t.Errorf("Visible through nil grid = %+v, want clear", v)
	}
}

func TestOccupancyGridFillResetClone(t *testing.T) {
	g := NewOccupancyGrid(8, 8, OutsideOpen)
	g.Fill()
	if g.Count() != 64 {
		t.Errorf("expected 64 after Fill, got %d", g.Count())
	}

	clone := g.Clone()
	g.Reset()

	if g.Count() != 0 {
		t.Errorf("expected 0 after Reset, got %d", g.Count())
	}
	if clone.Count() != 64 {
		t.Errorf("clone should not be affected, got %d", clone.Count())
	}
}

func TestNewOccupancyGridFromImageAlpha(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 3, 1))
	img.SetAlpha(0, 0, color.Alpha{A: 200})
	img.SetAlpha(1, 0, color.Alpha{A: 50})
	img.SetAlpha(2, 0, color.Alpha{A: 128})

	g := NewOccupancyGridFromImage(img, 128, OutsideOpen)

	want := []bool{true, false, true}
	for x, w := range want {
		if got := g.At(C(x, 0)); got != w {
			t.Errorf("At(%d,0) = %v, want %v", x, got, w)
		}
	}
}

func TestNewOccupancyGridFromImageOpaque(t *testing.T) {
	// Offset bounds: the grid origin is the image's top-left pixel.
	img := image.NewGray(image.Rect(10, 10, 13, 11))
	img.SetGray(10, 10, color.Gray{Y: 0})   // black wall
	img.SetGray(11, 10, color.Gray{Y: 255}) // white floor
	img.SetGray(12, 10, color.Gray{Y: 100}) // dark grey wall

	g := NewOccupancyGridFromImage(img, 128, OutsideBlocked)

	if g.Width() != 3 || g.Height() != 1 {
		t.Fatalf("expected 3x1, got %dx%d", g.Width(), g.Height())
	}
	want := []bool{true, false, true}
	for x, w := range want {
		if got := g.At(C(x, 0)); got != w {
			t.Errorf("At(%d,0) = %v, want %v", x, got, w)
		}
	}
	if !g.At(C(3, 0)) {
		t.Error("outside policy should carry over from the argument")
	}
}

func TestOutsidePolicyString(t *testing.T) {
	if OutsideOpen.String() != "open" || OutsideBlocked.String() != "blocked" {
		t.Errorf("unexpected names %q, %q", OutsideOpen, OutsideBlocked)
	}
	if OutsidePolicy(9).String() != "unknown" {
		t.Errorf("OutsidePolicy(9) = %q", OutsidePolicy(9))
	}
}
