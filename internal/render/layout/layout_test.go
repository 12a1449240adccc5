package layout

import (
	"image"
	"testing"
)

func TestZoneBoxGrid(t *testing.T) {
	if got := ZoneBox(0); got != image.Rect(0, 0, 39, 78) {
		t.Errorf("ZoneBox(0) = %v", got)
	}
	if got := ZoneBox(6).Min.X; got != 240 {
		t.Errorf("ZoneBox(6) starts at %d, want 240", got)
	}
	for i := 0; i < ZoneColumns; i++ {
		if ZoneBox(i).Dx() != BoxWidth-1 {
			t.Errorf("ZoneBox(%d) width = %d", i, ZoneBox(i).Dx())
		}
	}
	// Adjacent outlines must not touch.
	for i := 1; i < ZoneColumns; i++ {
		if ZoneBox(i-1).Max.X >= ZoneBox(i).Min.X {
			t.Errorf("columns %d and %d overlap", i-1, i)
		}
	}
}

func TestPumpBoxIsEighthColumn(t *testing.T) {
	if got := PumpBox().Min.X; got != 7*BoxWidth {
		t.Errorf("pump box starts at %d, want %d", got, 7*BoxWidth)
	}
}

func TestGraphPanelBelowBox(t *testing.T) {
	p := GraphPanel(0)
	if p.Min.Y != BoxHeight {
		t.Errorf("graph starts at y=%d, want %d", p.Min.Y, BoxHeight)
	}
	if p.Dy() != GraphHeight {
		t.Errorf("graph height = %d, want %d", p.Dy(), GraphHeight)
	}
	if p.Dx() != ZoneBox(0).Dx() {
		t.Error("graph panel and zone box widths differ")
	}
}

func TestStatusLines(t *testing.T) {
	want := []int{166, 180, 194}
	for n, y := range want {
		if got := StatusLine(n); got != y {
			t.Errorf("StatusLine(%d) = %d, want %d", n, got, y)
		}
	}
}

func TestInset(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	if got := Inset(r, 1); got != image.Rect(1, 1, 9, 9) {
		t.Errorf("Inset(1) = %v", got)
	}
	if got := Inset(r, 0); got != r {
		t.Errorf("Inset(0) = %v, want unchanged", got)
	}
	// Over-insetting must not produce an inverted rectangle.
	got := Inset(r, 8)
	if got.Min.X > got.Max.X || got.Min.Y > got.Max.Y {
		t.Errorf("Inset(8) inverted: %v", got)
	}
}

func TestNormalize(t *testing.T) {
	r := image.Rectangle{Min: image.Point{X: 9, Y: 9}, Max: image.Point{X: 1, Y: 1}}
	if got := Normalize(r); got != image.Rect(1, 1, 9, 9) {
		t.Errorf("Normalize = %v", got)
	}
}
