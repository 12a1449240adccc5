package render

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFontProviderBuildsAllClasses(t *testing.T) {
	p := NewFontProvider("", nil)
	for _, size := range allSizes {
		face := p.Face(size)
		if face == nil {
			t.Fatalf("no face for class %d", size)
		}
		if face.Metrics().Height == 0 {
			t.Errorf("class %d face has zero height", size)
		}
	}
	if p.Face(FontTiny) == p.Face(FontXLarge) {
		t.Error("tiny and xlarge resolved to the same face")
	}
}

func TestFontProviderBadPathFallsBack(t *testing.T) {
	p := NewFontProvider("/nonexistent/zonedisplay-test.ttf", nil)
	face := p.Face(FontMedium)
	if face == nil {
		t.Fatal("fallback produced no face")
	}
	// The embedded font takes over; we should not be down to the bitmap
	// face just because the configured path is missing.
	if face == basicfont.Face7x13 {
		t.Error("missing font file skipped the embedded fallback")
	}
}

func TestFontProviderUnknownClass(t *testing.T) {
	p := NewFontProvider("", nil)
	if p.Face(FontSize(99)) != basicfont.Face7x13 {
		t.Error("unknown class should fall back to the bitmap face")
	}
}

func TestFontSizePoints(t *testing.T) {
	cases := map[FontSize]int{
		FontTiny:   8,
		FontSmall:  10,
		FontMedium: 12,
		FontLarge:  16,
		FontXLarge: 20,
	}
	for size, want := range cases {
		if got := size.Points(); got != want {
			t.Errorf("Points(%d) = %d, want %d", size, got, want)
		}
	}
}
