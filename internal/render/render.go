package render

import (
	"image"
	"image/color"
)

// FontSize is a discrete text size class. Resolving a class to an actual
// font face is the FontProvider's concern; the display renderer only ever
// names a class.
type FontSize int

const (
	FontTiny FontSize = iota
	FontSmall
	FontMedium
	FontLarge
	FontXLarge
)

// Points returns the nominal point size for a class.
func (s FontSize) Points() int {
	switch s {
	case FontTiny:
		return 8
	case FontSmall:
		return 10
	case FontMedium:
		return 12
	case FontLarge:
		return 16
	case FontXLarge:
		return 20
	}
	return 10
}

// Drawer is the pixel backend the display renderer draws through, without
// exposing image or framebuffer details. Coordinates are integer pixels,
// origin top-left, y growing downward. Rectangles follow the Go image
// convention: Min inclusive, Max exclusive. The renderer never reads back
// from a Drawer, and a fresh surface is expected per rendered frame.
type Drawer interface {
	// Size returns the logical canvas size in pixels.
	Size() (width int, height int)

	FillRect(r image.Rectangle, fill color.Color)
	// StrokeRect fills r and draws a one-pixel outline on its inside
	// edge. Either color may be nil to skip that part.
	StrokeRect(r image.Rectangle, fill, outline color.Color)

	// DrawText draws text with its glyph box anchored at (x, y) top-left.
	DrawText(x, y int, text string, c color.Color, size FontSize)

	DrawPoint(p image.Point, c color.Color)
	// DrawPolyline connects consecutive points with straight segments.
	// Fewer than two points draws nothing.
	DrawPolyline(pts []image.Point, c color.Color)
	// DrawEllipse draws a filled disc, or a one-pixel outline when filled
	// is false, inside the bounding rectangle.
	DrawEllipse(r image.Rectangle, c color.Color, filled bool)
}
