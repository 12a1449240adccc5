package layout

import "image"

// Grid constants for the 320x240 panel: eight 40px columns (seven zones
// plus the pump box), a graph strip below them, then three status lines.
const (
	BoxWidth    = 40
	BoxHeight   = 78
	GraphHeight = 84
	GraphY      = BoxHeight
	StatusY     = BoxHeight + GraphHeight + 4
	LineSpacing = 14

	ZoneColumns = 7
	PumpColumn  = 7
)

// ZoneBox returns the status box rectangle for zone column i. Columns are
// a pixel narrower than their stride so adjacent outlines do not touch.
func ZoneBox(i int) image.Rectangle {
	x := i * BoxWidth
	return image.Rect(x, 0, x+BoxWidth-1, BoxHeight)
}

// PumpBox is the eighth column, right of the zones.
func PumpBox() image.Rectangle { return ZoneBox(PumpColumn) }

// GraphPanel returns the graph rectangle below column i.
func GraphPanel(i int) image.Rectangle {
	x := i * BoxWidth
	return image.Rect(x, GraphY, x+BoxWidth-1, GraphY+GraphHeight)
}

// StatusLine returns the top y of status text line n.
func StatusLine(n int) int { return StatusY + n*LineSpacing }

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}
