package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an image-backed Drawer. Create a fresh Canvas per frame so no
// stale pixels survive between renders.
type Canvas struct {
	img   *image.RGBA
	fonts *FontProvider
}

// NewCanvas returns a canvas of the logical display size, filled black.
func NewCanvas(fonts *FontProvider) *Canvas {
	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		fonts: fonts,
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Black}, image.Point{}, draw.Src)
	return c
}

// Image exposes the rendered pixels for saving or blitting.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillRect(r image.Rectangle, fill color.Color) {
	if fill == nil {
		return
	}
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

func (c *Canvas) StrokeRect(r image.Rectangle, fill, outline color.Color) {
	r = r.Canon()
	c.FillRect(r, fill)
	if outline == nil || r.Empty() {
		return
	}
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), outline)
	c.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), outline)
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), outline)
	c.FillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), outline)
}

func (c *Canvas) DrawText(x, y int, text string, col color.Color, size FontSize) {
	face := c.fonts.Face(size)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	// The drawer positions by baseline; callers anchor top-left.
	d.Dot = fixed.P(x, y+face.Metrics().Ascent.Ceil())
	d.DrawString(text)
}

func (c *Canvas) DrawPoint(p image.Point, col color.Color) {
	c.img.Set(p.X, p.Y, col)
}

func (c *Canvas) DrawPolyline(pts []image.Point, col color.Color) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		c.drawLine(pts[i-1], pts[i], col)
	}
}

// drawLine is a Bresenham segment; Set is a no-op outside the canvas.
func (c *Canvas) drawLine(a, b image.Point, col color.Color) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		c.img.Set(x, y, col)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (c *Canvas) DrawEllipse(r image.Rectangle, col color.Color, filled bool) {
	r = r.Canon()
	if r.Dx() < 1 || r.Dy() < 1 {
		return
	}
	if r.Dx() == 1 || r.Dy() == 1 {
		c.FillRect(r, col)
		return
	}
	rx := float64(r.Dx()-1) / 2
	ry := float64(r.Dy()-1) / 2
	cx := float64(r.Min.X) + rx
	cy := float64(r.Min.Y) + ry
	inside := func(x, y int) bool {
		if !(image.Point{X: x, Y: y}).In(r) {
			return false
		}
		nx := (float64(x) - cx) / rx
		ny := (float64(y) - cy) / ry
		return nx*nx+ny*ny <= 1.0+1e-9
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !inside(x, y) {
				continue
			}
			if filled || !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1) {
				c.img.Set(x, y, col)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
