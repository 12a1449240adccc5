package main

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// previewFB blits a rendered frame to a Linux framebuffer device with
// nearest-neighbor scaling, as a quick on-device check of a mockup.
func previewFB(device string, frame *image.RGBA) error {
	dev, err := fb.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	srcWidth := frame.Bounds().Dx()
	srcHeight := frame.Bounds().Dy()
	for y := 0; y < fbHeight; y++ {
		sy := y * srcHeight / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := x * srcWidth / fbWidth
			pixel := frame.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
