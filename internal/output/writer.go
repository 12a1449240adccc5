// Package output saves rendered frames to disk as documentation PNGs.
package output

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Writer persists frames under one directory, upscaled by an integer
// nearest-neighbor factor so the pixel grid stays crisp in docs.
type Writer struct {
	fs    afero.Fs
	dir   string
	scale int
}

// NewWriter creates dir if needed. Scale factors below 1 are treated as 1.
func NewWriter(fs afero.Fs, dir string, scale int) (*Writer, error) {
	if scale < 1 {
		scale = 1
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output dir")
	}
	return &Writer{fs: fs, dir: dir, scale: scale}, nil
}

// Save writes img as <name>.png and returns the path written.
func (w *Writer) Save(name string, img image.Image) (string, error) {
	out := img
	if w.scale > 1 {
		b := img.Bounds()
		out = imaging.Resize(img, b.Dx()*w.scale, b.Dy()*w.scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return "", errors.Wrap(err, "encode png")
	}

	path := filepath.Join(w.dir, name+".png")
	if err := afero.WriteFile(w.fs, path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(err, "write png")
	}
	return path, nil
}
