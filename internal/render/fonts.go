package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// FontProvider resolves size classes to concrete faces once, at
// construction, so drawing stays free of file access and parsing.
type FontProvider struct {
	faces map[FontSize]font.Face
}

var allSizes = []FontSize{FontTiny, FontSmall, FontMedium, FontLarge, FontXLarge}

// NewFontProvider builds a face per size class. The fallback chain is: the
// given TTF path, then the embedded Go Regular font, then the fixed bitmap
// font. Failures log and degrade to the next link; construction itself
// never fails.
func NewFontProvider(path string, logger *zap.Logger) *FontProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	fnt := loadFont(path, logger)
	p := &FontProvider{faces: make(map[FontSize]font.Face, len(allSizes))}
	for _, size := range allSizes {
		if fnt == nil {
			p.faces[size] = basicfont.Face7x13
			continue
		}
		p.faces[size] = truetype.NewFace(fnt, &truetype.Options{
			Size:    float64(size.Points()),
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return p
}

// Face returns the face for a size class, falling back to the bitmap font
// for unknown classes.
func (p *FontProvider) Face(size FontSize) font.Face {
	if f, ok := p.faces[size]; ok {
		return f
	}
	return basicfont.Face7x13
}

func loadFont(path string, logger *zap.Logger) *truetype.Font {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("font file unreadable, falling back", zap.String("path", path), zap.Error(err))
		} else if fnt, perr := truetype.Parse(raw); perr != nil {
			logger.Warn("font parse failed, falling back", zap.String("path", path), zap.Error(perr))
		} else {
			return fnt
		}
	}
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		logger.Warn("builtin font parse failed, using bitmap font", zap.Error(err))
		return nil
	}
	return fnt
}
