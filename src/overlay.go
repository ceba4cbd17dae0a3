package main

import (
	"image"
	"os"

	findfont "github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// TextOverlay rasterizes flash-card and pause text into a window-sized
// RGBA image and blends it over the 3D frame. The texture is rebuilt only
// when the text or window size changes.
type TextOverlay struct {
	ttf      *truetype.Font
	size     float64
	tex      uint32
	lastText string
	lastW    int32
	lastH    int32
}

// newTextOverlay resolves fontName through the system font directories.
func newTextOverlay(fontName string, size float64) (*TextOverlay, error) {
	path, err := findfont.Find(fontName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &TextOverlay{ttf: ttf, size: size}, nil
}

func (o *TextOverlay) Draw(text string, w, h int32) {
	if o == nil || text == "" || w <= 0 || h <= 0 {
		return
	}
	if text != o.lastText || w != o.lastW || h != o.lastH {
		gfx.DeleteTexture(o.tex)
		o.tex = gfx.UploadRGBA(o.render(text, int(w), int(h)))
		o.lastText, o.lastW, o.lastH = text, w, h
	}
	gfx.DrawOverlay(o.tex, w, h)
}

func (o *TextOverlay) render(text string, w, h int) *image.RGBA {
	dc := gg.NewContext(w, h)
	face := truetype.NewFace(o.ttf, &truetype.Options{
		Size:    o.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	// Dimmed band behind the text keeps it readable over the figure.
	band := o.size * 3
	dc.SetRGBA(0, 0, 0, 0.45)
	dc.DrawRectangle(0, float64(h)/2-band/2, float64(w), band)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringWrapped(text, float64(w)/2, float64(h)/2, 0.5, 0.5,
		float64(w)*0.85, 1.4, gg.AlignCenter)
	return dc.Image().(*image.RGBA)
}
