package wireframe

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/menulayout/pkg/errors"
	"github.com/matzehuels/menulayout/pkg/render"
	"github.com/matzehuels/menulayout/pkg/widget"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// MaxPixels bounds the size of a rendered PNG, about 256 MB of RGBA.
const MaxPixels = 1 << 26

// RenderPNG rasterises f into a PNG image. Images larger than [MaxPixels]
// are rejected with INVALID_INPUT.
func RenderPNG(f render.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	fw := math.Ceil(float64(f.Container.Width) * r.scale)
	fh := math.Ceil(float64(f.Container.Height) * r.scale)
	if fw < 1 || fh < 1 || fw*fh > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png of %.0fx%.0f pixels is outside 1-%d pixels", fw, fh, MaxPixels)
	}
	w, h := int(fw), int(fh)
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	setColor(dc, render.Background)
	dc.Clear()

	boxes := render.Boxes(f)
	for _, b := range boxes {
		drawBox(dc, b)
	}
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	for _, b := range boxes {
		if b.Label == "" {
			continue
		}
		cx := float64(b.Rect.X) + float64(b.Rect.Width)/2
		cy := float64(b.Rect.Y) + float64(b.Rect.Height)/2
		dc.DrawStringAnchored(b.Label, cx, cy, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBox(dc *gg.Context, b render.Box) {
	x, y := float64(b.Rect.X), float64(b.Rect.Y)
	w, h := float64(b.Rect.Width), float64(b.Rect.Height)
	r := radius(b.Rect)
	tl, tr, br, bl := render.Corners(b.Corners)

	dc.NewSubPath()
	corner(dc, tl, x, y, r, x+r, y+r, math.Pi)
	corner(dc, tr, x+w, y, r, x+w-r, y+r, 1.5*math.Pi)
	corner(dc, br, x+w, y+h, r, x+w-r, y+h-r, 0)
	corner(dc, bl, x, y+h, r, x+r, y+h-r, 0.5*math.Pi)
	dc.ClosePath()

	if b.Filled {
		setColor(dc, b.Fill)
		dc.FillPreserve()
	}
	stroke, width := render.Outline, 1.0
	if b.Selected {
		stroke, width = render.SelectedColor, 3
	}
	setColor(dc, stroke)
	dc.SetLineWidth(width)
	if b.Active {
		dc.SetDash()
	} else {
		dc.SetDash(4, 3)
	}
	dc.Stroke()
}

// corner continues the outline through a corner at (px, py), either as a
// quarter arc around (cx, cy) starting at angle a0 or as a sharp point.
func corner(dc *gg.Context, round bool, px, py, r, cx, cy, a0 float64) {
	if !round || r == 0 {
		dc.LineTo(px, py)
		return
	}
	dc.DrawArc(cx, cy, r, a0, a0+0.5*math.Pi)
}

func setColor(dc *gg.Context, c widget.Color) {
	dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}
