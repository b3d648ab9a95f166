package wireframe

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/render"
)

const cornerRadius = 6

func radius(r layout.Rect) float64 {
	return float64(min(cornerRadius, r.Width/2, r.Height/2))
}

// RenderSVG draws f as an SVG document sized to the container.
func RenderSVG(f render.Frame) []byte {
	w, h := f.Container.Width, f.Container.Height

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", w, h, render.Background.RGBHex())

	boxes := render.Boxes(f)
	for _, b := range boxes {
		renderBox(&buf, b)
	}
	for _, b := range boxes {
		renderLabel(&buf, b)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBox(buf *bytes.Buffer, b render.Box) {
	fill := "none"
	if b.Filled {
		fill = b.Fill.RGBHex()
	}
	stroke, width := render.Outline.RGBHex(), 1
	if b.Selected {
		stroke, width = render.SelectedColor.RGBHex(), 3
	}
	dash := ""
	if !b.Active {
		dash = ` stroke-dasharray="4 3"`
	}
	fmt.Fprintf(buf, `  <path id="widget-%d" class="widget" d="%s" fill="%s" stroke="%s" stroke-width="%d"%s/>`+"\n",
		b.Token, pathData(b), fill, stroke, width, dash)
}

func renderLabel(buf *bytes.Buffer, b render.Box) {
	if b.Label == "" {
		return
	}
	cx := float64(b.Rect.X) + float64(b.Rect.Width)/2
	cy := float64(b.Rect.Y) + float64(b.Rect.Height)/2
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="12" fill="#ffffff">%s</text>`+"\n",
		cx, cy, html.EscapeString(b.Label))
}

// pathData outlines the box clockwise from the top-left corner, rounding
// the corners selected by b.Corners.
func pathData(b render.Box) string {
	x, y := float64(b.Rect.X), float64(b.Rect.Y)
	w, h := float64(b.Rect.Width), float64(b.Rect.Height)
	r := radius(b.Rect)
	tl, tr, br, bl := render.Corners(b.Corners)

	rad := func(round bool) float64 {
		if round {
			return r
		}
		return 0
	}
	rtl, rtr, rbr, rbl := rad(tl), rad(tr), rad(br), rad(bl)

	var p bytes.Buffer
	fmt.Fprintf(&p, "M%g %g", x+rtl, y)
	fmt.Fprintf(&p, " H%g", x+w-rtr)
	if rtr > 0 {
		fmt.Fprintf(&p, " A%g %g 0 0 1 %g %g", rtr, rtr, x+w, y+rtr)
	}
	fmt.Fprintf(&p, " V%g", y+h-rbr)
	if rbr > 0 {
		fmt.Fprintf(&p, " A%g %g 0 0 1 %g %g", rbr, rbr, x+w-rbr, y+h)
	}
	fmt.Fprintf(&p, " H%g", x+rbl)
	if rbl > 0 {
		fmt.Fprintf(&p, " A%g %g 0 0 1 %g %g", rbl, rbl, x, y+h-rbl)
	}
	fmt.Fprintf(&p, " V%g", y+rtl)
	if rtl > 0 {
		fmt.Fprintf(&p, " A%g %g 0 0 1 %g %g", rtl, rtl, x+rtl, y)
	}
	p.WriteString(" Z")
	return p.String()
}
