package navgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// Options configures navigation graph generation.
type Options struct {
	// Scale multiplies container pixels into points. Zero means 1.
	Scale float64

	// HideInactive drops inactive widgets from the graph.
	HideInactive bool
}

var edgeLabels = map[string]string{
	nav.Left.String():  "L",
	nav.Right.String(): "R",
	nav.Up.String():    "U",
	nav.Down.String():  "D",
}

// ToDOT converts an exported layout to Graphviz DOT source.
func ToDOT(doc scene.Document, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	height := float64(doc.Container.Height)

	var buf bytes.Buffer
	buf.WriteString("digraph nav {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10, arrowsize=0.6];\n")
	buf.WriteString("\n")

	shown := make(map[int]bool, len(doc.Widgets))
	for _, w := range doc.Widgets {
		if opts.HideInactive && !w.Active {
			continue
		}
		shown[w.Token] = true
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(w.Token), strings.Join(nodeAttrs(w, doc.Selected, height, scale), ", "))
	}

	buf.WriteString("\n")
	for _, w := range doc.Widgets {
		if !shown[w.Token] {
			continue
		}
		for _, dir := range nav.Directions {
			to, ok := w.Neighbors[dir.String()]
			if !ok || !shown[to] {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", nodeID(w.Token), nodeID(to), edgeLabels[dir.String()])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(token int) string {
	return "w" + strconv.Itoa(token)
}

func nodeLabel(w scene.WidgetEntry) string {
	if w.Label == "" {
		return "#" + strconv.Itoa(w.Token)
	}
	return fmt.Sprintf("%s\n#%d", w.Label, w.Token)
}

// nodeAttrs places the node at the widget center. Graphviz y grows upward.
func nodeAttrs(w scene.WidgetEntry, selected int, height, scale float64) []string {
	cx := (float64(w.Rect.X) + float64(w.Rect.Width)/2) * scale
	cy := (height - float64(w.Rect.Y) - float64(w.Rect.Height)/2) * scale

	attrs := []string{
		fmt.Sprintf("label=%q", nodeLabel(w)),
		fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(cx), fmtFloat(cy)),
		"width=" + fmtFloat(float64(w.Rect.Width)*scale/72),
		"height=" + fmtFloat(float64(w.Rect.Height)*scale/72),
	}
	switch {
	case w.Token == selected:
		attrs = append(attrs, "fillcolor=\"#ffd866\"", "penwidth=2")
	case !w.Active:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=gray40")
	}
	return attrs
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders DOT source to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg header with one whose viewBox
// starts at the origin, so the image scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
