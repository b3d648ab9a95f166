// Package render turns laid-out menus into pictures.
//
// # Overview
//
// A [Frame] captures a manager's container, selection and widget views at
// one moment. [Boxes] resolves it into drawing values that every renderer
// shares:
//
//   - [wireframe]: SVG and PNG images of the widget rectangles
//   - [preview]: a character grid for the terminal, styled with lipgloss
//   - [navgraph]: the directional navigation graph through Graphviz
//
// # Usage
//
//	f := render.FrameOf(m)
//	svg := wireframe.RenderSVG(f)
//	fmt.Print(preview.Render(f, preview.Options{}))
//
// Widgets implementing [Styled] (as [widget.Basic] does) are drawn with
// their own color, corner rounding and visibility; others get a neutral
// outline.
//
// [wireframe]: github.com/matzehuels/menulayout/pkg/render/wireframe
// [preview]: github.com/matzehuels/menulayout/pkg/render/preview
// [navgraph]: github.com/matzehuels/menulayout/pkg/render/navgraph
package render
