package render

import (
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/widget"
)

// Styled is implemented by widgets that expose their visual state.
type Styled interface {
	RectShown() bool
	Color() widget.Color
	RoundCorners() layout.Area
}

// Frame is a laid-out menu ready to draw.
type Frame struct {
	Container layout.Rect
	Selected  int
	Widgets   []manager.View
}

// FrameOf captures the current geometry of m.
func FrameOf(m *manager.Manager) Frame {
	return Frame{
		Container: m.Container(),
		Selected:  m.Selected(),
		Widgets:   m.Snapshot(),
	}
}

// Box is one widget resolved to drawing values. Rect is relative to the
// container origin.
type Box struct {
	Token    int
	Label    string
	Rect     layout.Rect
	Fill     widget.Color
	Filled   bool
	Corners  layout.Area
	Active   bool
	Selected bool
}

// Palette shared by the renderers.
var (
	Background    = widget.Color{R: 0x1e / 255.0, G: 0x1e / 255.0, B: 0x2e / 255.0, A: 1}
	Outline       = widget.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}
	SelectedColor = widget.Color{R: 1, G: 0.85, B: 0.4, A: 1}
)

// Boxes returns the drawable widgets of f in registration order. Widgets
// without geometry are skipped.
func Boxes(f Frame) []Box {
	boxes := make([]Box, 0, len(f.Widgets))
	for _, v := range f.Widgets {
		if v.Rect.IsEmpty() {
			continue
		}
		b := Box{
			Token:    v.Token,
			Rect:     v.Rect,
			Corners:  layout.AreaNone,
			Active:   v.Active,
			Selected: v.Token == f.Selected,
		}
		b.Rect.X -= f.Container.X
		b.Rect.Y -= f.Container.Y
		if s, ok := v.Widget.(Styled); ok {
			b.Filled = s.RectShown()
			b.Fill = s.Color()
			b.Corners = s.RoundCorners()
		}
		if l, ok := v.Widget.(widget.Labeler); ok {
			b.Label = l.Label()
		}
		boxes = append(boxes, b)
	}
	return boxes
}

// Corners reports which corners an area rounds, clockwise from top-left.
func Corners(a layout.Area) (tl, tr, br, bl bool) {
	switch a {
	case layout.AreaAll:
		return true, true, true, true
	case layout.AreaTop:
		return true, true, false, false
	case layout.AreaBottom:
		return false, false, true, true
	case layout.AreaLeft:
		return true, false, false, true
	case layout.AreaRight:
		return false, true, true, false
	case layout.AreaTopLeft:
		return true, false, false, false
	case layout.AreaTopRight:
		return false, true, false, false
	case layout.AreaBottomRight:
		return false, false, true, false
	case layout.AreaBottomLeft:
		return false, false, false, true
	}
	return false, false, false, false
}
