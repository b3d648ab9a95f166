// Package widget defines the renderable widget contract used by the
// widget manager.
//
// The manager never draws anything. It computes geometry and forwards
// switch-feature changes (rectangle, texture, text, scroll) through the
// [Widget] interface; a rendering backend implements that interface.
// [Basic] is an in-memory implementation that records every value it
// receives, used by the command-line tools, the HTTP service and tests.
package widget

import "github.com/matzehuels/menulayout/pkg/layout"

// Widget is the capability the manager requires from a renderable widget.
type Widget interface {
	// SetRect receives the rectangle computed by a layout pass.
	SetRect(r layout.Rect)

	SetRectShown(show bool)
	SetRectColor(c Color)
	SetRoundCorners(corners layout.Area)

	SetTextureShown(show bool)
	SetTexture(id int)

	SetTextShown(show bool)
	SetText(text string)
	SetTextSize(size FontSize)
	SetTextAlign(x, y Align)

	SetScrollEnabled(enable bool)
	SetScrollPos(pos int)
	SetScrollSpeed(speed int)

	// Pulse starts a short highlight animation driven by Update.
	Pulse()
	// Lighten and Darken step the rectangle color brightness.
	Lighten()
	Darken()

	// Update advances time-based features by delta seconds.
	Update(delta float64)
}

// Factory creates the widget for a newly registered token.
type Factory func(token int) Widget

// Labeler is implemented by widgets that can describe their content as a
// short string, used by text-mode previews.
type Labeler interface {
	Label() string
}
