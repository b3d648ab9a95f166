package manager

import (
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/widget"
)

// apply runs fn on the widget registered under token, if any.
func (m *Manager) apply(token int, op string, fn func(w widget.Widget)) {
	if r := m.lookup(token, op); r != nil {
		fn(r.widget)
	}
}

// Active reports whether token is registered and interactive.
func (m *Manager) Active(token int) bool {
	r := m.lookup(token, "")
	return r != nil && r.active
}

// Activate makes a widget interactive: it can be navigated to and hit.
func (m *Manager) Activate(token int) { m.setActive(token, true, "activate") }

// Deactivate makes a widget non-interactive. A selected widget stays
// selected but can no longer be activated.
func (m *Manager) Deactivate(token int) { m.setActive(token, false, "deactivate") }

func (m *Manager) setActive(token int, active bool, op string) {
	r := m.lookup(token, op)
	if r == nil || r.active == active {
		return
	}
	r.active = active
	m.index = nil
}

// SetRectColor sets the rectangle color.
func (m *Manager) SetRectColor(token int, c widget.Color) {
	m.apply(token, "set rect color", func(w widget.Widget) { w.SetRectColor(c) })
}

// SetRoundCorners selects which corners of the rectangle are rounded.
func (m *Manager) SetRoundCorners(token int, corners layout.Area) {
	m.apply(token, "set round corners", func(w widget.Widget) { w.SetRoundCorners(corners) })
}

// ShowRect shows the rectangle.
func (m *Manager) ShowRect(token int) {
	m.apply(token, "show rect", func(w widget.Widget) { w.SetRectShown(true) })
}

// HideRect hides the rectangle.
func (m *Manager) HideRect(token int) {
	m.apply(token, "hide rect", func(w widget.Widget) { w.SetRectShown(false) })
}

// SetTexture sets the texture id.
func (m *Manager) SetTexture(token, texture int) {
	m.apply(token, "set texture", func(w widget.Widget) { w.SetTexture(texture) })
}

// ShowTexture shows the texture.
func (m *Manager) ShowTexture(token int) {
	m.apply(token, "show texture", func(w widget.Widget) { w.SetTextureShown(true) })
}

// HideTexture hides the texture.
func (m *Manager) HideTexture(token int) {
	m.apply(token, "hide texture", func(w widget.Widget) { w.SetTextureShown(false) })
}

// SetText sets the text content.
func (m *Manager) SetText(token int, text string) {
	m.apply(token, "set text", func(w widget.Widget) { w.SetText(text) })
}

// SetTextSize sets the text size.
func (m *Manager) SetTextSize(token int, size widget.FontSize) {
	m.apply(token, "set text size", func(w widget.Widget) { w.SetTextSize(size) })
}

// ShowText shows the text.
func (m *Manager) ShowText(token int) {
	m.apply(token, "show text", func(w widget.Widget) { w.SetTextShown(true) })
}

// HideText hides the text.
func (m *Manager) HideText(token int) {
	m.apply(token, "hide text", func(w widget.Widget) { w.SetTextShown(false) })
}

// SetTextXAlign sets horizontal text alignment, keeping the vertical one.
func (m *Manager) SetTextXAlign(token int, align widget.Align) {
	if r := m.lookup(token, "set text x alignment"); r != nil {
		r.textX = align
		r.widget.SetTextAlign(r.textX, r.textY)
	}
}

// SetTextYAlign sets vertical text alignment, keeping the horizontal one.
func (m *Manager) SetTextYAlign(token int, align widget.Align) {
	if r := m.lookup(token, "set text y alignment"); r != nil {
		r.textY = align
		r.widget.SetTextAlign(r.textX, r.textY)
	}
}

// EnableScroll enables text scrolling.
func (m *Manager) EnableScroll(token int) {
	m.apply(token, "enable scroll", func(w widget.Widget) { w.SetScrollEnabled(true) })
}

// DisableScroll disables text scrolling.
func (m *Manager) DisableScroll(token int) {
	m.apply(token, "disable scroll", func(w widget.Widget) { w.SetScrollEnabled(false) })
}

// SetScrollPos sets the scroll position.
func (m *Manager) SetScrollPos(token, pos int) {
	m.apply(token, "set scroll pos", func(w widget.Widget) { w.SetScrollPos(pos) })
}

// SetScrollSpeed sets the scroll speed in pixels per second.
func (m *Manager) SetScrollSpeed(token, speed int) {
	m.apply(token, "set scroll speed", func(w widget.Widget) { w.SetScrollSpeed(speed) })
}

// Pulse starts the pulse animation of a widget.
func (m *Manager) Pulse(token int) {
	m.apply(token, "pulse", func(w widget.Widget) { w.Pulse() })
}

// Lighten brightens a widget's rectangle color by one step.
func (m *Manager) Lighten(token int) {
	m.apply(token, "lighten", func(w widget.Widget) { w.Lighten() })
}

// Darken dims a widget's rectangle color by one step.
func (m *Manager) Darken(token int) {
	m.apply(token, "darken", func(w widget.Widget) { w.Darken() })
}
