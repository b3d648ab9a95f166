package manager

import (
	"fmt"
	"strings"

	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/observability"
)

// Key is a device-independent key code.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
)

var keyNames = map[string]Key{
	"left":  KeyLeft,
	"right": KeyRight,
	"up":    KeyUp,
	"down":  KeyDown,
	"enter": KeyEnter,
	"space": KeySpace,
}

// ParseKey converts a key name such as "left" or "enter" into a Key.
func ParseKey(s string) (Key, error) {
	if k, ok := keyNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("unknown key %q", s)
}

func (k Key) String() string {
	for name, v := range keyNames {
		if v == k {
			return name
		}
	}
	return "none"
}

// Joystick axes.
const (
	AxisX = 0
	AxisY = 1
)

// JoystickDeadzone is the smallest axis magnitude treated as a push.
const JoystickDeadzone = 8000

// HandleMouse selects the active widget under the pointer and returns its
// token. When no widget is hit, the selection is kept and [None] is
// returned.
func (m *Manager) HandleMouse(x, y int) int {
	token := m.HitTest(x, y)
	if token != None {
		m.SetSelected(token)
	}
	return token
}

// HandleKeyboard translates a key press.
//
// Arrow keys move the selection to the nearest active widget in that
// direction, or to the first active widget when nothing is selected, and
// return [None]. Enter and space activate the selection: the selected
// widget pulses and its token is returned, provided it is active. Any
// other key returns [None].
func (m *Manager) HandleKeyboard(key Key) int {
	switch key {
	case KeyLeft:
		m.move(nav.Left)
	case KeyRight:
		m.move(nav.Right)
	case KeyUp:
		m.move(nav.Up)
	case KeyDown:
		m.move(nav.Down)
	case KeyEnter, KeySpace:
		return m.activate()
	}
	return None
}

// HandleJoystick translates a joystick axis event. axis is [AxisX] or
// [AxisY], the sign of dir gives the direction along it and value is the
// axis magnitude; pushes weaker than [JoystickDeadzone] are ignored. The
// selection moves as with the arrow keys and [None] is returned.
func (m *Manager) HandleJoystick(axis, dir, value int) int {
	if value < 0 {
		value = -value
	}
	if value < JoystickDeadzone || dir == 0 {
		return None
	}

	switch axis {
	case AxisX:
		if dir < 0 {
			m.move(nav.Left)
		} else {
			m.move(nav.Right)
		}
	case AxisY:
		if dir < 0 {
			m.move(nav.Up)
		} else {
			m.move(nav.Down)
		}
	}
	return None
}

// move shifts the selection one step in dir.
func (m *Manager) move(dir nav.Direction) {
	if m.state != StateLaidOut {
		return
	}

	from := m.selected
	var to int
	if from == None {
		to = m.firstActive()
	} else {
		to = m.navIndex().Neighbor(from, dir)
	}

	m.logger.Debug("navigate", "direction", dir, "from", from, "to", to)
	observability.Layout().OnNavigate(dir.String(), from, to)

	if to != None {
		m.SetSelected(to)
	}
}

// activate pulses and returns the selected widget when it is active.
func (m *Manager) activate() int {
	r := m.lookup(m.selected, "")
	if r == nil || !r.active || m.state != StateLaidOut {
		return None
	}
	r.widget.Pulse()
	return r.token
}

func (m *Manager) firstActive() int {
	for _, r := range m.records {
		if r.active {
			return r.token
		}
	}
	return None
}
