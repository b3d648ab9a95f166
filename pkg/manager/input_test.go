package manager

import (
	"testing"

	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/widget"
)

// gridManager lays out a 2x2 grid:
//
//	1 2
//	3 4
func gridManager(t *testing.T) *Manager {
	t.Helper()
	m := newTestManager(t)
	mustAdd(t, m, 1, 20, 10)
	mustAdd(t, m, 2, 20, 10)
	_ = m.BreakLine()
	mustAdd(t, m, 3, 20, 10)
	mustAdd(t, m, 4, 20, 10)
	mustLayout(t, m, layout.AreaCenter)
	return m
}

func TestNeighbors(t *testing.T) {
	m := gridManager(t)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"right of 1", m.RightOf(1), 2},
		{"left of 2", m.LeftOf(2), 1},
		{"below 1", m.Below(1), 3},
		{"above 4", m.Above(4), 2},
		{"left of 1", m.LeftOf(1), None},
		{"above 1", m.Above(1), None},
		{"unknown", m.RightOf(99), None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestDeactivateSkipsWidget(t *testing.T) {
	m := gridManager(t)
	m.Deactivate(3)

	if got := m.Below(1); got != 4 {
		t.Errorf("Below(1) = %d, want 4", got)
	}
	r, _ := m.Rect(3)
	if got := m.HitTest(r.X, r.Y); got != None {
		t.Errorf("HitTest on inactive widget = %d, want None", got)
	}

	m.Activate(3)
	if got := m.Below(1); got != 3 {
		t.Errorf("Below(1) after Activate = %d, want 3", got)
	}
}

func TestHitTestEdges(t *testing.T) {
	m := gridManager(t)
	r, _ := m.Rect(1)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", r.X, r.Y, 1},
		{"inside", r.X + 5, r.Y + 5, 1},
		{"right edge is exclusive", r.Right(), r.Y, 2},
		{"bottom edge is exclusive", r.X, r.Bottom(), 3},
		{"outside block", 0, 0, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHandleKeyboard(t *testing.T) {
	m := gridManager(t)

	steps := []struct {
		key          Key
		wantReturn   int
		wantSelected int
	}{
		{KeyRight, None, 1}, // nothing selected: first active widget
		{KeyRight, None, 2},
		{KeyRight, None, 2}, // no neighbor: selection kept
		{KeyDown, None, 4},
		{KeyLeft, None, 3},
		{KeyUp, None, 1},
		{KeyEnter, 1, 1},
		{KeySpace, 1, 1},
		{KeyNone, None, 1},
	}

	for i, s := range steps {
		if got := m.HandleKeyboard(s.key); got != s.wantReturn {
			t.Errorf("step %d (%v): returned %d, want %d", i, s.key, got, s.wantReturn)
		}
		if m.Selected() != s.wantSelected {
			t.Fatalf("step %d (%v): Selected() = %d, want %d", i, s.key, m.Selected(), s.wantSelected)
		}
	}
	if !m.Widget(1).(*widget.Basic).Pulsing() {
		t.Error("activated widget is not pulsing")
	}
}

func TestHandleKeyboardSkipsInactiveFirst(t *testing.T) {
	m := gridManager(t)
	m.Deactivate(1)

	m.HandleKeyboard(KeyDown)
	if m.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", m.Selected())
	}
}

func TestActivateInactiveSelection(t *testing.T) {
	m := gridManager(t)
	m.SetSelected(2)
	m.Deactivate(2)

	if got := m.HandleKeyboard(KeyEnter); got != None {
		t.Errorf("HandleKeyboard(enter) = %d, want None", got)
	}
	if m.Selected() != 2 {
		t.Errorf("Deactivate cleared the selection")
	}
}

func TestInputBeforeLayout(t *testing.T) {
	m := newTestManager(t)
	mustAdd(t, m, 1, 10, 10)

	m.HandleKeyboard(KeyRight)
	if m.Selected() != None {
		t.Errorf("Selected() = %d, want None", m.Selected())
	}
	if got := m.HandleMouse(5, 5); got != None {
		t.Errorf("HandleMouse() = %d, want None", got)
	}
	m.SetSelected(1)
	if got := m.HandleKeyboard(KeyEnter); got != None {
		t.Errorf("HandleKeyboard(enter) before layout = %d, want None", got)
	}
}

func TestHandleMouse(t *testing.T) {
	m := gridManager(t)
	r, _ := m.Rect(4)

	if got := m.HandleMouse(r.X+1, r.Y+1); got != 4 {
		t.Fatalf("HandleMouse() = %d, want 4", got)
	}
	if m.Selected() != 4 {
		t.Errorf("Selected() = %d, want 4", m.Selected())
	}

	if got := m.HandleMouse(0, 0); got != None {
		t.Errorf("HandleMouse(miss) = %d, want None", got)
	}
	if m.Selected() != 4 {
		t.Errorf("a miss changed the selection to %d", m.Selected())
	}
}

func TestHandleJoystick(t *testing.T) {
	m := gridManager(t)
	m.SetSelected(1)

	tests := []struct {
		name         string
		axis, dir    int
		value        int
		wantSelected int
	}{
		{"inside deadzone", AxisX, 1, JoystickDeadzone - 1, 1},
		{"zero direction", AxisX, 0, 30000, 1},
		{"push right", AxisX, 1, 30000, 2},
		{"push down with negative value", AxisY, 1, -30000, 4},
		{"push left", AxisX, -1, JoystickDeadzone, 3},
		{"push up", AxisY, -1, 20000, 1},
		{"unknown axis", 7, 1, 30000, 1},
	}

	for _, tt := range tests {
		if got := m.HandleJoystick(tt.axis, tt.dir, tt.value); got != None {
			t.Errorf("%s: returned %d, want None", tt.name, got)
		}
		if m.Selected() != tt.wantSelected {
			t.Fatalf("%s: Selected() = %d, want %d", tt.name, m.Selected(), tt.wantSelected)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"left", KeyLeft, false},
		{" ENTER ", KeyEnter, false},
		{"space", KeySpace, false},
		{"escape", KeyNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in && got.String() != "enter" {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}
