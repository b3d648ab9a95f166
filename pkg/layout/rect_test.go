package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.X != 5 || r.Y != 10 || r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect(5, 10, 20, 15) = %+v", r)
	}
}

func TestRectRightBottom(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		right  int
		bottom int
	}{
		{
			name:   "standard rect",
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		{
			name:   "negative position",
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		{
			name:   "zero size",
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		cx   int
		cy   int
	}{
		{
			name: "from origin",
			rect: NewRect(0, 0, 100, 50),
			cx:   100,
			cy:   50,
		},
		{
			name: "odd size",
			rect: NewRect(10, 20, 5, 3),
			cx:   25,
			cy:   43,
		},
		{
			name: "zero width",
			rect: NewRect(50, 50, 0, 0),
			cx:   100,
			cy:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.CenterX(); got != tt.cx {
				t.Errorf("CenterX() = %d, want %d", got, tt.cx)
			}
			if got := tt.rect.CenterY(); got != tt.cy {
				t.Errorf("CenterY() = %d, want %d", got, tt.cy)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "top-left corner", x: 10, y: 20, want: true},
		{name: "inside", x: 25, y: 40, want: true},
		{name: "last pixel", x: 39, y: 59, want: true},
		{name: "right edge", x: 40, y: 30, want: false},
		{name: "bottom edge", x: 20, y: 60, want: false},
		{name: "left of", x: 9, y: 30, want: false},
		{name: "above", x: 20, y: 19, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	if NewRect(0, 0, 10, 10).IsEmpty() {
		t.Error("10x10 rect reported empty")
	}
	if !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Error("0x10 rect reported non-empty")
	}
	if !NewRect(0, 0, 10, -1).IsEmpty() {
		t.Error("10x-1 rect reported non-empty")
	}
}
