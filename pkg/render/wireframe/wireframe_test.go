package wireframe

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/menulayout/pkg/errors"
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/render"
	"github.com/matzehuels/menulayout/pkg/widget"
)

func testFrame(t *testing.T) render.Frame {
	t.Helper()
	m, err := manager.New(manager.WithContainer(100, 50))
	if err != nil {
		t.Fatal(err)
	}

	st := widget.DefaultState()
	st.Active = true
	st.ShowRect = true
	st.ShowText = true
	st.RectColor = widget.Color{R: 1, A: 1}
	st.Text = "A&B"
	if err := m.Add(1, 40, 40, st); err != nil {
		t.Fatal(err)
	}

	st.Active = false
	st.Text = "Off"
	st.RoundCorners = layout.AreaAll
	if err := m.Add(2, 40, 40, st); err != nil {
		t.Fatal(err)
	}
	if err := m.Layout(layout.AreaCenter); err != nil {
		t.Fatal(err)
	}
	m.SetSelected(1)
	return render.FrameOf(m)
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testFrame(t)))

	wants := []string{
		`viewBox="0 0 100 50"`,
		`id="widget-1"`,
		`id="widget-2"`,
		`stroke="#ffd966" stroke-width="3"`,
		`stroke-dasharray="4 3"`,
		">A&amp;B</text>",
		">Off</text>",
	}
	for _, want := range wants {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q\n%s", want, svg)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not closed")
	}
}

func TestRenderSVGSkipsUnlaidWidgets(t *testing.T) {
	m, _ := manager.New()
	_ = m.Add(1, 10, 10, widget.DefaultState())
	svg := string(RenderSVG(render.FrameOf(m)))
	if strings.Contains(svg, "widget-1") {
		t.Errorf("widget without geometry drawn:\n%s", svg)
	}
}

func TestPathData(t *testing.T) {
	tests := []struct {
		name    string
		corners layout.Area
		want    string
	}{
		{"square", layout.AreaNone, "M0 0 H20 V10 H0 V0 Z"},
		{"top rounded", layout.AreaTop, "M5 0 H15 A5 5 0 0 1 20 5 V10 H0 V5 A5 5 0 0 1 5 0 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := render.Box{Rect: layout.NewRect(0, 0, 20, 10), Corners: tt.corners}
			if got := pathData(b); got != tt.want {
				t.Errorf("pathData() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderPNG(t *testing.T) {
	f := testFrame(t)
	data, err := RenderPNG(f, WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("image size = %dx%d, want 200x100", b.Dx(), b.Dy())
	}

	// Widget 1 sits at (10, 15) 40x20 and is filled red; sample away from
	// its label and outline.
	r, g, b, _ := img.At(2*14, 2*19).RGBA()
	if r>>8 < 200 || g>>8 > 60 || b>>8 > 60 {
		t.Errorf("pixel inside widget 1 = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}

	// The background outside all widgets keeps the canvas color.
	r, g, b, _ = img.At(2, 2).RGBA()
	if !near(r>>8, 0x1e) || !near(g>>8, 0x1e) || !near(b>>8, 0x2e) {
		t.Errorf("background pixel = (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGRejectsHugeImages(t *testing.T) {
	f := testFrame(t)
	for _, scale := range []float64{1e8, 1e4} {
		if _, err := RenderPNG(f, WithScale(scale)); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("RenderPNG(scale %g) error = %v, want INVALID_INPUT", scale, err)
		}
	}
}

func near(got, want uint32) bool {
	return got+1 >= want && got <= want+1
}
