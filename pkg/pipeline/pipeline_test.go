package pipeline

import (
	"bytes"
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/menulayout/pkg/cache"
	"github.com/matzehuels/menulayout/pkg/errors"
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/scene"
)

const menu = `
[container]
width = 100
height = 100

[defaults]
rect_color = "#3355aa"

[[widget]]
token = 1
width = 40
height = 10
text = "Play"

[[widget]]
token = 2
width = 40
height = 10
text = "Options"

[[widget]]
token = 3
width = 40
height = 10
text = "Quit"
`

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"wireframe", false},
		{"png", false},
		{"txt", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}

	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
	if !errors.Is(ValidateFormats([]string{"json", "gif"}), errors.ErrCodeInvalidInput) {
		t.Error("Invalid format should fail with INVALID_INPUT")
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Source: []byte(menu)}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.SourceFormat != scene.FormatTOML {
		t.Errorf("SourceFormat = %q", opts.SourceFormat)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != DefaultFormat {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Scale != DefaultScale || opts.Logger == nil {
		t.Errorf("Scale = %v, Logger = %v", opts.Scale, opts.Logger)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}

	bad := []Options{
		{},
		{Source: []byte(menu), SourceFormat: "xml"},
		{Source: []byte(menu), Width: -1},
		{Source: []byte(menu), Anchor: "middle"},
		{Source: []byte(menu), Formats: []string{"gif"}},
		{Source: []byte(menu), Width: errors.MaxContainerSide + 1},
		{Source: []byte(menu), Scale: -1},
		{Source: []byte(menu), Scale: MaxScale + 0.5},
		{Source: []byte(menu), Scale: 100000000},
	}
	for i, o := range bad {
		if err := o.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("case %d: error = %v, want INVALID_INPUT", i, err)
		}
	}
}

func TestValidateScale(t *testing.T) {
	for _, s := range []float64{0, 0.5, 1, MaxScale} {
		if err := ValidateScale(s); err != nil {
			t.Errorf("ValidateScale(%v) = %v, want nil", s, err)
		}
	}
	for _, s := range []float64{-1, MaxScale * 2, math.NaN(), math.Inf(1)} {
		if err := ValidateScale(s); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateScale(%v) = %v, want INVALID_INPUT", s, err)
		}
	}
}

func TestParseOverrides(t *testing.T) {
	sc, err := Parse(Options{Source: []byte(menu), Width: 200, Anchor: "top"})
	if err != nil {
		t.Fatal(err)
	}
	if sc.Container.Width != 200 || sc.Container.Height != 100 {
		t.Errorf("container = %dx%d, want 200x100", sc.Container.Width, sc.Container.Height)
	}
	if sc.Container.Anchor != layout.AreaTop {
		t.Errorf("anchor = %v, want top", sc.Container.Anchor)
	}

	if _, err := Parse(Options{Source: []byte("[[widget]]\nwidth = 10\n")}); !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("missing token: error = %v, want INVALID_SCENE", err)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Source:  []byte(menu),
		Formats: []string{FormatJSON, FormatDOT, FormatWireframe, FormatPNG, FormatText},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := res.Document.Lines; len(got) != 2 || len(got[0]) != 2 || got[1][0] != 3 {
		t.Errorf("Lines = %v, want [[1 2] [3]]", got)
	}
	if res.Stats.WidgetCount != 3 || res.Stats.LineCount != 2 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Manager == nil || res.LayoutHash == "" {
		t.Error("expected a manager and a layout hash")
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Errorf("NullCache reported hits: %+v", res.CacheInfo)
	}

	doc, err := scene.ReadJSON(bytes.NewReader(res.Artifacts[FormatJSON]))
	if err != nil || len(doc.Widgets) != 3 {
		t.Errorf("json artifact: %v, %d widgets", err, len(doc.Widgets))
	}
	if !strings.HasPrefix(string(res.Artifacts[FormatDOT]), "digraph") {
		t.Errorf("dot artifact: %q", res.Artifacts[FormatDOT])
	}
	if !strings.Contains(string(res.Artifacts[FormatWireframe]), `id="widget-3"`) {
		t.Error("wireframe artifact is missing widget 3")
	}
	if !bytes.HasPrefix(res.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
	if !strings.Contains(string(res.Artifacts[FormatText]), "Quit") {
		t.Error("text artifact is missing the Quit label")
	}
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	opts := Options{Source: []byte(menu), Formats: []string{FormatJSON, FormatDOT}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Fatalf("cold cache reported hits: %+v", first.CacheInfo)
	}
	if c.sets != 3 {
		t.Errorf("cache writes = %d, want 3 (layout + 2 artifacts)", c.sets)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("warm cache missed: %+v", second.CacheInfo)
	}
	if second.Manager != nil {
		t.Error("fully cached run should not build a manager")
	}
	if !bytes.Equal(first.Artifacts[FormatDOT], second.Artifacts[FormatDOT]) {
		t.Error("cached dot differs")
	}
	if first.LayoutHash != second.LayoutHash {
		t.Error("layout hash changed between runs")
	}

	// A wireframe needs live widgets even though the layout is cached.
	third, err := r.Execute(ctx, Options{Source: []byte(menu), Formats: []string{FormatWireframe}})
	if err != nil {
		t.Fatal(err)
	}
	if !third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Errorf("CacheInfo = %+v, want layout hit and render miss", third.CacheInfo)
	}
	if third.Manager == nil || len(third.Artifacts[FormatWireframe]) == 0 {
		t.Error("wireframe run should build a manager and render")
	}

	refreshed, err := r.Execute(ctx, Options{Source: []byte(menu), Formats: []string{FormatJSON}, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.LayoutHit || refreshed.CacheInfo.RenderHit {
		t.Errorf("Refresh reported hits: %+v", refreshed.CacheInfo)
	}
}

func TestExecuteColorChangesArtifactKey(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(newMemCache(), nil, nil)

	blue, err := r.Execute(ctx, Options{Source: []byte(menu), Formats: []string{FormatWireframe}})
	if err != nil {
		t.Fatal(err)
	}
	red := strings.Replace(menu, "#3355aa", "#aa3333", 1)
	other, err := r.Execute(ctx, Options{Source: []byte(red), Formats: []string{FormatWireframe}})
	if err != nil {
		t.Fatal(err)
	}
	if other.CacheInfo.RenderHit {
		t.Error("recolored scene reused a cached wireframe")
	}
	if blue.LayoutHash != other.LayoutHash {
		t.Error("recoloring should not change the layout document")
	}
	if bytes.Equal(blue.Artifacts[FormatWireframe], other.Artifacts[FormatWireframe]) {
		t.Error("wireframes should differ by fill color")
	}
}

func TestExecuteOverridesKeyLayout(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(newMemCache(), nil, nil)

	if _, err := r.Execute(ctx, Options{Source: []byte(menu)}); err != nil {
		t.Fatal(err)
	}
	wide, err := r.Execute(ctx, Options{Source: []byte(menu), Width: 400})
	if err != nil {
		t.Fatal(err)
	}
	if wide.CacheInfo.LayoutHit {
		t.Error("width override reused the cached layout")
	}
	if wide.Document.Container.Width != 400 {
		t.Errorf("container width = %d, want 400", wide.Document.Container.Width)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Source: []byte("[container\n")})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}
