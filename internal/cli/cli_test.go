package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/pipeline"
	"github.com/matzehuels/menulayout/pkg/render/preview"
	"github.com/matzehuels/menulayout/pkg/scene"
	"github.com/matzehuels/menulayout/pkg/store"
)

const testScene = `
selected = 2

[container]
width = 100
height = 100
anchor = "center"

[[widget]]
token = 1
width = 40
height = 10
text = "Play"
break_after = true

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
active = false
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))
	return path
}

func testCLI() *CLI {
	var buf bytes.Buffer
	return New(&buf, log.InfoLevel)
}

func TestParseFormats(t *testing.T) {
	assert.Equal(t, []string{"json"}, parseFormats("", "json"))
	assert.Equal(t, []string{"svg", "png"}, parseFormats("svg, png", "json"))
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"json":      "menu.layout.json",
		"wireframe": "menu.wireframe.svg",
		"png":       "menu.png",
		"dot":       "menu.dot",
	}
	for format, want := range tests {
		assert.Equal(t, want, outputPath("menu", format), format)
	}
}

func TestTrimLayoutSuffix(t *testing.T) {
	assert.Equal(t, "out/menu", trimLayoutSuffix("out/menu.layout.json"))
	assert.Equal(t, "menu", trimLayoutSuffix("menu.json"))
	assert.Equal(t, "menu", basePath("menu.yaml"))
}

func TestSceneFlagsOptions(t *testing.T) {
	path := writeScene(t)

	opts, err := sceneFlags{width: 400, anchor: "top"}.options(path)
	require.NoError(t, err)
	assert.Equal(t, scene.FormatTOML, opts.SourceFormat)
	assert.Equal(t, 400, opts.Width)
	assert.Equal(t, "top", opts.Anchor)
	assert.NotEmpty(t, opts.Source)

	_, err = sceneFlags{}.options(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestBuildScene(t *testing.T) {
	c := testCLI()
	m, err := c.buildScene(writeScene(t), sceneFlags{})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, m.Selected())
	assert.Equal(t, 1, m.Neighbor(2, nav.Up))
}

func TestRunLayoutWritesDocument(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := testCLI()
	out := filepath.Join(t.TempDir(), "menu.layout.json")

	require.NoError(t, c.runLayout(context.Background(), writeScene(t), sceneFlags{}, out, false, false))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc scene.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Widgets, 3)
	assert.Equal(t, 2, doc.Selected)
}

func TestVisualizeRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := testCLI()
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "menu.layout.json")
	require.NoError(t, c.runLayout(context.Background(), writeScene(t), sceneFlags{}, layoutPath, true, false))

	src, err := sceneFromDocument(layoutPath)
	require.NoError(t, err)
	sc, err := scene.ParseFormat(src, scene.FormatTOML)
	require.NoError(t, err)
	assert.Len(t, sc.Widgets, 3)
}

func TestWidgetTable(t *testing.T) {
	m, err := testCLI().buildScene(writeScene(t), sceneFlags{})
	require.NoError(t, err)

	out := widgetTable(scene.Export(m))
	for _, want := range []string{"Token", "Play", "Options", "Quit"} {
		assert.Contains(t, out, want)
	}
}

func TestPreviewModelKeys(t *testing.T) {
	m, err := testCLI().buildScene(writeScene(t), sceneFlags{})
	require.NoError(t, err)

	var model tea.Model = newPreviewModel(m, "menu", preview.Options{Cols: 40, Rows: 20})

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Selected())

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, m.Selected())

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm := model.(previewModel)
	assert.Equal(t, 2, pm.activated)
	assert.Contains(t, pm.View(), "activated 2")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPreviewModelMouse(t *testing.T) {
	m, err := testCLI().buildScene(writeScene(t), sceneFlags{})
	require.NoError(t, err)

	var model tea.Model = newPreviewModel(m, "menu", preview.Options{})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 24})
	pm := model.(previewModel)
	assert.Equal(t, 40, pm.opts.Cols)
	assert.Equal(t, 20, pm.opts.Rows)

	// Cell (20, 8) maps to pixel (51, 42), inside "Play".
	model, _ = model.Update(tea.MouseMsg{X: 20, Y: 8 + previewHeader, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, manager.None, model.(previewModel).activated)

	model, _ = model.Update(tea.MouseMsg{X: 20, Y: 8 + previewHeader, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, model.(previewModel).activated)

	// Rows above the grid are ignored.
	_, _ = model.Update(tea.MouseMsg{X: 0, Y: 0})
	assert.Equal(t, 1, m.Selected())
	assert.True(t, strings.Contains(model.View(), "selected"))
}

func TestServeBackends(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := testCLI()

	st, runner, err := c.serveBackends(context.Background(), serveOpts{noCache: true})
	require.NoError(t, err)
	assert.IsType(t, &store.Memory{}, st)
	require.NoError(t, runner.Close())
	require.NoError(t, st.Close())

	dir := t.TempDir()
	st, runner, err = c.serveBackends(context.Background(), serveOpts{storeDir: dir})
	require.NoError(t, err)
	fs, ok := st.(*store.FileStore)
	require.True(t, ok)
	assert.Equal(t, dir, fs.Path())
	require.NoError(t, runner.Close())
}

func TestCompletions(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()

	layoutCmd, _, err := root.Find([]string{"layout"})
	require.NoError(t, err)
	require.NotNil(t, layoutCmd.ValidArgsFunction)
	exts, directive := layoutCmd.ValidArgsFunction(layoutCmd, nil, "")
	assert.Equal(t, []string{"toml", "yaml", "yml"}, exts)
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)

	navCmd, _, err := root.Find([]string{"nav"})
	require.NoError(t, err)
	dirs, _ := navCmd.ValidArgsFunction(navCmd, []string{"menu.toml", "1"}, "")
	assert.Equal(t, []string{"left", "right", "up", "down"}, dirs)
	none, _ := navCmd.ValidArgsFunction(navCmd, []string{"menu.toml"}, "")
	assert.Empty(t, none)

	anchor, ok := layoutCmd.GetFlagCompletionFunc("anchor")
	require.True(t, ok)
	areas, _ := anchor(layoutCmd, nil, "")
	assert.Contains(t, areas, "center")
	assert.Contains(t, areas, "bottom-right")

	renderCmd, _, err := root.Find([]string{"render"})
	require.NoError(t, err)
	_, ok = renderCmd.GetFlagCompletionFunc("format")
	assert.True(t, ok)

	serveCmd, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Nil(t, serveCmd.ValidArgsFunction)
}

func TestCompleteFormats(t *testing.T) {
	all, directive := completeFormats(nil, nil, "")
	assert.Equal(t, pipeline.ValidFormats, all)
	assert.NotZero(t, directive&cobra.ShellCompDirectiveNoSpace)

	rest, _ := completeFormats(nil, nil, "png,sv")
	assert.NotContains(t, rest, "png,png")
	assert.Contains(t, rest, "png,svg")
	for _, f := range rest {
		assert.True(t, strings.HasPrefix(f, "png,"), f)
	}
}
