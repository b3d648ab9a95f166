package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/menulayout/pkg/errors"
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/widget"
)

// Format is a scene file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf guesses the format of path from its extension. Anything that is
// not .yaml or .yml is read as TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Scene is a decoded scene file.
type Scene struct {
	Selected  *int      `toml:"selected" yaml:"selected"`
	Container Container `toml:"container" yaml:"container"`
	Defaults  Features  `toml:"defaults" yaml:"defaults"`
	Widgets   []Widget  `toml:"widget" yaml:"widget"`
}

// Container is the [container] table.
type Container struct {
	Width  int         `toml:"width" yaml:"width"`
	Height int         `toml:"height" yaml:"height"`
	Anchor layout.Area `toml:"anchor" yaml:"anchor"`
}

// Size returns the container size, substituting the manager defaults for
// unset dimensions.
func (c Container) Size() (width, height int) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = manager.DefaultWidth
	}
	if height == 0 {
		height = manager.DefaultHeight
	}
	return width, height
}

// Features holds optional switch-feature values. Nil fields leave the
// inherited value alone.
type Features struct {
	Active       *bool            `toml:"active" yaml:"active"`
	ShowRect     *bool            `toml:"show_rect" yaml:"show_rect"`
	RectColor    *widget.Color    `toml:"rect_color" yaml:"rect_color"`
	RoundCorners *layout.Area     `toml:"round_corners" yaml:"round_corners"`
	ShowTexture  *bool            `toml:"show_texture" yaml:"show_texture"`
	Texture      *int             `toml:"texture" yaml:"texture"`
	ShowText     *bool            `toml:"show_text" yaml:"show_text"`
	Text         *string          `toml:"text" yaml:"text"`
	TextSize     *widget.FontSize `toml:"text_size" yaml:"text_size"`
	TextXAlign   *widget.Align    `toml:"text_x_align" yaml:"text_x_align"`
	TextYAlign   *widget.Align    `toml:"text_y_align" yaml:"text_y_align"`
	Scroll       *bool            `toml:"scroll" yaml:"scroll"`
	ScrollPos    *int             `toml:"scroll_pos" yaml:"scroll_pos"`
	ScrollSpeed  *int             `toml:"scroll_speed" yaml:"scroll_speed"`
}

// Widget is one [[widget]] entry.
type Widget struct {
	Token      *int `toml:"token" yaml:"token"`
	Width      int  `toml:"width" yaml:"width"`
	Height     int  `toml:"height" yaml:"height"`
	BreakAfter bool `toml:"break_after" yaml:"break_after"`

	Features `yaml:",inline"`
}

// apply overlays the set fields of f onto st.
func (f Features) apply(st *widget.State) {
	if f.Active != nil {
		st.Active = *f.Active
	}
	if f.ShowRect != nil {
		st.ShowRect = *f.ShowRect
	}
	if f.RectColor != nil {
		st.RectColor = *f.RectColor
	}
	if f.RoundCorners != nil {
		st.RoundCorners = *f.RoundCorners
	}
	if f.ShowTexture != nil {
		st.ShowTexture = *f.ShowTexture
	}
	if f.Texture != nil {
		st.Texture = *f.Texture
	}
	if f.ShowText != nil {
		st.ShowText = *f.ShowText
	}
	if f.Text != nil {
		st.Text = *f.Text
	}
	if f.TextSize != nil {
		st.TextSize = *f.TextSize
	}
	if f.TextXAlign != nil {
		st.TextXAlign = *f.TextXAlign
	}
	if f.TextYAlign != nil {
		st.TextYAlign = *f.TextYAlign
	}
	if f.Scroll != nil {
		st.EnableScroll = *f.Scroll
	}
	if f.ScrollPos != nil {
		st.ScrollPos = *f.ScrollPos
	}
	if f.ScrollSpeed != nil {
		st.ScrollSpeed = *f.ScrollSpeed
	}
}

// Parse decodes and validates a TOML scene.
func Parse(data []byte) (*Scene, error) {
	return ParseFormat(data, FormatTOML)
}

// ParseFormat decodes and validates a scene in the given format.
func ParseFormat(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown key %q", keys[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported scene format %q", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scene file at path, choosing the format from
// its extension.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read %s", path)
	}
	s, err := ParseFormat(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return s, nil
}

// Validate checks the scene for problems that would make Build fail.
func (s *Scene) Validate() error {
	if s.Container.Width != 0 || s.Container.Height != 0 {
		if err := errors.ValidateContainer(s.Container.Size()); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "container")
		}
	}
	if len(s.Widgets) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "scene has no widgets")
	}

	seen := make(map[int]bool, len(s.Widgets))
	for i, w := range s.Widgets {
		if w.Token == nil {
			return errors.New(errors.ErrCodeInvalidScene, "widget %d: missing token", i)
		}
		tok := *w.Token
		if tok == manager.None {
			return errors.New(errors.ErrCodeInvalidScene, "widget %d: token %d is reserved", i, tok)
		}
		if seen[tok] {
			return errors.New(errors.ErrCodeInvalidScene, "widget %d: duplicate token %d", i, tok)
		}
		seen[tok] = true
		if err := errors.ValidatePercent("width", w.Width); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "widget %d", tok)
		}
		if err := errors.ValidatePercent("height", w.Height); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "widget %d", tok)
		}
	}

	if s.Selected != nil && *s.Selected != manager.None && !seen[*s.Selected] {
		return errors.New(errors.ErrCodeInvalidScene, "selected token %d is not a widget", *s.Selected)
	}
	return nil
}

// Tokens returns the widget tokens in file order.
func (s *Scene) Tokens() []int {
	tokens := make([]int, 0, len(s.Widgets))
	for _, w := range s.Widgets {
		if w.Token != nil {
			tokens = append(tokens, *w.Token)
		}
	}
	return tokens
}

// State returns the initial widget state for w: the scene base state,
// then the scene defaults, then the widget's own keys.
func (s *Scene) State(w Widget) widget.State {
	st := widget.DefaultState()
	st.Active = true
	st.ShowRect = true
	st.ShowText = true
	s.Defaults.apply(&st)
	w.Features.apply(&st)
	return st
}

// Build registers every widget with a new manager, lays it out against
// the scene anchor and applies the initial selection. opts are applied
// after the scene container, so they may override it.
func (s *Scene) Build(opts ...manager.Option) (*manager.Manager, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w, h := s.Container.Size()
	m, err := manager.New(append([]manager.Option{manager.WithContainer(w, h)}, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, wd := range s.Widgets {
		if err := m.Add(*wd.Token, wd.Width, wd.Height, s.State(wd)); err != nil {
			return nil, err
		}
		if wd.BreakAfter {
			if err := m.BreakLine(); err != nil {
				return nil, err
			}
		}
	}

	if err := m.Layout(s.Container.Anchor); err != nil {
		return nil, err
	}
	if s.Selected != nil {
		m.SetSelected(*s.Selected)
	}
	return m, nil
}
