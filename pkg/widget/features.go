package widget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/menulayout/pkg/layout"
)

// FontSize selects the text size of a widget.
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
)

var fontSizeNames = [...]string{FontSmall: "small", FontMedium: "medium", FontLarge: "large"}

func (s FontSize) String() string {
	if s < 0 || int(s) >= len(fontSizeNames) {
		return fmt.Sprintf("FontSize(%d)", int(s))
	}
	return fontSizeNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s FontSize) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *FontSize) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range fontSizeNames {
		if n == name {
			*s = FontSize(i)
			return nil
		}
	}
	return fmt.Errorf("unknown font size %q", text)
}

// Align positions text inside a widget. Left, Center and Right apply to
// the x axis; Top, Center and Bottom to the y axis.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
	AlignTop
	AlignBottom
)

var alignNames = [...]string{
	AlignCenter: "center",
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignTop:    "top",
	AlignBottom: "bottom",
}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range alignNames {
		if n == name {
			*a = Align(i)
			return nil
		}
	}
	return fmt.Errorf("unknown alignment %q", text)
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Gray  = Color{0.5, 0.5, 0.5, 1}
)

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	channel := func(shift uint) float32 { return float32((v>>shift)&0xff) / 255 }
	return Color{R: channel(24), G: channel(16), B: channel(8), A: channel(0)}, nil
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// RGBHex formats the color as "#rrggbb", dropping alpha.
func (c Color) RGBHex() string {
	return c.Hex()[:7]
}

// Scale multiplies the RGB components by f, clamped to [0, 1].
func (c Color) Scale(f float32) Color {
	return Color{R: clamp01(c.R * f), G: clamp01(c.G * f), B: clamp01(c.B * f), A: c.A}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func to8(f float32) uint8 {
	return uint8(clamp01(f)*255 + 0.5)
}

func clamp01(f float32) float32 {
	return min(max(f, 0), 1)
}

// State is the full set of switch-feature values a widget starts with.
// It is passed explicitly when registering a widget.
type State struct {
	Active bool

	ShowRect     bool
	RoundCorners layout.Area
	RectColor    Color

	ShowTexture bool
	Texture     int

	ShowText   bool
	Text       string
	TextSize   FontSize
	TextXAlign Align
	TextYAlign Align

	EnableScroll bool
	ScrollPos    int
	ScrollSpeed  int
}

// DefaultState returns the initial state: inactive, with every switch
// feature hidden or disabled.
func DefaultState() State {
	return State{
		RoundCorners: layout.AreaNone,
		RectColor:    Gray,
		TextSize:     FontMedium,
		TextXAlign:   AlignCenter,
		TextYAlign:   AlignCenter,
	}
}

// Apply pushes every value of s to w through its setters.
func (s State) Apply(w Widget) {
	w.SetRectShown(s.ShowRect)
	w.SetRoundCorners(s.RoundCorners)
	w.SetRectColor(s.RectColor)
	w.SetTexture(s.Texture)
	w.SetTextureShown(s.ShowTexture)
	w.SetText(s.Text)
	w.SetTextSize(s.TextSize)
	w.SetTextAlign(s.TextXAlign, s.TextYAlign)
	w.SetTextShown(s.ShowText)
	w.SetScrollPos(s.ScrollPos)
	w.SetScrollSpeed(s.ScrollSpeed)
	w.SetScrollEnabled(s.EnableScroll)
}
