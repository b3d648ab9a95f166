package widget

import (
	"math"

	"github.com/matzehuels/menulayout/pkg/layout"
)

const (
	// PulseDuration is how long a pulse lasts, in seconds.
	PulseDuration = 0.5

	// brightnessStep is the color factor applied per Lighten call.
	brightnessStep = 1.25
)

// Basic is a Widget that keeps every received value in memory.
type Basic struct {
	token int
	rect  layout.Rect

	rectShown    bool
	rectColor    Color
	roundCorners layout.Area
	brightness   int

	textureShown bool
	texture      int

	textShown bool
	text      string
	textSize  FontSize
	textX     Align
	textY     Align

	scrollEnabled bool
	scrollPos     float64
	scrollSpeed   int

	pulseLeft float64
}

// NewBasic creates a Basic widget for token.
func NewBasic(token int) *Basic {
	return &Basic{token: token, rectColor: Gray}
}

// BasicFactory is a Factory producing Basic widgets.
func BasicFactory(token int) Widget {
	return NewBasic(token)
}

func (b *Basic) SetRect(r layout.Rect)               { b.rect = r }
func (b *Basic) SetRectShown(show bool)              { b.rectShown = show }
func (b *Basic) SetRectColor(c Color)                { b.rectColor = c; b.brightness = 0 }
func (b *Basic) SetRoundCorners(corners layout.Area) { b.roundCorners = corners }
func (b *Basic) SetTextureShown(show bool)           { b.textureShown = show }
func (b *Basic) SetTexture(id int)                   { b.texture = id }
func (b *Basic) SetTextShown(show bool)              { b.textShown = show }
func (b *Basic) SetText(text string)                 { b.text = text }
func (b *Basic) SetTextSize(size FontSize)           { b.textSize = size }
func (b *Basic) SetTextAlign(x, y Align)             { b.textX, b.textY = x, y }
func (b *Basic) SetScrollEnabled(enable bool)        { b.scrollEnabled = enable }
func (b *Basic) SetScrollPos(pos int)                { b.scrollPos = float64(pos) }
func (b *Basic) SetScrollSpeed(speed int)            { b.scrollSpeed = speed }

// Pulse restarts the pulse animation.
func (b *Basic) Pulse() { b.pulseLeft = PulseDuration }

// Lighten raises the rectangle brightness by one step.
func (b *Basic) Lighten() { b.brightness++ }

// Darken lowers the rectangle brightness by one step.
func (b *Basic) Darken() { b.brightness-- }

// Update advances the pulse timer and, when scrolling is enabled, moves
// the scroll position by speed pixels per second.
func (b *Basic) Update(delta float64) {
	if b.pulseLeft > 0 {
		b.pulseLeft = max(b.pulseLeft-delta, 0)
	}
	if b.scrollEnabled {
		b.scrollPos += float64(b.scrollSpeed) * delta
	}
}

// Token returns the token the widget was created for.
func (b *Basic) Token() int { return b.token }

// Rect returns the last rectangle received from layout.
func (b *Basic) Rect() layout.Rect { return b.rect }

// RectShown reports whether the rectangle is visible.
func (b *Basic) RectShown() bool { return b.rectShown }

// RoundCorners returns which corners are rounded.
func (b *Basic) RoundCorners() layout.Area { return b.roundCorners }

// Color returns the rectangle color with the current brightness applied.
func (b *Basic) Color() Color {
	return b.rectColor.Scale(float32(math.Pow(brightnessStep, float64(b.brightness))))
}

// Brightness returns the number of Lighten steps minus Darken steps.
func (b *Basic) Brightness() int { return b.brightness }

// TextureShown reports whether the texture is visible.
func (b *Basic) TextureShown() bool { return b.textureShown }

// Texture returns the texture id.
func (b *Basic) Texture() int { return b.texture }

// TextShown reports whether the text is visible.
func (b *Basic) TextShown() bool { return b.textShown }

// Text returns the text content.
func (b *Basic) Text() string { return b.text }

// TextSize returns the text size.
func (b *Basic) TextSize() FontSize { return b.textSize }

// TextAlign returns the x and y text alignment.
func (b *Basic) TextAlign() (x, y Align) { return b.textX, b.textY }

// ScrollEnabled reports whether scrolling is enabled.
func (b *Basic) ScrollEnabled() bool { return b.scrollEnabled }

// ScrollPos returns the current scroll position, truncated to pixels.
func (b *Basic) ScrollPos() int { return int(b.scrollPos) }

// ScrollSpeed returns the scroll speed in pixels per second.
func (b *Basic) ScrollSpeed() int { return b.scrollSpeed }

// Pulsing reports whether a pulse is in progress.
func (b *Basic) Pulsing() bool { return b.pulseLeft > 0 }

// Label returns the visible text, or an empty string when text is hidden.
func (b *Basic) Label() string {
	if !b.textShown {
		return ""
	}
	return b.text
}

var (
	_ Widget  = (*Basic)(nil)
	_ Labeler = (*Basic)(nil)
)
