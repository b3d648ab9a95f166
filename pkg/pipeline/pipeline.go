// Package pipeline runs the scene → layout → render pipeline shared by the
// CLI and the HTTP service.
//
// # Stages
//
//  1. Parse: decode a scene file (TOML or YAML) and apply container overrides
//  2. Layout: build a manager from the scene and export its geometry
//  3. Render: produce artifacts (JSON, DOT, SVG, wireframe SVG/PNG, text)
//
// Layout documents and artifacts are cached by content hash through
// [cache.Cache]; a [Runner] wires the cache, keyer and logger together.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  data,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/menulayout/pkg/cache"
	"github.com/matzehuels/menulayout/pkg/errors"
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// Output formats.
const (
	FormatJSON      = "json"      // scene.Document
	FormatDOT       = "dot"       // navigation graph source
	FormatSVG       = "svg"       // navigation graph through Graphviz
	FormatWireframe = "wireframe" // wireframe SVG of the widget rects
	FormatPNG       = "png"       // wireframe PNG
	FormatText      = "txt"       // plain terminal preview
)

// ValidFormats is the set of supported output formats, in listing order.
var ValidFormats = []string{FormatJSON, FormatDOT, FormatSVG, FormatWireframe, FormatPNG, FormatText}

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatJSON

// DefaultScale is the PNG and navigation graph scale factor.
const DefaultScale = 1.0

// MaxScale is the largest accepted scale factor.
const MaxScale = 8.0

// Options configures a pipeline run. It is JSON-serializable for API
// requests; Source is sent as a string.
type Options struct {
	// Parse options
	Source       []byte       `json:"-"`
	SourceFormat scene.Format `json:"source_format,omitempty"`

	// Layout overrides. Zero values keep the scene's own container.
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Anchor string `json:"anchor,omitempty"`

	// Selected replaces the scene's initial selection when non-nil.
	Selected *int `json:"selected,omitempty"`

	// Render options
	Formats      []string `json:"formats,omitempty"`
	Scale        float64  `json:"scale,omitempty"`
	HideInactive bool     `json:"hide_inactive,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the parsed scene with overrides applied.
	Scene *scene.Scene

	// Manager is the laid-out manager. It is nil when the layout came from
	// the cache and no rendered format needed live widgets.
	Manager *manager.Manager

	// Document is the exported layout.
	Document scene.Document

	// LayoutHash is the content hash of Document's JSON form.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WidgetCount int
	LineCount   int
	ParseTime   time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each cached stage.
type CacheInfo struct {
	LayoutHit bool // layout document came from cache
	RenderHit bool // every artifact came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	for _, f := range ValidFormats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: %s)",
		format, strings.Join(ValidFormats, ", "))
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateScale checks a scale factor. Zero means the default.
func ValidateScale(s float64) error {
	if math.IsNaN(s) || s < 0 || s > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be within (0, %g], got %g", MaxScale, s)
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scene source is required")
	}
	if o.SourceFormat == "" {
		o.SourceFormat = scene.FormatTOML
	}
	if o.SourceFormat != scene.FormatTOML && o.SourceFormat != scene.FormatYAML {
		return errors.New(errors.ErrCodeInvalidInput, "invalid source format: %q (must be toml or yaml)", o.SourceFormat)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "container overrides must not be negative")
	}
	if o.Width > errors.MaxContainerSide || o.Height > errors.MaxContainerSide {
		return errors.New(errors.ErrCodeInvalidInput, "container overrides must not exceed %d px", errors.MaxContainerSide)
	}
	if o.Anchor != "" {
		if _, err := layout.ParseArea(o.Anchor); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid anchor %q", o.Anchor)
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateScale(o.Scale); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:    o.Width,
		Height:   o.Height,
		Anchor:   o.Anchor,
		Selected: o.Selected,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		Scale:        o.Scale,
		HideInactive: o.HideInactive,
	}
}

// needsManager reports whether any requested format draws live widgets.
func (o *Options) needsManager() bool {
	for _, f := range o.Formats {
		switch f {
		case FormatWireframe, FormatPNG, FormatText:
			return true
		}
	}
	return false
}

func stageError(stage string, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}
