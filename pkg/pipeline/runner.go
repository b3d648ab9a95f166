package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/menulayout/pkg/cache"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/observability"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	sc, err := Parse(opts)
	if err != nil {
		return nil, stageError("parse", err)
	}
	result.Scene = sc
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.WidgetCount = len(sc.Widgets)

	r.Logger.Debug("parsed scene",
		"widgets", len(sc.Widgets),
		"format", opts.SourceFormat,
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	sceneHash := cache.Hash(opts.Source)
	layoutStart := time.Now()
	m, doc, layoutHit, err := r.LayoutWithCacheInfo(ctx, sc, sceneHash, opts)
	if err != nil {
		return nil, stageError("layout", err)
	}
	result.Manager = m
	result.Document = doc
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.LineCount = len(doc.Lines)
	result.CacheInfo.LayoutHit = layoutHit
	if data, err := marshalDocument(doc); err == nil {
		result.LayoutHash = cache.Hash(data)
	}

	r.Logger.Info("computed layout",
		"widgets", len(doc.Widgets),
		"lines", len(doc.Lines),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, m, renderHit, err := r.RenderWithCacheInfo(ctx, sc, result.Manager, doc, artifactBase(sceneHash, result.LayoutHash), opts)
	if err != nil {
		return nil, stageError("render", err)
	}
	result.Manager = m
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo returns the layout document of sc, from the cache
// when possible. The manager is nil on a cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, sc *scene.Scene, sceneHash string, opts Options) (*manager.Manager, scene.Document, bool, error) {
	key := r.Keyer.LayoutKey(sceneHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if doc, err := unmarshalDocument(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return nil, doc, true, nil
			}
			// Undecodable entries fall through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	m, doc, err := Layout(sc, opts)
	if err != nil {
		return nil, scene.Document{}, false, err
	}

	if data, err := marshalDocument(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache write failed", "stage", "layout", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return m, doc, false, nil
}

// RenderWithCacheInfo returns every requested artifact, from the cache when
// all of them are present. On a miss it renders all formats, building the
// manager from sc if a format needs one. The returned manager is m or the
// one it built.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, sc *scene.Scene, m *manager.Manager, doc scene.Document, base string, opts Options) (map[string][]byte, *manager.Manager, bool, error) {
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(base, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, m, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	if m == nil && opts.needsManager() {
		built, _, err := Layout(sc, opts)
		if err != nil {
			return nil, nil, false, err
		}
		m = built
	}

	rendered, err := Render(ctx, doc, m, opts)
	if err != nil {
		return nil, m, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(base, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "stage", "render", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, m, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// artifactBase combines the layout hash with the scene hash. Wireframes
// draw widget colors that the layout document does not carry.
func artifactBase(sceneHash, layoutHash string) string {
	return cache.Hash([]byte(fmt.Sprintf("%s:%s", sceneHash, layoutHash)))
}
