package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/render"
	"github.com/matzehuels/menulayout/pkg/render/navgraph"
	"github.com/matzehuels/menulayout/pkg/render/preview"
	"github.com/matzehuels/menulayout/pkg/render/wireframe"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// Render produces every format of opts. m may be nil unless a wireframe or
// text format is requested.
func Render(ctx context.Context, doc scene.Document, m *manager.Manager, opts Options) (map[string][]byte, error) {
	if opts.needsManager() && m == nil {
		return nil, fmt.Errorf("formats %v need a laid-out manager", opts.Formats)
	}

	var frame render.Frame
	if m != nil {
		frame = render.FrameOf(m)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, format, doc, frame, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, format string, doc scene.Document, frame render.Frame, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return marshalDocument(doc)
	case FormatDOT:
		return []byte(navgraph.ToDOT(doc, graphOptions(opts))), nil
	case FormatSVG:
		return navgraph.RenderSVG(ctx, navgraph.ToDOT(doc, graphOptions(opts)))
	case FormatWireframe:
		return wireframe.RenderSVG(frame), nil
	case FormatPNG:
		return wireframe.RenderPNG(frame, wireframe.WithScale(opts.Scale))
	case FormatText:
		return []byte(preview.Render(frame, preview.Options{Plain: true})), nil
	}
	return nil, ValidateFormat(format)
}

func graphOptions(opts Options) navgraph.Options {
	return navgraph.Options{Scale: opts.Scale, HideInactive: opts.HideInactive}
}
