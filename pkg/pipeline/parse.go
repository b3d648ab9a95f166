package pipeline

import (
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// Parse decodes the scene source and applies the container overrides of
// opts. The returned scene is validated.
func Parse(opts Options) (*scene.Scene, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	sc, err := scene.ParseFormat(opts.Source, opts.SourceFormat)
	if err != nil {
		return nil, err
	}
	if opts.Width > 0 {
		sc.Container.Width = opts.Width
	}
	if opts.Height > 0 {
		sc.Container.Height = opts.Height
	}
	if opts.Anchor != "" {
		// Already checked by ValidateAndSetDefaults.
		sc.Container.Anchor, _ = layout.ParseArea(opts.Anchor)
	}
	if opts.Selected != nil {
		sel := *opts.Selected
		sc.Selected = &sel
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
