package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/pipeline"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// visualizeCommand creates the visualize command for rendering from an
// exported layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		opts renderOpts
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a layout document produced by 'layout'",
		Long: `Render a layout document produced by 'layout -o'.

The document is turned back into a scene with the same container, anchor,
line breaks, sizes, labels, activation and selection, laid out again and
rendered. Colors and other styling are not part of a layout document, so
wireframes use the defaults.

Use 'render' to go directly from a scene file to output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats, pipeline.FormatWireframe)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, formats)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "base path for output files (default: input without .layout.json)")
	opts.register(cmd, "")

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, input string, ro renderOpts, formats []string) error {
	source, err := sceneFromDocument(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spin := newSpinner(ctx, os.Stderr, "Visualizing "+input+"...")
	spin.start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Source:       source,
		SourceFormat: scene.FormatTOML,
		Formats:      formats,
		Scale:        ro.scale,
		HideInactive: ro.hideInactive,
		Refresh:      ro.refresh,
	})
	if err != nil {
		spin.fail("Visualization failed")
		return fmt.Errorf("visualize %s: %w", input, err)
	}
	spin.stop()
	if spin.interrupted() {
		return ctx.Err()
	}

	base := ro.output
	if base == "" {
		base = trimLayoutSuffix(input)
	}
	paths, err := writeArtifacts(result.Artifacts, base)
	if err != nil {
		return err
	}

	printSuccess("Visualization complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats, result.Document.Selected, result.CacheInfo.RenderHit)
	return nil
}

// sceneFromDocument reads a layout document and encodes its scene as TOML.
func sceneFromDocument(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout %s: %w", path, err)
	}
	defer f.Close()

	doc, err := scene.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	sc, err := doc.Scene()
	if err != nil {
		return nil, fmt.Errorf("convert layout %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(sc); err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return buf.Bytes(), nil
}

func trimLayoutSuffix(path string) string {
	const suffix = ".layout.json"
	if len(path) > len(suffix) && path[len(path)-len(suffix):] == suffix {
		return path[:len(path)-len(suffix)]
	}
	return basePath(path)
}
