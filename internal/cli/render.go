package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string  // base path for output files
	formats      string  // comma-separated output formats
	scale        float64 // PNG and navigation graph scale
	hideInactive bool    // drop inactive widgets from the navigation graph
	noCache      bool
	refresh      bool
}

func (o *renderOpts) register(cmd *cobra.Command, def string) {
	cmd.Flags().StringVarP(&o.formats, "format", "f", def, "output format(s): "+strings.Join(pipeline.ValidFormats, ", ")+" (comma-separated)")
	cmd.Flags().Float64Var(&o.scale, "scale", pipeline.DefaultScale, "scale factor for png and navigation graphs")
	cmd.Flags().BoolVar(&o.hideInactive, "hide-inactive", false, "leave inactive widgets out of navigation graphs")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "ignore cached results")
}

// renderCommand creates the render command for producing artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts  renderOpts
		flags sceneFlags
	)

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene to files",
		Long: `Render a scene to one or more files.

Formats:
  json       layout document (<base>.layout.json)
  dot        navigation graph source (<base>.dot)
  svg        navigation graph drawn by Graphviz (<base>.svg)
  wireframe  widget rectangles as SVG (<base>.wireframe.svg)
  png        widget rectangles as PNG (<base>.png)
  txt        plain terminal preview (<base>.txt)

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats, pipeline.FormatWireframe)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], flags, opts, formats)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "base path for output files (default: scene path without extension)")
	opts.register(cmd, "")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, flags sceneFlags, ro renderOpts, formats []string) error {
	opts, err := flags.options(input)
	if err != nil {
		return err
	}
	opts.Formats = formats
	opts.Scale = ro.scale
	opts.HideInactive = ro.hideInactive
	opts.Refresh = ro.refresh

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	watch := startStopwatch(c.Logger)
	spin := newSpinner(ctx, os.Stderr, "Rendering "+strings.Join(formats, ", ")+"...")
	spin.start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spin.fail("Render failed")
		return fmt.Errorf("render %s: %w", input, err)
	}
	spin.stop()
	if spin.interrupted() {
		return ctx.Err()
	}

	base := ro.output
	if base == "" {
		base = basePath(input)
	}
	paths, err := writeArtifacts(result.Artifacts, base)
	if err != nil {
		return err
	}
	watch.done(fmt.Sprintf("Rendered %d artifacts", len(paths)), result.Stats)

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats, result.Document.Selected, result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes every artifact next to base and returns the paths
// in format order.
func writeArtifacts(artifacts map[string][]byte, base string) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := outputPath(base, f)
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// navgraphCommand creates the navgraph command, which prints the
// navigation graph of a scene.
func (c *CLI) navgraphCommand() *cobra.Command {
	var (
		opts  renderOpts
		flags sceneFlags
	)

	cmd := &cobra.Command{
		Use:   "navgraph [scene.toml]",
		Short: "Print the navigation graph of a scene",
		Long: `Print the navigation graph of a scene to stdout, as DOT source (-f dot,
the default) or as an SVG drawn by Graphviz (-f svg). Nodes are pinned at
the widget centres; edges are labelled L, R, U and D.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := opts.formats
			if format != pipeline.FormatDOT && format != pipeline.FormatSVG {
				return fmt.Errorf("invalid format: %q (must be dot or svg)", format)
			}

			in, err := flags.options(args[0])
			if err != nil {
				return err
			}
			in.Formats = []string{format}
			in.Scale = opts.scale
			in.HideInactive = opts.hideInactive
			in.Refresh = opts.refresh

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("navgraph %s: %w", args[0], err)
			}
			_, err = os.Stdout.Write(result.Artifacts[format])
			return err
		},
	}

	opts.register(cmd, pipeline.FormatDOT)
	flags.register(cmd)
	return cmd
}
