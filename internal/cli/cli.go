// Package cli implements the menulayout command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/buildinfo"
	"github.com/matzehuels/menulayout/pkg/cache"
	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/pipeline"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "menulayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "menulayout lays out and navigates on-screen menus",
		Long:         `menulayout arranges the widgets of a menu scene into lines, anchors them in a container and answers keyboard, joystick and pointer navigation queries.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.navCommand())
	root.AddCommand(c.hitCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.navgraphCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerCompletions(root)

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/menulayout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Scene Helpers
// =============================================================================

// sceneFlags are the container overrides shared by scene commands.
type sceneFlags struct {
	width  int
	height int
	anchor string
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "container width in pixels (default: from scene)")
	cmd.Flags().IntVar(&f.height, "height", 0, "container height in pixels (default: from scene)")
	cmd.Flags().StringVar(&f.anchor, "anchor", "", "anchor area: "+strings.Join(layout.Areas(), ", "))
}

// options reads the scene at path into pipeline options.
func (f sceneFlags) options(path string) (pipeline.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("read scene %s: %w", path, err)
	}
	return pipeline.Options{
		Source:       data,
		SourceFormat: scene.FormatOf(path),
		Width:        f.width,
		Height:       f.height,
		Anchor:       f.anchor,
	}, nil
}

// buildScene loads and lays out the scene at path.
func (c *CLI) buildScene(path string, f sceneFlags) (*manager.Manager, error) {
	opts, err := f.options(path)
	if err != nil {
		return nil, err
	}
	opts.Logger = c.Logger
	sc, err := pipeline.Parse(opts)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	m, _, err := pipeline.Layout(sc, opts)
	if err != nil {
		return nil, fmt.Errorf("lay out scene %s: %w", path, err)
	}
	return m, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string, def string) []string {
	if s == "" {
		return []string{def}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// outputPath returns the file written for format, next to base.
func outputPath(base, format string) string {
	switch format {
	case pipeline.FormatJSON:
		return base + ".layout.json"
	case pipeline.FormatWireframe:
		return base + ".wireframe.svg"
	}
	return base + "." + format
}

// basePath strips the scene extension from input.
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}
