package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/pipeline"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// layoutCommand creates the layout command for exporting computed geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		asTable bool
		flags   sceneFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [scene.toml]",
		Short: "Compute the layout of a scene",
		Long: `Compute the layout of a scene.

The layout command reads a TOML or YAML scene, breaks its widgets into lines,
anchors them in the container and writes the geometry as JSON: every
widget's rect and line, the layout bounds, the selection and each widget's
directional neighbours.

Without --output the JSON is printed to stdout. Results are cached locally
for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags, output, noCache, asTable)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&asTable, "table", false, "print a widget table instead of JSON")
	flags.register(cmd)

	return cmd
}

// runLayout lays out the scene and writes the document.
func (c *CLI) runLayout(ctx context.Context, input string, flags sceneFlags, output string, noCache, asTable bool) error {
	opts, err := flags.options(input)
	if err != nil {
		return err
	}
	opts.Formats = []string{pipeline.FormatJSON}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("layout %s: %w", input, err)
	}

	if asTable {
		fmt.Println(widgetTable(result.Document))
		printStats(result.Stats, result.Document.Selected, result.CacheInfo.LayoutHit)
		return nil
	}

	if output == "" {
		_, err := os.Stdout.Write(result.Artifacts[pipeline.FormatJSON])
		return err
	}
	if err := scene.WriteFile(result.Document, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(result.Stats, result.Document.Selected, result.CacheInfo.LayoutHit)
	printNextStep("Render", appName+" visualize "+output)
	return nil
}

// widgetTable renders the widgets of doc as a table, selection highlighted.
func widgetTable(doc scene.Document) string {
	headers := []string{"Token", "Label", "Line", "X", "Y", "W", "H"}
	for _, d := range nav.Directions {
		headers = append(headers, d.String())
	}

	rows := make([][]string, 0, len(doc.Widgets))
	for _, w := range doc.Widgets {
		row := []string{
			strconv.Itoa(w.Token), w.Label, strconv.Itoa(w.Line),
			strconv.Itoa(w.Rect.X), strconv.Itoa(w.Rect.Y),
			strconv.Itoa(w.Rect.Width), strconv.Itoa(w.Rect.Height),
		}
		for _, d := range nav.Directions {
			row = append(row, neighborCell(w.Neighbors, d))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(doc.Widgets) {
				return base
			}
			w := doc.Widgets[row]
			switch {
			case w.Token == doc.Selected:
				return base.Foreground(colorYellow).Bold(true)
			case !w.Active:
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}

func neighborCell(neighbors map[string]int, d nav.Direction) string {
	if tok, ok := neighbors[d.String()]; ok {
		return strconv.Itoa(tok)
	}
	return "—"
}
