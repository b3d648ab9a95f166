package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/render"
	"github.com/matzehuels/menulayout/pkg/render/preview"
)

// Header and footer lines around the preview grid.
const (
	previewHeader = 2
	previewFooter = 2
)

var (
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorGreen)
	previewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for interactive navigation.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags sceneFlags
		once  bool
		plain bool
		cols  int
		rows  int
	)

	cmd := &cobra.Command{
		Use:   "preview [scene.toml]",
		Short: "Navigate a scene in the terminal",
		Long: `Draw a scene in the terminal and drive it like a game menu.

Arrow keys or h/j/k/l move the selection, enter or space activate it, and
moving the mouse selects the widget under the pointer. Press q to quit.

With --once a single frame is printed and the command exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.buildScene(args[0], flags)
			if err != nil {
				return err
			}
			opts := preview.Options{Cols: cols, Rows: rows, Plain: plain}
			if once {
				fmt.Println(preview.Render(render.FrameOf(m), opts))
				return nil
			}

			model := newPreviewModel(m, args[0], opts)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			if pm, ok := final.(previewModel); ok && pm.activated != manager.None {
				printSuccess("Activated widget %d", pm.activated)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "print one frame and exit")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	cmd.Flags().IntVar(&cols, "cols", preview.DefaultCols, "grid width in cells (--once)")
	cmd.Flags().IntVar(&rows, "rows", preview.DefaultRows, "grid height in cells (--once)")
	flags.register(cmd)

	return cmd
}

// previewModel is the bubbletea model for the interactive preview. The
// manager is only touched from Update, so it needs no locking.
type previewModel struct {
	m         *manager.Manager
	title     string
	opts      preview.Options
	status    string
	activated int
}

func newPreviewModel(m *manager.Manager, title string, opts preview.Options) previewModel {
	return previewModel{m: m, title: title, opts: opts, activated: manager.None}
}

var previewKeys = map[string]manager.Key{
	"left": manager.KeyLeft, "h": manager.KeyLeft,
	"right": manager.KeyRight, "l": manager.KeyRight,
	"up": manager.KeyUp, "k": manager.KeyUp,
	"down": manager.KeyDown, "j": manager.KeyDown,
	"enter": manager.KeyEnter, " ": manager.KeySpace,
}

func (pm previewModel) Init() tea.Cmd {
	return nil
}

func (pm previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return pm, tea.Quit
		}
		k, ok := previewKeys[key]
		if !ok {
			return pm, nil
		}
		if tok := pm.m.HandleKeyboard(k); tok != manager.None {
			pm.activated = tok
			pm.status = fmt.Sprintf("activated %d", tok)
		} else {
			pm.status = ""
		}

	case tea.MouseMsg:
		row := msg.Y - previewHeader
		if row < 0 || row >= pm.opts.Rows || msg.X >= pm.opts.Cols {
			return pm, nil
		}
		x, y := preview.Point(render.FrameOf(pm.m), pm.opts, msg.X, row)
		hit := pm.m.HandleMouse(x, y)
		if hit != manager.None && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			pm.activated = pm.m.HandleKeyboard(manager.KeyEnter)
			pm.status = fmt.Sprintf("activated %d", pm.activated)
		}

	case tea.WindowSizeMsg:
		pm.opts.Cols = msg.Width
		pm.opts.Rows = max(msg.Height-previewHeader-previewFooter, 1)
	}
	return pm, nil
}

func (pm previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(pm.title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  selected %s", tokenString(pm.m.Selected()))))
	b.WriteString("\n\n")
	b.WriteString(preview.Render(render.FrameOf(pm.m), pm.opts))
	b.WriteString("\n")
	b.WriteString(previewStatusStyle.Render(pm.status))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←↑↓→/hjkl move  ⏎ activate  mouse select  q quit"))

	return b.String()
}
