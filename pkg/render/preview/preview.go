// Package preview draws a laid-out menu onto a character grid for the
// terminal. Widget rectangles are scaled from container pixels to cells,
// outlined with box-drawing characters and labelled; colors and the
// selection highlight come from lipgloss styles.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/menulayout/pkg/render"
)

// Default grid size in cells.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Options configures the preview.
type Options struct {
	Cols, Rows int

	// Plain disables styling; the output is bare characters.
	Plain bool
}

func (o Options) withDefaults() Options {
	if o.Cols <= 0 {
		o.Cols = DefaultCols
	}
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	return o
}

type role uint8

const (
	roleEmpty role = iota
	roleBorder
	roleBorderSelected
	roleBorderInactive
	roleFill
	roleLabel
)

type cell struct {
	r    rune
	role role
	box  int // index into boxes, -1 for background
}

var (
	styleBorder         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleBorderSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	styleBorderInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleLabel          = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

// Render draws f and returns the grid as newline-separated rows.
func Render(f render.Frame, opts Options) string {
	opts = opts.withDefaults()
	boxes := render.Boxes(f)

	grid := make([][]cell, opts.Rows)
	for y := range grid {
		grid[y] = make([]cell, opts.Cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', box: -1}
		}
	}

	cw, ch := f.Container.Width, f.Container.Height
	for i, b := range boxes {
		x0, x1 := scale(b.Rect.X, cw, opts.Cols), scale(b.Rect.Right(), cw, opts.Cols)-1
		y0, y1 := scale(b.Rect.Y, ch, opts.Rows), scale(b.Rect.Bottom(), ch, opts.Rows)-1
		x1, y1 = max(x1, x0), max(y1, y0)
		drawBox(grid, i, b, x0, y0, x1, y1)
	}

	var sb strings.Builder
	for y, row := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, row, boxes, opts.Plain)
	}
	return sb.String()
}

// Point returns the container pixel at the centre of grid cell (col, row),
// for mapping terminal mouse events back onto the menu.
func Point(f render.Frame, opts Options, col, row int) (x, y int) {
	opts = opts.withDefaults()
	c := f.Container
	x = c.X + (2*col+1)*c.Width/(2*opts.Cols)
	y = c.Y + (2*row+1)*c.Height/(2*opts.Rows)
	return x, y
}

// scale maps a container coordinate to a cell index.
func scale(v, total, cells int) int {
	if total <= 0 {
		return 0
	}
	return v * cells / total
}

func drawBox(grid [][]cell, idx int, b render.Box, x0, y0, x1, y1 int) {
	border := roleBorder
	switch {
	case b.Selected:
		border = roleBorderSelected
	case !b.Active:
		border = roleBorderInactive
	}
	tl, tr, br, bl := render.Corners(b.Corners)
	horiz, vert := '─', '│'
	if !b.Active {
		horiz, vert = '╌', '╎'
	}

	set := func(x, y int, r rune, ro role) {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return
		}
		grid[y][x] = cell{r: r, role: ro, box: idx}
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			switch {
			case y == y0 && x == x0:
				set(x, y, pick(tl, '╭', '┌'), border)
			case y == y0 && x == x1:
				set(x, y, pick(tr, '╮', '┐'), border)
			case y == y1 && x == x1:
				set(x, y, pick(br, '╯', '┘'), border)
			case y == y1 && x == x0:
				set(x, y, pick(bl, '╰', '└'), border)
			case y == y0 || y == y1:
				set(x, y, horiz, border)
			case x == x0 || x == x1:
				set(x, y, vert, border)
			default:
				set(x, y, ' ', roleFill)
			}
		}
	}

	inner := x1 - x0 - 1
	if b.Label == "" || inner <= 0 || y1-y0 < 2 {
		return
	}
	label := []rune(b.Label)
	if len(label) > inner {
		label = label[:inner]
	}
	y := (y0 + y1) / 2
	x := x0 + 1 + (inner-len(label))/2
	for i, r := range label {
		set(x+i, y, r, roleLabel)
	}
}

func pick(round bool, rounded, square rune) rune {
	if round {
		return rounded
	}
	return square
}

// writeRow emits a row, grouping runs of cells that share a style.
func writeRow(sb *strings.Builder, row []cell, boxes []render.Box, plain bool) {
	if plain {
		for _, c := range row {
			sb.WriteRune(c.r)
		}
		return
	}

	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].role == row[start].role && row[i].box == row[start].box {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			run.WriteRune(c.r)
		}
		sb.WriteString(styleFor(row[start], boxes).Render(run.String()))
		start = i
	}
}

func styleFor(c cell, boxes []render.Box) lipgloss.Style {
	var st lipgloss.Style
	switch c.role {
	case roleEmpty:
		return lipgloss.NewStyle()
	case roleBorder:
		st = styleBorder
	case roleBorderSelected:
		st = styleBorderSelected
	case roleBorderInactive:
		st = styleBorderInactive
	case roleLabel:
		st = styleLabel
	default:
		st = lipgloss.NewStyle()
	}
	if b := boxes[c.box]; b.Filled && c.role != roleBorder && c.role != roleBorderSelected && c.role != roleBorderInactive {
		st = st.Background(lipgloss.Color(b.Fill.RGBHex()))
	}
	return st
}
