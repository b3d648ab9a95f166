package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/pipeline"
)

// Terminal palette. The selection color matches the highlighted row of the
// widget table and the selected cell of the preview.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle renders scene paths in headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleDim renders counts, paths and other secondary output.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue renders written file paths and looked-up values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleNumber renders widget tokens.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleOK       = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailed   = lipgloss.NewStyle().Foreground(colorRed)
	styleNote     = lipgloss.NewStyle().Foreground(colorGray)
	styleSpinner  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSelected = lipgloss.NewStyle().Foreground(colorYellow)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	markOK     = "✓"
	markFailed = "✗"
	markNote   = "›"
	markFile   = "→"
)

// printSuccess reports a finished layout, render or cache operation.
func printSuccess(format string, args ...any) {
	fmt.Println(styleOK.Render(markOK) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleFailed.Render(markFailed) + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleNote.Render(markNote) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented line under the previous status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written artifact or layout document.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(markFile) + " " + StyleValue.Render(path))
}

// printKeyValue prints one row of a neighbour listing, such as
// "left         3".
func printKeyValue(key, value string) {
	fmt.Println(styleNote.Width(12).Render(key) + " " + StyleValue.Render(value))
}

// printStats prints the summary line of a scene run.
func printStats(stats pipeline.Stats, selected int, cached bool) {
	fmt.Println(statsLine(stats, selected, cached))
}

// statsLine summarises a run as "3 widgets · 2 lines · selected 2 · fresh".
// Empty counts are left out, and so is the selection when nothing is
// selected.
func statsLine(stats pipeline.Stats, selected int, cached bool) string {
	var parts []string
	if stats.WidgetCount > 0 {
		parts = append(parts, StyleDim.Render(plural(stats.WidgetCount, "widget")))
	}
	if stats.LineCount > 0 {
		parts = append(parts, StyleDim.Render(plural(stats.LineCount, "line")))
	}
	if selected != manager.None {
		parts = append(parts, StyleDim.Render("selected ")+styleSelected.Render(fmt.Sprint(selected)))
	}
	if cached {
		parts = append(parts, styleOK.Render("cached"))
	} else {
		parts = append(parts, styleNote.Render("fresh"))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// printNextStep suggests the command that consumes what was just written.
func printNextStep(description, cmd string) {
	fmt.Println()
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
