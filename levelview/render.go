package levelview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var glyphStyles = map[Glyph]lipgloss.Style{
	GlyphEmpty:        lipgloss.NewStyle(),
	GlyphStatic:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	GlyphMoving:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	GlyphMovingTrack:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	GlyphDisappearing: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	GlyphSpike:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	GlyphCollectible:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	GlyphGoal:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	GlyphSpawn:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

var (
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderGrid converts a grid to a styled string, grouping runs of the same
// glyph to keep escape sequences down.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.cols*g.rows*2 + g.rows)

	for row := range g.rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		col := 0
		for col < g.cols {
			start := g.At(col, row)
			var run strings.Builder
			for col < g.cols && g.At(col, row) == start {
				run.WriteRune(start.Rune())
				col++
			}
			style, ok := glyphStyles[start]
			if !ok {
				style = glyphStyles[GlyphEmpty]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Plain renders the grid without styling.
func Plain(g *Grid) string {
	var sb strings.Builder
	for row := range g.rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := range g.cols {
			sb.WriteRune(g.At(col, row).Rune())
		}
	}
	return sb.String()
}
