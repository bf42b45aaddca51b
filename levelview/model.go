package levelview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/sketchjump/levelgen"
	"github.com/milk9111/sketchjump/world"
)

const (
	defaultCols = 120
	defaultRows = 40
	chromeRows  = 6
)

// Model is the Bubble Tea model for stepping through generated levels.
type Model struct {
	gen   *levelgen.Generator
	reach levelgen.Reach
	seed  uint64
	level int

	// forced is an index into levelgen.Strategies, or -1 for the level's
	// own strategy.
	forced int

	layout world.Layout
	err    error

	cols, rows int
	quitting   bool
}

func NewModel(gen *levelgen.Generator, reach levelgen.Reach, seed uint64, level int) Model {
	m := Model{
		gen:    gen,
		reach:  reach,
		seed:   seed,
		level:  max(level, 1),
		forced: -1,
		cols:   defaultCols,
		rows:   defaultRows,
	}
	m.regenerate()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width-2, 10)
		m.rows = max(msg.Height-chromeRows, 5)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "n", "right", "l":
		m.level++
	case "p", "left", "h":
		if m.level == 1 {
			return m, nil
		}
		m.level--
	case "r":
		m.seed++
	case "R":
		if m.seed > 0 {
			m.seed--
		}
	case "s":
		m.forced++
		if m.forced >= len(levelgen.Strategies) {
			m.forced = -1
		}
	default:
		return m, nil
	}
	m.regenerate()
	return m, nil
}

func (m *Model) regenerate() {
	r := levelgen.LevelRand(m.seed, m.level)
	if m.forced < 0 {
		m.layout, m.err = m.gen.Generate(m.level, r)
		return
	}
	m.layout, m.err = m.gen.GenerateWith(m.level, levelgen.Strategies[m.forced], r)
}

func (m Model) Level() int           { return m.level }
func (m Model) Seed() uint64         { return m.seed }
func (m Model) Layout() world.Layout { return m.layout }

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return warnStyle.Render(m.err.Error()) + "\n" + helpStyle.Render(helpLine)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title()))
	sb.WriteString("\n")
	sb.WriteString(m.stats())
	sb.WriteString("\n")
	sb.WriteString(borderStyle.Render(RenderGrid(Rasterize(m.layout, m.cols, m.rows))))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(helpLine))
	return sb.String()
}

const helpLine = "n/p level  r/R seed  s strategy  q quit"

func (m Model) title() string {
	name := m.layout.Strategy
	if s, err := levelgen.ParseStrategy(name); err == nil {
		name = s.DisplayName()
	}
	forced := ""
	if m.forced >= 0 {
		forced = " (forced)"
	}
	return fmt.Sprintf("Level %d  %s%s  seed %d  difficulty %d", m.level, name, forced, m.seed, m.gen.Difficulty(m.level))
}

func (m Model) stats() string {
	l := m.layout
	line := fmt.Sprintf("platforms %d  moving %d  disappearing %d  spikes %d  collectibles %d  draw budget %d",
		len(l.Platforms), len(l.Moving), len(l.Disappearing), len(l.Spikes), len(l.Collectibles), l.MaxDrawn)
	if !levelgen.Audit(l, m.reach) {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, warnStyle.Render("  goal needs drawing"))
	}
	return line
}

// Run starts the browser full screen and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("levelview: %w", err)
	}
	return nil
}
