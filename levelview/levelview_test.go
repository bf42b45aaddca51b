package levelview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/levelgen"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/world"
)

func TestRasterize(t *testing.T) {
	l := world.Layout{
		Width:     100,
		Height:    50,
		Spawn:     cp.Vector{X: 5, Y: 25},
		Platforms: []*world.Platform{world.NewStatic(common.NewRect(0, 40, 30, 10))},
		Spikes:    []*world.Spike{world.NewSpike(common.NewRect(50, 45, 10, 5))},
		Goals:     []*world.Goal{world.NewGoal(common.NewRect(90, 0, 10, 10))},
	}
	g := Rasterize(l, 10, 5)
	want := strings.Join([]string{
		"         G",
		"          ",
		"@         ",
		"          ",
		"===  ^    ",
	}, "\n")
	if got := Plain(g); got != want {
		t.Fatalf("unexpected raster:\n%s\nwant:\n%s", got, want)
	}
}

func TestRasterizeThinRect(t *testing.T) {
	l := world.Layout{
		Width:     1200,
		Height:    800,
		Platforms: []*world.Platform{world.NewStatic(common.NewRect(600, 400, 100, 10))},
	}
	g := Rasterize(l, 12, 8)
	if g.At(6, 4) != GlyphStatic {
		t.Fatalf("thin platform should still occupy a cell")
	}
}

func TestModelKeys(t *testing.T) {
	gen := levelgen.New(prefabs.MustLoadTuning())
	m := NewModel(gen, levelgen.JumpReach(prefabs.MustLoadTuning().Player), 3, 1)

	press := func(m Model, key string) Model {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		return next.(Model)
	}

	m = press(m, "p")
	if m.Level() != 1 {
		t.Fatalf("level should not go below 1")
	}
	m = press(m, "n")
	m = press(m, "n")
	if m.Level() != 3 || m.Layout().Level != 3 {
		t.Fatalf("expected level 3, got %d", m.Level())
	}
	if m.Layout().Strategy != levelgen.MixedChallenge.String() {
		t.Fatalf("unexpected strategy %s", m.Layout().Strategy)
	}

	m = press(m, "s")
	if m.Layout().Strategy != levelgen.Strategies[0].String() {
		t.Fatalf("expected forced first strategy, got %s", m.Layout().Strategy)
	}

	m = press(m, "r")
	if m.Seed() != 4 {
		t.Fatalf("expected seed 4, got %d", m.Seed())
	}
	if !strings.Contains(m.View(), "Level 3") {
		t.Fatalf("view should name the level")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q should quit")
	}
}
