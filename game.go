package main

import (
	"fmt"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/sketchjump/clock"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/engine"
	"github.com/milk9111/sketchjump/prefabs"
	"golang.design/x/clipboard"
)

const bannerMS = 1500

type Game struct {
	session *engine.Session
	clock   *clock.Pausable
	watcher *prefabs.Watcher
	debug   bool

	input    *Input
	renderer *renderer
	pauseUI  *ebitenui.UI

	paused    bool
	quit      bool
	clipboard bool

	banner   string
	bannerAt int64
}

func NewGame(s *engine.Session, clk *clock.Pausable, w *prefabs.Watcher, debug bool) *Game {
	t := s.Tuning()
	g := &Game{
		session:  s,
		clock:    clk,
		watcher:  w,
		debug:    debug,
		input:    NewInput(t.Player.JumpRequiresPress),
		renderer: &renderer{pal: newPalette(t.Palette)},
	}
	g.pauseUI = NewPauseUI(g)
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", "error", err)
	} else {
		g.clipboard = true
	}
	g.handleEvents(s.Events())
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadTuning()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySeed()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if err := g.session.Update(g.input.Poll(), g.clock.Now()); err != nil {
		return err
	}
	g.handleEvents(g.session.Events())
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if !paused {
		g.clock.Resume()
		return
	}
	g.clock.Pause()
	g.input.Cancel()
	g.session.Pad().Cancel()
}

func (g *Game) handleEvents(evts []engine.Event) {
	for _, e := range evts {
		switch e.Kind {
		case engine.EventLevelLoaded:
			g.showBanner(fmt.Sprintf("Level %d: %s", e.Level, g.session.StrategyName()), e.At)
		case engine.EventLevelReset:
			g.showBanner("Level reset", e.At)
		case engine.EventGoalReached:
			logger.Debug("goal", "level", e.Level, "strategy", e.Strategy)
		}
	}
}

func (g *Game) showBanner(text string, now int64) {
	g.banner = text
	g.bannerAt = now
}

// reloadTuning applies prefab edits picked up by the watcher. A broken
// file keeps the previous tuning.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	names, err := g.watcher.Poll()
	if err != nil {
		logger.Warn("prefab watcher", "error", err)
	}
	if len(names) == 0 {
		return
	}
	for i, n := range names {
		names[i] = filepath.Base(n)
	}

	t, err := prefabs.LoadTuning()
	if err != nil {
		logger.Warn("prefab reload failed", "files", names, "error", err)
		return
	}
	if err := g.session.ApplyTuning(t); err != nil {
		logger.Warn("prefab reload rejected", "files", names, "error", err)
		return
	}
	g.input.JumpRequiresPress = t.Player.JumpRequiresPress
	g.renderer.pal = newPalette(t.Palette)
	logger.Info("prefabs reloaded", "files", names)
}

// copySeed puts the flags that reproduce the current level on the
// clipboard.
func (g *Game) copySeed() {
	text := fmt.Sprintf("--seed %d --level %d", g.session.Seed(), g.session.Level())
	if !g.clipboard {
		logger.Info("seed", "flags", text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	g.showBanner("Copied "+text, g.clock.Now())
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.clock.Now()
	w := g.session.World()
	g.renderer.drawWorld(screen, w, now)
	g.renderer.drawPlayer(screen, g.session.Player())
	g.renderer.drawGesture(screen, g.session.Pad(), g.session.Tuning().Sketch.Thickness)
	if g.debug {
		drawDebugBounds(screen, g.session)
	}
	g.drawHUD(screen, now)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.WorldWidth, common.WorldHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
