package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	hudX    = 10
	hudY    = 10
	hudLine = 16
)

func (g *Game) drawHUD(screen *ebiten.Image, now int64) {
	s := g.session
	w := s.World()
	p := s.Player()

	lines := []string{
		fmt.Sprintf("Level %d  %s  difficulty %d", s.Level(), s.StrategyName(), s.Difficulty()),
		fmt.Sprintf("Score %d  collectibles left %d", p.Score, w.Remaining()),
		fmt.Sprintf("Platforms %d/%d", len(w.Drawn()), w.MaxDrawn),
	}
	for i, d := range w.Drawn() {
		lines = append(lines, fmt.Sprintf("  #%d %.1fs", i+1, float64(d.RemainingMS(now))/1000))
	}
	lines = append(lines, "drag: draw  X: clear  R: reset  C: copy seed  Esc: pause")
	if g.debug {
		lines = append(lines,
			fmt.Sprintf("FPS %.1f  TPS %.1f  frame %d", ebiten.ActualFPS(), ebiten.ActualTPS(), s.Frames()),
			fmt.Sprintf("seed %d  pos (%.1f, %.1f)  vel (%.1f, %.1f)  grounded %v", s.Seed(), p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Grounded),
		)
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, hudX, hudY+i*hudLine)
	}

	if g.banner != "" && now-g.bannerAt < bannerMS {
		x := int(w.Width)/2 - len(g.banner)*3
		ebitenutil.DebugPrintAt(screen, g.banner, x, int(w.Height)/3)
	}
}
