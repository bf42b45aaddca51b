package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/engine"
	"golang.org/x/image/colornames"
)

func strokeBB(dst *ebiten.Image, bb cp.BB, c color.Color) {
	vector.StrokeRect(dst, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, c, false)
}

// drawDebugBounds outlines every collision box the resolver sees this
// frame, plus the sampled movement input.
func drawDebugBounds(screen *ebiten.Image, s *engine.Session) {
	w := s.World()
	for _, p := range w.Platforms() {
		c := color.Color(colornames.Lime)
		if !p.Active {
			c = colornames.Gray
		}
		strokeBB(screen, p.Rect.BB(), c)
	}
	for _, sp := range w.Spikes {
		strokeBB(screen, sp.Rect.BB(), colornames.Red)
	}
	for _, g := range w.Goals {
		strokeBB(screen, g.Rect.BB(), colornames.Yellow)
	}
	pb := s.Player().Rect().BB()
	strokeBB(screen, pb, colornames.Cyan)

	in := s.Input().Move
	text := fmt.Sprintf("L:%v R:%v J:%v", in.Left, in.Right, in.Jump)
	ebitenutil.DebugPrintAt(screen, text, int(pb.L), int(pb.B)-16)
}
