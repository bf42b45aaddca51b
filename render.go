package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/sketch"
	"github.com/milk9111/sketchjump/world"
	"golang.org/x/image/colornames"
)

const gridSpacing = 50

type palette struct {
	background, grid, player, outline color.Color
	static, drawn, moving, vanish     color.Color
	spike, collectible, goal          color.Color
	valid, invalid                    color.Color
}

func newPalette(p prefabs.PaletteSpec) palette {
	return palette{
		background:  p.Background.Or(colornames.White),
		grid:        p.Grid.Or(colornames.Gainsboro),
		player:      p.Player.Or(colornames.Cornflowerblue),
		outline:     p.Outline.Or(colornames.Black),
		static:      p.Static.Or(colornames.Gray),
		drawn:       p.Drawn.Or(colornames.Mediumorchid),
		moving:      p.Moving.Or(colornames.Lightslategray),
		vanish:      p.Disappearing.Or(colornames.Orange),
		spike:       p.Spike.Or(colornames.Red),
		collectible: p.Collectible.Or(colornames.Gold),
		goal:        p.Goal.Or(colornames.Lightgreen),
		valid:       colornames.Green,
		invalid:     colornames.Red,
	}
}

// withAlpha scales c's opacity by a in [0, 1].
func withAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * common.Clamp01(a))
	return n
}

func fillRect(dst *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func strokeRect(dst *ebiten.Image, r common.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, c, false)
}

// renderer draws a World read-only; it never changes entity state.
type renderer struct {
	pal palette
}

func (r *renderer) drawWorld(screen *ebiten.Image, w *world.World, now int64) {
	screen.Fill(r.pal.background)
	r.drawGrid(screen, w)

	for _, p := range w.Static() {
		fillRect(screen, p.Rect, r.pal.static)
		strokeRect(screen, p.Rect, 2, r.pal.outline)
	}
	for _, p := range w.Drawn() {
		r.drawTemporary(screen, p, now)
	}
	for _, p := range w.Moving() {
		fillRect(screen, p.Rect, r.pal.moving)
		strokeRect(screen, p.Rect, 2, r.pal.outline)
		r.drawArrow(screen, p)
	}
	for _, p := range w.Disappearing() {
		r.drawDisappearing(screen, p, now)
	}
	for _, s := range w.Spikes {
		r.drawSpike(screen, s)
	}
	for _, c := range w.Collectibles {
		if !c.Collected {
			r.drawCollectible(screen, c)
		}
	}
	for _, g := range w.Goals {
		r.drawGoal(screen, g)
	}
}

func (r *renderer) drawGrid(screen *ebiten.Image, w *world.World) {
	for x := 0.0; x <= w.Width; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(w.Height), 1, r.pal.grid, false)
	}
	for y := 0.0; y <= w.Height; y += gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(w.Width), float32(y), 1, r.pal.grid, false)
	}
}

func (r *renderer) drawTemporary(screen *ebiten.Image, p *world.Platform, now int64) {
	if !p.Active {
		return
	}
	a := p.FadeFraction(now)
	fillRect(screen, p.Rect, withAlpha(r.pal.drawn, a))
	strokeRect(screen, p.Rect, 2, withAlpha(r.pal.outline, a))
	secs := float64(p.RemainingMS(now)) / 1000
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1fs", secs), int(p.X), int(p.Y)-16)
}

// drawArrow marks a moving platform's heading.
func (r *renderer) drawArrow(screen *ebiten.Image, p *world.Platform) {
	c := p.Rect.Center()
	dir := float32(p.Moving.Direction)
	x, y := float32(c.X), float32(c.Y)
	vector.StrokeLine(screen, x-6*dir, y-3, x+6*dir, y, 2, r.pal.outline, true)
	vector.StrokeLine(screen, x+6*dir, y, x-6*dir, y+3, 2, r.pal.outline, true)
}

func (r *renderer) drawDisappearing(screen *ebiten.Image, p *world.Platform, now int64) {
	if !p.Active {
		strokeRect(screen, p.Rect, 1, withAlpha(r.pal.vanish, 0.3))
		return
	}
	a := p.FlashPhase(now)
	fillRect(screen, p.Rect, withAlpha(r.pal.vanish, a))
	strokeRect(screen, p.Rect, 2, withAlpha(r.pal.outline, a))
}

// drawSpike fills the strip with a row of teeth.
func (r *renderer) drawSpike(screen *ebiten.Image, s *world.Spike) {
	const tooth = 10.0
	top, bottom := float32(s.Top()), float32(s.Bottom())
	for x := s.Left(); x < s.Right(); x += tooth {
		end := math.Min(x+tooth, s.Right())
		mid := float32((x + end) / 2)
		vector.StrokeLine(screen, float32(x), bottom, mid, top, 2, r.pal.spike, true)
		vector.StrokeLine(screen, mid, top, float32(end), bottom, 2, r.pal.spike, true)
	}
	vector.StrokeLine(screen, float32(s.Left()), bottom, float32(s.Right()), bottom, 2, r.pal.spike, false)
}

func (r *renderer) drawCollectible(screen *ebiten.Image, c *world.Collectible) {
	center := c.Rect.Center()
	bob := 3 * math.Sin(c.Phase)
	radius := float32(c.Width / 2)
	vector.FillCircle(screen, float32(center.X), float32(center.Y+bob), radius, r.pal.collectible, true)
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y+bob), radius, 1.5, r.pal.outline, true)
}

func (r *renderer) drawGoal(screen *ebiten.Image, g *world.Goal) {
	pulse := 0.75 + 0.25*math.Sin(g.Phase)
	fillRect(screen, g.Rect, withAlpha(r.pal.goal, pulse))
	strokeRect(screen, g.Rect, 2, r.pal.outline)
	ebitenutil.DebugPrintAt(screen, "GOAL", int(g.X)+4, int(g.Y)+int(g.Height/2)-8)
}

// drawPlayer squashes the body while JumpStretch decays and keeps its feet
// on the same line.
func (r *renderer) drawPlayer(screen *ebiten.Image, p *world.Player) {
	stretch := p.JumpStretch
	h := p.Height * (1 + 0.2*stretch)
	w := p.Width * (1 - 0.1*stretch)
	body := common.NewRect(p.Pos.X+(p.Width-w)/2, p.Pos.Y+p.Height-h, w, h)
	if p.Walking && p.Grounded {
		body.Y -= math.Abs(math.Sin(p.AnimFrame)) * 2
	}
	fillRect(screen, body, r.pal.player)
	strokeRect(screen, body, 2, r.pal.outline)

	eyeX := body.X + body.Width*0.65
	if !p.FacingRight {
		eyeX = body.X + body.Width*0.35
	}
	vector.FillCircle(screen, float32(eyeX), float32(body.Y+body.Height*0.3), 3, r.pal.outline, true)
}

func (r *renderer) drawGesture(screen *ebiten.Image, pad *sketch.Pad, thickness float64) {
	pv, ok := pad.Preview()
	if !ok {
		return
	}
	c := r.pal.invalid
	if pv.Valid {
		c = r.pal.valid
	}
	vector.StrokeLine(screen, float32(pv.Start.X), float32(pv.Start.Y), float32(pv.End.X), float32(pv.End.Y), 2, c, true)
	if pv.Valid {
		ghost := common.NewRect(math.Min(pv.Start.X, pv.End.X), math.Min(pv.Start.Y, pv.End.Y), math.Abs(pv.End.X-pv.Start.X), thickness)
		strokeRect(screen, ghost, 1, c)
	}
}
