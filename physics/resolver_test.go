package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/world"
)

var testConfig = Config{
	MoveSpeed:        5,
	JumpSpeed:        -15,
	Gravity:          0.8,
	HazardCooldownMS: 1000,
	CollectibleScore: 10,
}

func newTestWorld(l world.Layout) *world.World {
	l.Width = 1200
	l.Height = 800
	l.Spawn = cp.Vector{X: 50, Y: 600}
	if len(l.Platforms) == 0 {
		l.Platforms = []*world.Platform{world.NewStatic(common.NewRect(0, 750, 200, 50))}
	}
	return world.New(l)
}

func newTestPlayer(x, y float64) *world.Player {
	p := world.NewPlayer(cp.Vector{X: 50, Y: 600}, 30, 40)
	p.Pos = cp.Vector{X: x, Y: y}
	return p
}

func TestLanding(t *testing.T) {
	plat := world.NewStatic(common.NewRect(80, 500, 100, 20))
	w := newTestWorld(world.Layout{Platforms: []*world.Platform{plat}})
	p := newTestPlayer(100, 458)
	p.Vel.Y = 4

	rep := NewResolver(testConfig).Step(w, p, Input{}, 0)

	if p.Pos.Y+p.Height != plat.Top() {
		t.Fatalf("expected bottom %v at platform top %v", p.Pos.Y+p.Height, plat.Top())
	}
	if p.Vel.Y != 0 || !p.Grounded {
		t.Fatalf("expected vy=0 and grounded, got vy=%v grounded=%v", p.Vel.Y, p.Grounded)
	}
	if rep.Landed != plat {
		t.Fatalf("report should name the landing platform")
	}
}

func TestLandingFromAnyHeight(t *testing.T) {
	cases := []struct {
		name string
		y    float64
		vy   float64
	}{
		{"slow", 459, 0.5},
		{"fast", 450, 12},
		{"barely_touching", 460, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			plat := world.NewStatic(common.NewRect(0, 500, 400, 20))
			w := newTestWorld(world.Layout{Platforms: []*world.Platform{plat}})
			p := newTestPlayer(100, c.y)
			p.Vel.Y = c.vy
			NewResolver(testConfig).Step(w, p, Input{}, 0)
			if p.Pos.Y != 460 || p.Vel.Y != 0 || !p.Grounded {
				t.Fatalf("y=%v vy=%v grounded=%v", p.Pos.Y, p.Vel.Y, p.Grounded)
			}
		})
	}
}

func TestMovingPlatformCarry(t *testing.T) {
	plat := world.NewMoving(500, 100, 20, 80, 400, 2)
	w := newTestWorld(world.Layout{Moving: []*world.Platform{plat}})
	p := newTestPlayer(100, 460)
	p.Grounded = true

	NewResolver(testConfig).Step(w, p, Input{}, 0)

	if p.Pos.X != 102 {
		t.Fatalf("expected carry to x=102, got %v", p.Pos.X)
	}
	if p.Pos.Y != 460 || !p.Grounded {
		t.Fatalf("expected player to stay on the platform, y=%v grounded=%v", p.Pos.Y, p.Grounded)
	}
}

func TestMovingPlatformCarryLeft(t *testing.T) {
	plat := world.NewMoving(500, 100, 20, 80, 400, 2)
	plat.Moving.Direction = -1
	w := newTestWorld(world.Layout{Moving: []*world.Platform{plat}})
	p := newTestPlayer(100, 460)
	p.Grounded = true

	NewResolver(testConfig).Step(w, p, Input{Right: true}, 0)

	if p.Pos.X != 103 {
		t.Fatalf("expected input +5 and carry -2 to give x=103, got %v", p.Pos.X)
	}
}

func TestCeilingHit(t *testing.T) {
	plat := world.NewStatic(common.NewRect(80, 300, 100, 20))
	w := newTestWorld(world.Layout{Platforms: []*world.Platform{plat}})
	p := newTestPlayer(100, 321)
	p.Vel.Y = -10

	NewResolver(testConfig).Step(w, p, Input{}, 0)

	if p.Pos.Y != plat.Bottom() {
		t.Fatalf("expected top snapped to %v, got %v", plat.Bottom(), p.Pos.Y)
	}
	if p.Vel.Y != 0 || p.Grounded {
		t.Fatalf("expected vy=0 and not grounded, got vy=%v grounded=%v", p.Vel.Y, p.Grounded)
	}
}

func TestSideHit(t *testing.T) {
	wall := world.NewStatic(common.NewRect(200, 200, 20, 200))
	cases := []struct {
		name  string
		x     float64
		in    Input
		wantX float64
	}{
		{"moving_right", 168, Input{Right: true}, 170},
		{"moving_left", 222, Input{Left: true}, 220},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(world.Layout{Platforms: []*world.Platform{wall}})
			p := newTestPlayer(c.x, 250)
			NewResolver(testConfig).Step(w, p, c.in, 0)
			if p.Pos.X != c.wantX {
				t.Fatalf("expected x=%v, got %v", c.wantX, p.Pos.X)
			}
			if p.Vel.X == 0 {
				t.Fatalf("side hit should not zero horizontal velocity")
			}
		})
	}
}

func TestJumpRequiresGround(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
		jumped   bool
	}{
		{"grounded", true, true},
		{"airborne", false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(world.Layout{})
			p := newTestPlayer(500, 300)
			p.Grounded = c.grounded
			rep := NewResolver(testConfig).Step(w, p, Input{Jump: true}, 0)
			if rep.Jumped != c.jumped {
				t.Fatalf("jumped=%v, want %v", rep.Jumped, c.jumped)
			}
			if c.jumped && p.Vel.Y != testConfig.JumpSpeed+testConfig.Gravity {
				t.Fatalf("unexpected vy after jump: %v", p.Vel.Y)
			}
			if c.jumped && p.Grounded {
				t.Fatalf("jump should clear grounded")
			}
		})
	}
}

func TestHorizontalInput(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		vx   float64
	}{
		{"none", Input{}, 0},
		{"left", Input{Left: true}, -5},
		{"right", Input{Right: true}, 5},
		{"both", Input{Left: true, Right: true}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(world.Layout{})
			p := newTestPlayer(500, 300)
			NewResolver(testConfig).Step(w, p, c.in, 0)
			if p.Vel.X != c.vx {
				t.Fatalf("vx=%v, want %v", p.Vel.X, c.vx)
			}
		})
	}
}

func TestGravityIsUncapped(t *testing.T) {
	w := newTestWorld(world.Layout{})
	p := newTestPlayer(500, -10000)
	r := NewResolver(testConfig)
	for i := 0; i < 100; i++ {
		r.Step(w, p, Input{}, 0)
	}
	if p.Vel.Y < 79 {
		t.Fatalf("expected vy to keep growing, got %v", p.Vel.Y)
	}
}

func TestInactivePlatformIgnored(t *testing.T) {
	plat := world.NewStatic(common.NewRect(80, 500, 100, 20))
	plat.Active = false
	w := newTestWorld(world.Layout{Platforms: []*world.Platform{plat}})
	p := newTestPlayer(100, 458)
	p.Vel.Y = 4

	NewResolver(testConfig).Step(w, p, Input{}, 0)

	if p.Grounded || p.Vel.Y == 0 {
		t.Fatalf("inactive platform should not support the player")
	}
}

func TestDisappearingTriggeredOnAnyFace(t *testing.T) {
	plat := world.NewDisappearing(common.NewRect(200, 200, 20, 200), 2000, 3000)
	w := newTestWorld(world.Layout{Disappearing: []*world.Platform{plat}})
	p := newTestPlayer(168, 250)

	rep := NewResolver(testConfig).Step(w, p, Input{Right: true}, 1234)

	if !plat.Disappearing.Triggered || plat.Disappearing.TriggerAt != 1234 {
		t.Fatalf("side contact should trigger the platform: %+v", plat.Disappearing)
	}
	if len(rep.Triggered) != 1 {
		t.Fatalf("expected one triggered platform in report, got %d", len(rep.Triggered))
	}

	p.Pos.X = 168
	rep = NewResolver(testConfig).Step(w, p, Input{Right: true}, 1500)
	if plat.Disappearing.TriggerAt != 1234 || len(rep.Triggered) != 0 {
		t.Fatalf("re-triggering should be a no-op")
	}
}

func TestHazardCooldown(t *testing.T) {
	spike := world.NewSpike(common.NewRect(500, 300, 60, 20))
	w := newTestWorld(world.Layout{Spikes: []*world.Spike{spike}})
	r := NewResolver(testConfig)
	p := newTestPlayer(510, 290)

	steps := []struct {
		now     int64
		respawn bool
	}{
		{0, true},
		{500, false},
		{999, false},
		{1000, true},
		{2500, true},
		{2600, false},
	}
	for _, s := range steps {
		p.Pos = cp.Vector{X: 510, Y: 290}
		p.Vel = cp.Vector{}
		rep := r.Step(w, p, Input{}, s.now)
		if got := rep.Respawn == RespawnHazard; got != s.respawn {
			t.Fatalf("t=%d: respawn=%v, want %v", s.now, got, s.respawn)
		}
		if s.respawn && p.Pos != p.Spawn {
			t.Fatalf("t=%d: expected player at spawn, got %+v", s.now, p.Pos)
		}
	}
}

func TestHazardSingleRespawnPerFrame(t *testing.T) {
	spikes := []*world.Spike{
		world.NewSpike(common.NewRect(500, 300, 60, 20)),
		world.NewSpike(common.NewRect(505, 310, 60, 20)),
	}
	w := newTestWorld(world.Layout{Spikes: spikes})
	p := newTestPlayer(510, 290)
	rep := NewResolver(testConfig).Step(w, p, Input{}, 0)
	if rep.Respawn != RespawnHazard {
		t.Fatalf("expected hazard respawn")
	}
	if last, _ := p.LastHazardHit(); last != 0 {
		t.Fatalf("unexpected last hit %d", last)
	}
}

func TestCollectibles(t *testing.T) {
	a := world.NewCollectible(common.NewRect(500, 300, 20, 20))
	b := world.NewCollectible(common.NewRect(515, 310, 20, 20))
	far := world.NewCollectible(common.NewRect(900, 100, 20, 20))
	w := newTestWorld(world.Layout{Collectibles: []*world.Collectible{a, b, far}})
	p := newTestPlayer(505, 290)
	p.Score = 5
	r := NewResolver(testConfig)

	rep := r.Step(w, p, Input{}, 0)
	if len(rep.Collected) != 2 || rep.Points != 20 {
		t.Fatalf("expected both nearby collectibles, got %d (+%d)", len(rep.Collected), rep.Points)
	}
	if p.Score != 25 {
		t.Fatalf("expected score 25, got %d", p.Score)
	}

	for i := 0; i < 5; i++ {
		p.Pos = cp.Vector{X: 505, Y: 290}
		p.Vel = cp.Vector{}
		r.Step(w, p, Input{}, int64(i))
	}
	if p.Score != 25 {
		t.Fatalf("collected items awarded score again: %d", p.Score)
	}
	if far.Collected {
		t.Fatalf("far collectible should remain")
	}
}

func TestFallingBelowWorldRespawns(t *testing.T) {
	w := newTestWorld(world.Layout{})
	p := newTestPlayer(600, 795)
	p.Vel.Y = 10
	p.Score = 40

	rep := NewResolver(testConfig).Step(w, p, Input{}, 0)

	if rep.Respawn != RespawnFell {
		t.Fatalf("expected fell respawn, got %v", rep.Respawn)
	}
	if p.Pos != p.Spawn || p.Vel != (cp.Vector{}) || p.Score != 40 {
		t.Fatalf("unexpected player after fall: %+v", p)
	}
}

func TestHorizontalClamp(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		in    Input
		wantX float64
	}{
		{"left_edge", 2, Input{Left: true}, 0},
		{"right_edge", 1168, Input{Right: true}, 1170},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(world.Layout{})
			p := newTestPlayer(c.x, 100)
			NewResolver(testConfig).Step(w, p, c.in, 0)
			if p.Pos.X != c.wantX {
				t.Fatalf("x=%v, want %v", p.Pos.X, c.wantX)
			}
		})
	}
}
