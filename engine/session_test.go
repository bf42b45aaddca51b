package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/levelgen"
	"github.com/milk9111/sketchjump/physics"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/world"
)

const testSeed = 42

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(prefabs.MustLoadTuning(), testSeed, 0, opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func kinds(evts []Event) []EventKind {
	out := make([]EventKind, 0, len(evts))
	for _, e := range evts {
		out = append(out, e.Kind)
	}
	return out
}

func hasEvent(evts []Event, k EventKind) bool {
	for _, e := range evts {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func gesture(from, to cp.Vector) []InputEvent {
	return []InputEvent{GestureStart(from), GestureMove(to), GestureEnd(to)}
}

func TestNewSessionLoadsFirstLevel(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSession(t, WithLogger(log.New(&buf)))

	if s.Level() != 1 {
		t.Fatalf("expected level 1, got %d", s.Level())
	}
	w := s.World()
	if len(w.Static()) == 0 || len(w.Goals) != 1 {
		t.Fatalf("expected ground and one goal, got %d platforms %d goals", len(w.Static()), len(w.Goals))
	}
	if w.Strategy != levelgen.HorizontalGaps.String() {
		t.Fatalf("unexpected first strategy %s", w.Strategy)
	}
	if s.StrategyName() != "Horizontal Gaps" {
		t.Fatalf("unexpected display name %q", s.StrategyName())
	}
	if s.Player().Pos != w.Spawn {
		t.Fatalf("player not at spawn")
	}
	evts := s.Events()
	if len(evts) != 1 || evts[0].Kind != EventLevelLoaded || evts[0].Level != 1 {
		t.Fatalf("unexpected events %v", kinds(evts))
	}
	if !strings.Contains(buf.String(), "level loaded") {
		t.Fatalf("expected level load to be logged, got %q", buf.String())
	}
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	if _, err := NewSession(prefabs.MustLoadTuning(), 1, 0, WithLevel(0)); !errors.Is(err, levelgen.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}

	bad := prefabs.MustLoadTuning()
	bad.Sketch.Thickness = 0
	if _, err := NewSession(bad, 1, 0); !errors.Is(err, prefabs.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	a := newTestSession(t, WithLevel(5))
	b := newTestSession(t, WithLevel(5))
	pa, pb := a.World().Platforms(), b.World().Platforms()
	if len(pa) != len(pb) {
		t.Fatalf("platform count differs: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Rect != pb[i].Rect {
			t.Fatalf("platform %d differs: %+v vs %+v", i, pa[i].Rect, pb[i].Rect)
		}
	}
}

func TestGoalAdvancesLevel(t *testing.T) {
	s := newTestSession(t)
	s.Events()
	s.Player().Score = 20
	before := s.Difficulty()

	goal := world.NewGoal(common.NewRect(600, 100, 40, 60))
	s.World().Goals = []*world.Goal{goal}
	s.Player().Pos = cp.Vector{X: goal.X + 5, Y: goal.Y + 10}

	if err := s.Update(FrameInput{}, 16); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.Level() != 2 {
		t.Fatalf("expected level 2, got %d", s.Level())
	}
	if s.Difficulty() < before {
		t.Fatalf("difficulty dropped from %d to %d", before, s.Difficulty())
	}
	if s.World().Strategy != levelgen.VerticalClimb.String() {
		t.Fatalf("unexpected second strategy %s", s.World().Strategy)
	}
	if s.Score() != 20 {
		t.Fatalf("score not carried over: %d", s.Score())
	}
	if s.Player().Pos != s.World().Spawn || s.Player().Vel != (cp.Vector{}) {
		t.Fatalf("player not respawned on new level")
	}

	evts := s.Events()
	if !hasEvent(evts, EventGoalReached) || !hasEvent(evts, EventLevelLoaded) {
		t.Fatalf("unexpected events %v", kinds(evts))
	}
}

func TestResetReinstatesLevel(t *testing.T) {
	s := newTestSession(t)
	want, err := levelgen.New(prefabs.MustLoadTuning()).Generate(1, levelgen.LevelRand(testSeed, 1))
	if err != nil {
		t.Fatal(err)
	}

	s.Player().Score = 30
	in := FrameInput{Events: gesture(cp.Vector{X: 300, Y: 100}, cp.Vector{X: 400, Y: 100})}
	if err := s.Update(in, 16); err != nil {
		t.Fatal(err)
	}
	if len(s.World().Drawn()) != 1 {
		t.Fatalf("expected one drawn platform")
	}
	s.World().Collectibles = nil
	s.Events()

	if err := s.Update(FrameInput{Events: []InputEvent{{Kind: InputReset}}}, 32); err != nil {
		t.Fatal(err)
	}
	if len(s.World().Drawn()) != 0 {
		t.Fatalf("reset should drop drawn platforms")
	}
	if s.Score() != 30 {
		t.Fatalf("reset should keep score, got %d", s.Score())
	}
	if len(s.World().Collectibles) != len(want.Collectibles) {
		t.Fatalf("reset should restore collectibles")
	}
	static := s.World().Static()
	if len(static) != len(want.Platforms) {
		t.Fatalf("expected %d platforms, got %d", len(want.Platforms), len(static))
	}
	for i := range static {
		if static[i].Rect != want.Platforms[i].Rect {
			t.Fatalf("platform %d differs after reset", i)
		}
	}
	if !hasEvent(s.Events(), EventLevelReset) {
		t.Fatalf("expected a reset event")
	}
}

func TestDrawingBudget(t *testing.T) {
	s := newTestSession(t)
	s.Events()
	if s.World().MaxDrawn != 2 {
		t.Fatalf("expected budget 2 on level 1, got %d", s.World().MaxDrawn)
	}

	now := int64(0)
	for i := 0; i < 3; i++ {
		now += 16
		x := 300 + float64(i)*150
		in := FrameInput{Events: gesture(cp.Vector{X: x, Y: 100}, cp.Vector{X: x + 100, Y: 100})}
		if err := s.Update(in, now); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(s.World().Drawn()); got != 2 {
		t.Fatalf("expected the budget to cap drawn platforms at 2, got %d", got)
	}
	if s.World().DrawnRemaining() != 0 {
		t.Fatalf("expected no drawing left")
	}

	drawn := 0
	for _, e := range s.Events() {
		if e.Kind == EventPlatformDrawn {
			drawn++
		}
	}
	if drawn != 2 {
		t.Fatalf("expected 2 draw events, got %d", drawn)
	}
}

func TestShortGestureRejected(t *testing.T) {
	s := newTestSession(t)
	s.Events()
	in := FrameInput{Events: gesture(cp.Vector{X: 100, Y: 100}, cp.Vector{X: 100, Y: 105})}
	if err := s.Update(in, 16); err != nil {
		t.Fatal(err)
	}
	if len(s.World().Drawn()) != 0 {
		t.Fatalf("short gesture should not create a platform")
	}
	if !hasEvent(s.Events(), EventGestureRejected) {
		t.Fatalf("expected rejection event")
	}
}

func TestFadedPlatformsArePruned(t *testing.T) {
	s := newTestSession(t)
	in := FrameInput{Events: gesture(cp.Vector{X: 300, Y: 100}, cp.Vector{X: 400, Y: 100})}
	if err := s.Update(in, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(FrameInput{}, 4999); err != nil {
		t.Fatal(err)
	}
	if len(s.World().Drawn()) != 1 {
		t.Fatalf("platform should still exist before its fade time")
	}
	if err := s.Update(FrameInput{}, 5000); err != nil {
		t.Fatal(err)
	}
	if len(s.World().Drawn()) != 0 {
		t.Fatalf("faded platform should be pruned")
	}
	if s.World().DrawnRemaining() != s.World().MaxDrawn {
		t.Fatalf("pruning should free the budget")
	}
}

func TestClearDrawn(t *testing.T) {
	s := newTestSession(t)
	in := FrameInput{Events: append(
		gesture(cp.Vector{X: 300, Y: 100}, cp.Vector{X: 400, Y: 100}),
		InputEvent{Kind: InputClearDrawn},
	)}
	if err := s.Update(in, 16); err != nil {
		t.Fatal(err)
	}
	if len(s.World().Drawn()) != 0 {
		t.Fatalf("clear should drop drawn platforms")
	}
	if !hasEvent(s.Events(), EventDrawnCleared) {
		t.Fatalf("expected clear event")
	}
}

func TestFallRespawns(t *testing.T) {
	s := newTestSession(t)
	s.Events()
	s.Player().Pos = cp.Vector{X: 600, Y: s.World().Height + 5}

	if err := s.Update(FrameInput{}, 16); err != nil {
		t.Fatal(err)
	}
	evts := s.Events()
	if len(evts) != 1 || evts[0].Kind != EventRespawned || evts[0].Reason != physics.RespawnFell {
		t.Fatalf("unexpected events %v", kinds(evts))
	}
	if s.Player().Pos != s.World().Spawn {
		t.Fatalf("player not back at spawn")
	}
}

func TestCollectEmitsEvent(t *testing.T) {
	s := newTestSession(t)
	s.Events()
	c := world.NewCollectible(s.World().Static()[0].Rect)
	c.Y -= 100
	c.Width, c.Height = 20, 20
	s.World().Collectibles = []*world.Collectible{c}
	s.Player().Pos = cp.Vector{X: c.X, Y: c.Y}

	if err := s.Update(FrameInput{}, 16); err != nil {
		t.Fatal(err)
	}
	if s.Score() != 10 {
		t.Fatalf("expected score 10, got %d", s.Score())
	}
	if !hasEvent(s.Events(), EventCollected) {
		t.Fatalf("expected collect event")
	}
	if c.Phase != 0 {
		t.Fatalf("collected pickups should stop animating")
	}
}

func TestAnimationPhases(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 10; i++ {
		if err := s.Update(FrameInput{}, int64(i)*16); err != nil {
			t.Fatal(err)
		}
	}
	g := s.World().Goals[0]
	if g.Phase < 0.99 || g.Phase > 1.01 {
		t.Fatalf("expected goal phase ~1.0 after 10 frames, got %v", g.Phase)
	}
}

func TestApplyTuning(t *testing.T) {
	s := newTestSession(t)
	tun := prefabs.MustLoadTuning()
	tun.Player.MoveSpeed = 8
	if err := s.ApplyTuning(tun); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(FrameInput{Move: physics.Input{Right: true}}, 16); err != nil {
		t.Fatal(err)
	}
	if s.Player().Vel.X != 8 {
		t.Fatalf("expected new move speed, got %v", s.Player().Vel.X)
	}

	tun.Player.Gravity = -1
	if err := s.ApplyTuning(tun); err == nil {
		t.Fatalf("expected invalid tuning to be rejected")
	}
}

func TestResetKeepsLayoutAfterTuning(t *testing.T) {
	s := newTestSession(t)
	ground := s.World().Static()[0].Rect
	goal := s.World().Goals[0].Rect

	tun := prefabs.MustLoadTuning()
	tun.Generator.GroundWidth = 400
	tun.Generator.GoalMargin = 100
	if err := s.ApplyTuning(tun); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(16); err != nil {
		t.Fatal(err)
	}
	if got := s.World().Static()[0].Rect; got != ground {
		t.Fatalf("reset ground %v, want %v", got, ground)
	}
	if got := s.World().Goals[0].Rect; got != goal {
		t.Fatalf("reset goal %v, want %v", got, goal)
	}

	if err := s.Advance(32); err != nil {
		t.Fatal(err)
	}
	if w := s.World().Static()[0].Width; w != 400 {
		t.Fatalf("next level ground width %v, want 400", w)
	}
}

func TestWithLayout(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	saved, err := levelgen.New(tun).Generate(3, levelgen.LevelRand(7, 3))
	if err != nil {
		t.Fatal(err)
	}
	saved.Collectibles = []*world.Collectible{world.NewCollectible(common.NewRect(600, 100, 20, 20))}

	s, err := NewSession(tun, 7, 0, WithLayout(saved))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Level() != 3 || s.World().Strategy != saved.Strategy {
		t.Fatalf("expected saved level 3 %s, got %d %s", saved.Strategy, s.Level(), s.World().Strategy)
	}
	if len(s.World().Collectibles) != 1 {
		t.Fatalf("expected the saved collectible, got %d", len(s.World().Collectibles))
	}

	s.World().Collectibles[0].Collected = true
	if err := s.Reset(16); err != nil {
		t.Fatal(err)
	}
	if s.World().Collectibles[0].Collected {
		t.Fatalf("reset should restore the saved collectible")
	}
	if saved.Collectibles[0].Collected {
		t.Fatalf("session must not mutate the caller's layout")
	}

	if err := s.Advance(32); err != nil {
		t.Fatal(err)
	}
	want, err := levelgen.New(tun).Generate(4, levelgen.LevelRand(7, 4))
	if err != nil {
		t.Fatal(err)
	}
	if s.Level() != 4 || s.World().Strategy != want.Strategy {
		t.Fatalf("expected generated level 4, got %d %s", s.Level(), s.World().Strategy)
	}
}

func TestWithLayoutRejectsInvalid(t *testing.T) {
	bad := world.Layout{Level: 1, Width: 1200, Height: 800}
	if _, err := NewSession(prefabs.MustLoadTuning(), 1, 0, WithLayout(bad)); !errors.Is(err, world.ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
}
