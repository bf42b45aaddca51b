// Package engine runs the single-threaded frame loop over one World: it
// applies discrete input, advances platform timers, resolves the player
// and moves the run from level to level.
package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/sketchjump/levelgen"
	"github.com/milk9111/sketchjump/physics"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/sketch"
	"github.com/milk9111/sketchjump/world"
)

// Session owns every piece of mutable game state. Only the goroutine that
// calls Update may touch it.
type Session struct {
	tuning prefabs.Tuning
	seed   uint64
	level  int

	world    *world.World
	player   *world.Player
	pad      *sketch.Pad
	resolver *physics.Resolver
	gen      *levelgen.Generator
	// next replaces gen when the run moves to another level, so a reset
	// rebuilds the current level with the generator that made it.
	next *levelgen.Generator
	// fixed, when set, is played instead of generating its level.
	fixed *world.Layout

	scheduler *Scheduler
	events    EventQueue
	logger    *log.Logger

	now    int64
	input  FrameInput
	report physics.Report
	frames int
}

type Option func(*Session)

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLevel starts the run at a level other than 1.
func WithLevel(level int) Option {
	return func(s *Session) {
		s.level = level
	}
}

// WithLayout starts the run on a saved layout. Its level is played as
// stored, resets restore it, and later levels are generated as usual.
func WithLayout(l world.Layout) Option {
	return func(s *Session) {
		l = l.Clone()
		s.fixed = &l
		s.level = l.Level
	}
}

// NewSession validates the tuning and loads the first level at time now.
func NewSession(t prefabs.Tuning, seed uint64, now int64, opts ...Option) (*Session, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("engine: new session: %w", err)
	}

	s := &Session{
		tuning:   t,
		seed:     seed,
		level:    1,
		pad:      sketch.NewPad(t.Sketch, t.Platforms),
		resolver: physics.NewResolver(physics.ConfigFromSpec(t.Player)),
		gen:      levelgen.New(t),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.level < 1 {
		return nil, fmt.Errorf("engine: start level %d: %w", s.level, levelgen.ErrInvalidLevel)
	}
	if s.fixed != nil {
		if err := s.fixed.Validate(); err != nil {
			return nil, fmt.Errorf("engine: new session: %w", err)
		}
	}

	s.scheduler = NewScheduler(
		NewPlatformSystem(),
		NewPruneSystem(),
		NewResolverSystem(),
		NewAnimationSystem(),
		NewGoalSystem(),
	)

	if err := s.load(s.level, now); err != nil {
		return nil, err
	}
	s.events.Push(Event{Kind: EventLevelLoaded, Level: s.level, Strategy: s.world.Strategy, At: now})
	return s, nil
}

// Update advances the session by one frame.
func (s *Session) Update(in FrameInput, now int64) error {
	s.now = now
	s.input = in
	s.report = physics.Report{}
	s.frames++

	for _, evt := range in.Events {
		if err := s.handle(evt); err != nil {
			return err
		}
	}
	return s.scheduler.Update(s)
}

func (s *Session) handle(evt InputEvent) error {
	switch evt.Kind {
	case InputReset:
		return s.Reset(s.now)
	case InputClearDrawn:
		s.ClearDrawn()
	case InputGestureStart:
		if !s.world.CanDraw() {
			return nil
		}
		s.pad.Start(evt.Point)
	case InputGestureMove:
		s.pad.Move(evt.Point)
	case InputGestureEnd:
		if !s.pad.Drawing() {
			return nil
		}
		p, ok := s.pad.Finish(evt.Point, s.now)
		if !ok || !s.world.AddDrawn(p) {
			s.logger.Debug("gesture rejected", "at", evt.Point)
			s.events.Push(Event{Kind: EventGestureRejected, Level: s.level, At: s.now})
			return nil
		}
		s.events.Push(Event{Kind: EventPlatformDrawn, Level: s.level, Platform: p, At: s.now})
	}
	return nil
}

// Reset reinstates the current level exactly as generated. Score is kept.
func (s *Session) Reset(now int64) error {
	if err := s.load(s.level, now); err != nil {
		return err
	}
	s.logger.Info("level reset", "level", s.level)
	s.events.Push(Event{Kind: EventLevelReset, Level: s.level, Strategy: s.world.Strategy, At: now})
	return nil
}

func (s *Session) ClearDrawn() {
	s.pad.Cancel()
	if len(s.world.Drawn()) == 0 {
		return
	}
	s.world.ClearDrawn()
	s.events.Push(Event{Kind: EventDrawnCleared, Level: s.level, At: s.now})
}

// Advance regenerates the world for the next level, picking up any
// generator tuning applied since the current level loaded.
func (s *Session) Advance(now int64) error {
	prev := s.gen
	if s.next != nil {
		s.gen = s.next
	}
	if err := s.load(s.level+1, now); err != nil {
		s.gen = prev
		return err
	}
	s.next = nil
	s.events.Push(Event{Kind: EventLevelLoaded, Level: s.level, Strategy: s.world.Strategy, At: now})
	return nil
}

// load replaces the world wholesale; on error the current world is kept.
func (s *Session) load(level int, now int64) error {
	layout, err := s.layoutFor(level)
	if err != nil {
		return fmt.Errorf("engine: load level %d: %w", level, err)
	}

	reachable := levelgen.Audit(layout, levelgen.JumpReach(s.tuning.Player))
	s.logger.Info("level loaded",
		"level", level,
		"strategy", layout.Strategy,
		"seed", s.seed,
		"platforms", len(layout.Platforms),
		"moving", len(layout.Moving),
		"disappearing", len(layout.Disappearing),
		"spikes", len(layout.Spikes),
		"collectibles", len(layout.Collectibles),
		"max_drawn", layout.MaxDrawn,
	)
	if !reachable {
		s.logger.Info("goal needs drawing", "level", level, "strategy", layout.Strategy)
	}

	score := 0
	var hazardAt int64
	hazardHit := false
	if s.player != nil {
		score = s.player.Score
		hazardAt, hazardHit = s.player.LastHazardHit()
	}
	player := world.NewPlayer(layout.Spawn, s.tuning.Player.Width, s.tuning.Player.Height)
	player.Score = score
	if hazardHit {
		player.MarkHazard(hazardAt)
	}

	s.world = world.New(layout)
	s.player = player
	s.level = level
	s.now = now
	s.pad.Cancel()
	return nil
}

func (s *Session) layoutFor(level int) (world.Layout, error) {
	if s.fixed != nil && s.fixed.Level == level {
		return s.fixed.Clone(), nil
	}
	return s.gen.Generate(level, levelgen.LevelRand(s.seed, level))
}

// ApplyTuning swaps in reloaded tuning. Movement and drawing pick it up on
// the next frame. Generator changes wait for the next level; Reset keeps
// rebuilding the current one as it was first generated.
func (s *Session) ApplyTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("engine: apply tuning: %w", err)
	}
	s.tuning = t
	s.resolver.SetConfig(physics.ConfigFromSpec(t.Player))
	s.pad.SetSpec(t.Sketch, t.Platforms)
	s.next = levelgen.New(t)
	s.player.Width = t.Player.Width
	s.player.Height = t.Player.Height
	s.logger.Info("tuning applied")
	return nil
}

// Events drains what happened since the last call.
func (s *Session) Events() []Event {
	return s.events.Drain()
}

func (s *Session) Level() int             { return s.level }
func (s *Session) Seed() uint64           { return s.seed }
func (s *Session) World() *world.World    { return s.world }
func (s *Session) Player() *world.Player  { return s.player }
func (s *Session) Pad() *sketch.Pad       { return s.pad }
func (s *Session) Tuning() prefabs.Tuning { return s.tuning }
func (s *Session) Report() physics.Report { return s.report }
func (s *Session) Now() int64             { return s.now }
func (s *Session) Frames() int            { return s.frames }
func (s *Session) Score() int             { return s.player.Score }
func (s *Session) Difficulty() int        { return s.gen.Difficulty(s.level) }
func (s *Session) Logger() *log.Logger    { return s.logger }
func (s *Session) Input() FrameInput      { return s.input }

// StrategyName is the HUD label of the current level's strategy.
func (s *Session) StrategyName() string {
	st, err := levelgen.ParseStrategy(s.world.Strategy)
	if err != nil {
		return s.world.Strategy
	}
	return st.DisplayName()
}
