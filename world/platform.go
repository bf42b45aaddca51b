package world

import (
	"fmt"
	"math"

	"github.com/milk9111/sketchjump/common"
)

// Kind tags a Platform with the behaviour its Update runs.
type Kind int

const (
	KindStatic Kind = iota
	KindTemporary
	KindMoving
	KindDisappearing
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindTemporary:
		return "temporary"
	case KindMoving:
		return "moving"
	case KindDisappearing:
		return "disappearing"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < KindStatic || k > KindDisappearing {
		return nil, fmt.Errorf("world: platform kind %d: %w", int(k), ErrInvalidLayout)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for c := KindStatic; c <= KindDisappearing; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("world: platform kind %q: %w", text, ErrInvalidLayout)
}

// TemporaryState is the fade timer of a drawn platform.
type TemporaryState struct {
	CreatedAt    int64 `json:"created_at" yaml:"created_at"`
	FadeMS       int64 `json:"fade_ms" yaml:"fade_ms"`
	FadeWindowMS int64 `json:"fade_window_ms" yaml:"fade_window_ms"`
}

// MovingState oscillates a platform horizontally between StartX and EndX.
type MovingState struct {
	StartX    float64 `json:"start_x" yaml:"start_x"`
	EndX      float64 `json:"end_x" yaml:"end_x"`
	Speed     float64 `json:"speed" yaml:"speed"`
	Direction float64 `json:"direction" yaml:"direction"`
}

// DisappearingState hides a platform for DisappearMS once TriggerDelayMS
// has passed since the player first touched it, then re-arms it.
type DisappearingState struct {
	Triggered      bool  `json:"triggered" yaml:"triggered"`
	TriggerAt      int64 `json:"trigger_at" yaml:"trigger_at"`
	TriggerDelayMS int64 `json:"trigger_delay_ms" yaml:"trigger_delay_ms"`
	DisappearMS    int64 `json:"disappear_ms" yaml:"disappear_ms"`
}

// Platform is a solid rectangle. Only the state block matching Kind is
// meaningful; inactive platforms take part in no collision test.
type Platform struct {
	common.Rect `yaml:",inline"`
	Kind        Kind `json:"kind" yaml:"kind"`
	Active      bool `json:"active" yaml:"active"`

	Temporary    TemporaryState    `json:"temporary,omitempty" yaml:"temporary,omitempty"`
	Moving       MovingState       `json:"moving,omitempty" yaml:"moving,omitempty"`
	Disappearing DisappearingState `json:"disappearing,omitempty" yaml:"disappearing,omitempty"`
}

func NewStatic(r common.Rect) *Platform {
	return &Platform{Rect: r, Kind: KindStatic, Active: true}
}

func NewTemporary(r common.Rect, now, fadeMS, fadeWindowMS int64) *Platform {
	return &Platform{
		Rect:   r,
		Kind:   KindTemporary,
		Active: true,
		Temporary: TemporaryState{
			CreatedAt:    now,
			FadeMS:       fadeMS,
			FadeWindowMS: fadeWindowMS,
		},
	}
}

// NewMoving places the platform at startX heading right.
func NewMoving(y, width, height, startX, endX, speed float64) *Platform {
	return &Platform{
		Rect:   common.NewRect(startX, y, width, height),
		Kind:   KindMoving,
		Active: true,
		Moving: MovingState{StartX: startX, EndX: endX, Speed: speed, Direction: 1},
	}
}

func NewDisappearing(r common.Rect, triggerDelayMS, disappearMS int64) *Platform {
	return &Platform{
		Rect:   r,
		Kind:   KindDisappearing,
		Active: true,
		Disappearing: DisappearingState{
			TriggerDelayMS: triggerDelayMS,
			DisappearMS:    disappearMS,
		},
	}
}

// Update advances the platform's timers to now. It runs once per frame
// before any collision test.
func (p *Platform) Update(now int64) {
	if p == nil {
		return
	}
	switch p.Kind {
	case KindTemporary:
		if p.Active && now-p.Temporary.CreatedAt >= p.Temporary.FadeMS {
			p.Active = false
		}
	case KindMoving:
		m := &p.Moving
		p.X += m.Speed * m.Direction
		if p.X <= m.StartX || p.X >= m.EndX {
			m.Direction = -m.Direction
		}
	case KindDisappearing:
		d := &p.Disappearing
		if !d.Triggered {
			p.Active = true
			return
		}
		elapsed := now - d.TriggerAt
		switch {
		case elapsed < d.TriggerDelayMS:
			p.Active = true
		case elapsed < d.TriggerDelayMS+d.DisappearMS:
			p.Active = false
		default:
			p.Active = true
			d.Triggered = false
		}
	}
}

// Trigger starts the hide countdown of a disappearing platform. It is a
// no-op for other kinds and for platforms already counting down.
func (p *Platform) Trigger(now int64) bool {
	if p == nil || p.Kind != KindDisappearing || p.Disappearing.Triggered {
		return false
	}
	p.Disappearing.Triggered = true
	p.Disappearing.TriggerAt = now
	return true
}

// Displacement is how far a moving platform travels per frame.
func (p *Platform) Displacement() float64 {
	if p == nil || p.Kind != KindMoving {
		return 0
	}
	return p.Moving.Speed * p.Moving.Direction
}

// RemainingMS is the life left on a temporary platform.
func (p *Platform) RemainingMS(now int64) int64 {
	if p == nil || p.Kind != KindTemporary {
		return 0
	}
	left := p.Temporary.FadeMS - (now - p.Temporary.CreatedAt)
	if left < 0 {
		return 0
	}
	return left
}

// FadeFraction is the opacity a renderer should use: 1 until the last fade
// window of a temporary platform, then remaining/window.
func (p *Platform) FadeFraction(now int64) float64 {
	if p == nil {
		return 0
	}
	if p.Kind != KindTemporary {
		return 1
	}
	if !p.Active {
		return 0
	}
	left := p.RemainingMS(now)
	if left >= p.Temporary.FadeWindowMS {
		return 1
	}
	return common.Clamp01(float64(left) / float64(p.Temporary.FadeWindowMS))
}

// Warning reports whether a disappearing platform is in its pre-hide phase.
func (p *Platform) Warning(now int64) bool {
	if p == nil || p.Kind != KindDisappearing || !p.Disappearing.Triggered {
		return false
	}
	elapsed := now - p.Disappearing.TriggerAt
	return elapsed >= 0 && elapsed < p.Disappearing.TriggerDelayMS
}

// FlashPhase is the warning flicker opacity in [0.5, 1]; the flicker speeds
// up as the hide approaches. Outside the warning phase it is 1.
func (p *Platform) FlashPhase(now int64) float64 {
	if !p.Warning(now) {
		return 1
	}
	elapsed := now - p.Disappearing.TriggerAt
	speed := math.Max(1, float64(p.Disappearing.TriggerDelayMS-elapsed)) / 200
	return common.Lerp(0.5, 1, (1+math.Sin(float64(now)*speed/100))/2)
}
