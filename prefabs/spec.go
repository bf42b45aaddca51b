package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec wraps every validation failure reported by a spec.
var ErrInvalidSpec = errors.New("invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`
	SpawnX    float64 `yaml:"spawn_x"`
	// SpawnAboveBottom is measured upward from the bottom of the world.
	SpawnAboveBottom float64 `yaml:"spawn_above_bottom"`
	HazardCooldownMS int64   `yaml:"hazard_cooldown_ms"`
	CollectibleScore int     `yaml:"collectible_score"`
	// JumpRequiresPress disables jumping by simply holding the key.
	JumpRequiresPress bool `yaml:"jump_requires_press"`
}

func (s PlayerSpec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("player: size %gx%g: %w", s.Width, s.Height, ErrInvalidSpec)
	case s.MoveSpeed < 0:
		return fmt.Errorf("player: move_speed %g: %w", s.MoveSpeed, ErrInvalidSpec)
	case s.JumpSpeed >= 0:
		return fmt.Errorf("player: jump_speed must be negative, got %g: %w", s.JumpSpeed, ErrInvalidSpec)
	case s.Gravity <= 0:
		return fmt.Errorf("player: gravity %g: %w", s.Gravity, ErrInvalidSpec)
	case s.HazardCooldownMS < 0:
		return fmt.Errorf("player: hazard_cooldown_ms %d: %w", s.HazardCooldownMS, ErrInvalidSpec)
	}
	return nil
}

type PlatformsSpec struct {
	Thickness    float64 `yaml:"thickness"`
	FadeMS       int64   `yaml:"fade_ms"`
	FadeWindowMS int64   `yaml:"fade_window_ms"`
	MovingSpeed  float64 `yaml:"moving_speed"`
	MovingWidth  float64 `yaml:"moving_width"`
	// Disappearing platforms wait TriggerDelayMS minus TriggerDelayStepMS
	// per difficulty point, never less than MinTriggerDelayMS, and stay
	// hidden for DisappearMS plus up to DisappearJitterMS.
	TriggerDelayMS     int64 `yaml:"trigger_delay_ms"`
	TriggerDelayStepMS int64 `yaml:"trigger_delay_step_ms"`
	MinTriggerDelayMS  int64 `yaml:"min_trigger_delay_ms"`
	DisappearMS        int64 `yaml:"disappear_ms"`
	DisappearJitterMS  int64 `yaml:"disappear_jitter_ms"`
}

func (s PlatformsSpec) Validate() error {
	switch {
	case s.Thickness <= 0:
		return fmt.Errorf("platforms: thickness %g: %w", s.Thickness, ErrInvalidSpec)
	case s.FadeMS <= 0 || s.FadeWindowMS <= 0:
		return fmt.Errorf("platforms: fade %d/%d: %w", s.FadeMS, s.FadeWindowMS, ErrInvalidSpec)
	case s.MovingSpeed <= 0 || s.MovingWidth <= 0:
		return fmt.Errorf("platforms: moving %g/%g: %w", s.MovingSpeed, s.MovingWidth, ErrInvalidSpec)
	case s.MinTriggerDelayMS < 0 || s.TriggerDelayMS < s.MinTriggerDelayMS || s.TriggerDelayStepMS < 0:
		return fmt.Errorf("platforms: trigger delay %d (min %d): %w", s.TriggerDelayMS, s.MinTriggerDelayMS, ErrInvalidSpec)
	case s.DisappearMS <= 0 || s.DisappearJitterMS < 0:
		return fmt.Errorf("platforms: disappear %d+%d: %w", s.DisappearMS, s.DisappearJitterMS, ErrInvalidSpec)
	}
	return nil
}

type GeneratorSpec struct {
	WorldWidth                 float64 `yaml:"world_width"`
	WorldHeight                float64 `yaml:"world_height"`
	GroundWidth                float64 `yaml:"ground_width"`
	GroundHeight               float64 `yaml:"ground_height"`
	MaxDifficulty              int     `yaml:"max_difficulty"`
	CollectibleChance          float64 `yaml:"collectible_chance"`
	CollectibleSize            float64 `yaml:"collectible_size"`
	CollectibleMinGoalDistance float64 `yaml:"collectible_min_goal_distance"`
	CollectibleAttempts        int     `yaml:"collectible_attempts"`
	// Pickups sit CollectibleLift above a platform top, horizontally
	// between the left and right insets of its span.
	CollectibleInsetLeft  float64 `yaml:"collectible_inset_left"`
	CollectibleInsetRight float64 `yaml:"collectible_inset_right"`
	CollectibleLift       float64 `yaml:"collectible_lift"`
	GoalWidth             float64 `yaml:"goal_width"`
	GoalHeight            float64 `yaml:"goal_height"`
	GoalMargin            float64 `yaml:"goal_margin"`
	SpikeHeight           float64 `yaml:"spike_height"`
}

func (s GeneratorSpec) Validate() error {
	switch {
	case s.WorldWidth <= 0 || s.WorldHeight <= 0:
		return fmt.Errorf("generator: world %gx%g: %w", s.WorldWidth, s.WorldHeight, ErrInvalidSpec)
	case s.GroundWidth <= 0 || s.GroundHeight <= 0:
		return fmt.Errorf("generator: ground %gx%g: %w", s.GroundWidth, s.GroundHeight, ErrInvalidSpec)
	case s.MaxDifficulty < 1:
		return fmt.Errorf("generator: max_difficulty %d: %w", s.MaxDifficulty, ErrInvalidSpec)
	case s.CollectibleChance < 0 || s.CollectibleChance > 1:
		return fmt.Errorf("generator: collectible_chance %g: %w", s.CollectibleChance, ErrInvalidSpec)
	case s.CollectibleSize <= 0 || s.GoalWidth <= 0 || s.GoalHeight <= 0 || s.SpikeHeight <= 0:
		return fmt.Errorf("generator: entity sizes: %w", ErrInvalidSpec)
	case s.CollectibleAttempts < 1:
		return fmt.Errorf("generator: collectible_attempts %d: %w", s.CollectibleAttempts, ErrInvalidSpec)
	case s.CollectibleInsetLeft < 0 || s.CollectibleInsetRight < 0 || s.CollectibleLift < 0:
		return fmt.Errorf("generator: collectible offsets: %w", ErrInvalidSpec)
	}
	return nil
}

type SketchSpec struct {
	MinLength float64 `yaml:"min_length"`
	Thickness float64 `yaml:"thickness"`
}

func (s SketchSpec) Validate() error {
	if s.MinLength < 0 || s.Thickness <= 0 {
		return fmt.Errorf("sketch: min_length %g thickness %g: %w", s.MinLength, s.Thickness, ErrInvalidSpec)
	}
	return nil
}

// PaletteSpec holds the colours the renderer uses per entity kind.
type PaletteSpec struct {
	Background   *YAMLColor `yaml:"background"`
	Grid         *YAMLColor `yaml:"grid"`
	Player       *YAMLColor `yaml:"player"`
	Static       *YAMLColor `yaml:"static"`
	Drawn        *YAMLColor `yaml:"drawn"`
	Moving       *YAMLColor `yaml:"moving"`
	Disappearing *YAMLColor `yaml:"disappearing"`
	Spike        *YAMLColor `yaml:"spike"`
	Collectible  *YAMLColor `yaml:"collectible"`
	Goal         *YAMLColor `yaml:"goal"`
	Outline      *YAMLColor `yaml:"outline"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed colour, or fallback when the entry was omitted.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
