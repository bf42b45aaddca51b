package prefabs

import "fmt"

// Tuning bundles every gameplay spec the core consumes.
type Tuning struct {
	Player    PlayerSpec
	Platforms PlatformsSpec
	Generator GeneratorSpec
	Sketch    SketchSpec
	Palette   PaletteSpec
}

// Files lists the prefab files LoadTuning reads; the watcher reloads
// tuning when any of them changes.
var Files = []string{"player.yaml", "platforms.yaml", "generator.yaml", "sketch.yaml", "palette.yaml"}

func LoadTuning() (Tuning, error) {
	var t Tuning
	var err error
	if t.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return Tuning{}, err
	}
	if t.Platforms, err = LoadSpec[PlatformsSpec]("platforms.yaml"); err != nil {
		return Tuning{}, err
	}
	if t.Generator, err = LoadSpec[GeneratorSpec]("generator.yaml"); err != nil {
		return Tuning{}, err
	}
	if t.Sketch, err = LoadSpec[SketchSpec]("sketch.yaml"); err != nil {
		return Tuning{}, err
	}
	if t.Palette, err = LoadSpec[PaletteSpec]("palette.yaml"); err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// MustLoadTuning is for tests and tools that run against the embedded
// defaults.
func MustLoadTuning() Tuning {
	t, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tuning) Validate() error {
	for _, v := range []interface{ Validate() error }{t.Player, t.Platforms, t.Generator, t.Sketch} {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("prefabs: %w", err)
		}
	}
	return nil
}
