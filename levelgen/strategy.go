package levelgen

import (
	"fmt"
	"strings"
)

// Strategy is one of the layout families a level can be built from.
type Strategy int

const (
	HorizontalGaps Strategy = iota
	VerticalClimb
	MixedChallenge
	MazeLike
	TimingChallenge
	MovingPlatforms
	SpikeGauntlet
	DisappearingChallenge
)

// Strategies lists every strategy in the order random selection indexes.
var Strategies = []Strategy{
	HorizontalGaps,
	VerticalClimb,
	MixedChallenge,
	MazeLike,
	TimingChallenge,
	MovingPlatforms,
	SpikeGauntlet,
	DisappearingChallenge,
}

// introSequence fixes the strategy of the first levels.
var introSequence = []Strategy{HorizontalGaps, VerticalClimb, MixedChallenge}

var strategyNames = map[Strategy]struct{ id, display string }{
	HorizontalGaps:        {"horizontal_gaps", "Horizontal Gaps"},
	VerticalClimb:         {"vertical_climb", "Vertical Climb"},
	MixedChallenge:        {"mixed_challenge", "Mixed Challenge"},
	MazeLike:              {"maze_like", "Maze Navigation"},
	TimingChallenge:       {"timing_challenge", "Timing Challenge"},
	MovingPlatforms:       {"moving_platforms", "Moving Platforms"},
	SpikeGauntlet:         {"spike_gauntlet", "Spike Gauntlet"},
	DisappearingChallenge: {"disappearing_challenge", "Disappearing Platforms"},
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n.id
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// DisplayName is the label shown in the HUD.
func (s Strategy) DisplayName() string {
	if n, ok := strategyNames[s]; ok {
		return n.display
	}
	return s.String()
}

func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n.id == key || strings.ToLower(n.display) == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("levelgen: unknown strategy %q", name)
}
