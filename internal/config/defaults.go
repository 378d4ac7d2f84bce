package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingYAML returns the embedded default configuration file.
func DefaultCrossingYAML() []byte {
	out := make([]byte, len(defaultCrossingYAML))
	copy(out, defaultCrossingYAML)
	return out
}

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Level: LevelConfig{
			Width:        19,
			Height:       50,
			CellSize:     0.2,
			StartColumn:  7,
			StartRow:     6,
			FinishOffset: 6,
			SafeRows:     1,
			RoadChance:   0.6,
			SpawnMin:     1.5,
			SpawnMax:     4.0,
		},
		Player: PlayerConfig{
			MoveDuration: 0.2,
			RestHeight:   0.2,
			HopHeight:    0.2,
			HopDuration:  0.1,
			Footprint:    0.08,
		},
		Obstacles: ObstacleConfig{
			TravelDuration: 10,
			Width:          0.30,
			Length:         0.16,
		},
		Round: RoundConfig{
			HintFade:    0.25,
			EndFade:     0.25,
			RestartFade: 0.5,
			RevealFade:  0.5,
		},
	}
}
