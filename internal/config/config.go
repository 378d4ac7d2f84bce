// Package config provides YAML-based configuration loading and validation
// for the crossing game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Level     LevelConfig    `yaml:"level" json:"level"`
	Player    PlayerConfig   `yaml:"player" json:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles" json:"obstacles"`
	Round     RoundConfig    `yaml:"round" json:"round"`
}

// LevelConfig defines the grid and the lane generator.
type LevelConfig struct {
	Width        int     `yaml:"width" json:"width" jsonschema:"minimum=1,description=Number of grid columns"`
	Height       int     `yaml:"height" json:"height" jsonschema:"minimum=1,description=Number of grid rows"`
	CellSize     float64 `yaml:"cell_size" json:"cell_size" jsonschema:"description=World units per grid cell"`
	StartColumn  int     `yaml:"start_column" json:"start_column" jsonschema:"minimum=0"`
	StartRow     int     `yaml:"start_row" json:"start_row" jsonschema:"minimum=0"`
	FinishOffset int     `yaml:"finish_offset" json:"finish_offset" jsonschema:"minimum=1,description=Finish row is height minus this offset"`
	SafeRows     int     `yaml:"safe_rows" json:"safe_rows" jsonschema:"minimum=0,description=Grass rows kept around the start and finish bands"`
	RoadChance   float64 `yaml:"road_chance" json:"road_chance" jsonschema:"minimum=0,maximum=1,description=Probability that a lane is a road"`
	SpawnMin     float64 `yaml:"spawn_min" json:"spawn_min" jsonschema:"description=Shortest spawn interval of a road lane in seconds"`
	SpawnMax     float64 `yaml:"spawn_max" json:"spawn_max" jsonschema:"description=Longest spawn interval of a road lane in seconds"`
}

// PlayerConfig defines the player's motion and footprint.
type PlayerConfig struct {
	MoveDuration float64 `yaml:"move_duration" json:"move_duration" jsonschema:"description=Seconds per grid step animation"`
	RestHeight   float64 `yaml:"rest_height" json:"rest_height"`
	HopHeight    float64 `yaml:"hop_height" json:"hop_height"`
	HopDuration  float64 `yaml:"hop_duration" json:"hop_duration" jsonschema:"description=Seconds for each half of the hop"`
	Footprint    float64 `yaml:"footprint" json:"footprint" jsonschema:"description=Side of the square collision footprint"`
}

// ObstacleConfig defines obstacle travel and footprint.
type ObstacleConfig struct {
	TravelDuration float64 `yaml:"travel_duration" json:"travel_duration" jsonschema:"description=Seconds to cross one level width"`
	Width          float64 `yaml:"width" json:"width"`
	Length         float64 `yaml:"length" json:"length"`
}

// RoundConfig defines overlay fade timings in seconds.
type RoundConfig struct {
	HintFade    float64 `yaml:"hint_fade" json:"hint_fade"`
	EndFade     float64 `yaml:"end_fade" json:"end_fade"`
	RestartFade float64 `yaml:"restart_fade" json:"restart_fade" jsonschema:"description=Delay before a new round replaces the ended one"`
	RevealFade  float64 `yaml:"reveal_fade" json:"reveal_fade"`
}

// Seconds converts a config value in seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// FinishRow returns the row that completes the level.
func (c LevelConfig) FinishRow() int {
	return c.Height - c.FinishOffset
}

// Validate reports the first problem that would leave a round with a
// partially valid level.
func (c CrossingConfig) Validate() error {
	l := c.Level
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("%w: level size %dx%d", ErrInvalidConfig, l.Width, l.Height)
	case l.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidConfig)
	case l.StartColumn < 0 || l.StartColumn >= l.Width || l.StartRow < 0 || l.StartRow >= l.Height:
		return fmt.Errorf("%w: start (%d,%d) outside level", ErrInvalidConfig, l.StartColumn, l.StartRow)
	case l.FinishOffset <= 0 || l.FinishRow() < 0:
		return fmt.Errorf("%w: finish_offset %d", ErrInvalidConfig, l.FinishOffset)
	case l.SafeRows < 0:
		return fmt.Errorf("%w: safe_rows must not be negative", ErrInvalidConfig)
	case l.RoadChance < 0 || l.RoadChance > 1:
		return fmt.Errorf("%w: road_chance %.2f outside [0,1]", ErrInvalidConfig, l.RoadChance)
	case l.SpawnMin <= 0 || l.SpawnMax < l.SpawnMin:
		return fmt.Errorf("%w: spawn interval [%.2f,%.2f]", ErrInvalidConfig, l.SpawnMin, l.SpawnMax)
	case c.Player.MoveDuration <= 0 || c.Player.HopDuration <= 0:
		return fmt.Errorf("%w: player durations must be positive", ErrInvalidConfig)
	case c.Player.Footprint <= 0:
		return fmt.Errorf("%w: player footprint must be positive", ErrInvalidConfig)
	case c.Obstacles.TravelDuration <= 0:
		return fmt.Errorf("%w: obstacle travel_duration must be positive", ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.Length <= 0:
		return fmt.Errorf("%w: obstacle footprint must be positive", ErrInvalidConfig)
	case c.Round.RestartFade <= 0:
		return fmt.Errorf("%w: restart_fade must be positive", ErrInvalidConfig)
	}
	return nil
}
