package crossing

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sim"
)

const eps = 1e-9

func testConfig() config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Level.RoadChance = 0
	return cfg
}

func TestNewLevelRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.LevelConfig)
	}{
		{"zero width", func(c *config.LevelConfig) { c.Width = 0 }},
		{"zero cell", func(c *config.LevelConfig) { c.CellSize = 0 }},
		{"start outside", func(c *config.LevelConfig) { c.StartColumn = c.Width }},
		{"finish outside", func(c *config.LevelConfig) { c.FinishOffset = c.Height + 1 }},
		{"spawn interval", func(c *config.LevelConfig) { c.SpawnMin = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCrossingConfig().Level
			tt.mutate(&cfg)
			lvl, err := NewLevel(cfg, 1)
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("NewLevel() error = %v, expected ErrInvalidLevel", err)
			}
			if lvl != nil {
				t.Error("no level should be returned on error")
			}
		})
	}
}

func TestLevelGeometry(t *testing.T) {
	lvl, err := NewLevel(config.DefaultCrossingConfig().Level, 1)
	if err != nil {
		t.Fatal(err)
	}

	if lvl.RowCount() != 50 || lvl.ColumnCount() != 19 {
		t.Errorf("size = %dx%d", lvl.ColumnCount(), lvl.RowCount())
	}
	if math.Abs(lvl.LevelWidth()-3.8) > eps {
		t.Errorf("LevelWidth() = %v, expected 3.8", lvl.LevelWidth())
	}
	if got := lvl.CoordinatesForGridPosition(9, 0); !got.ApproxEqual(core.Vec3{}, eps) {
		t.Errorf("centre column = %+v, expected origin", got)
	}
	if got := lvl.CoordinatesForGridPosition(7, 6); !got.ApproxEqual(core.Vec3{X: -0.4, Z: 1.2}, eps) {
		t.Errorf("start cell = %+v", got)
	}
	if lvl.FinishRow() != 44 {
		t.Errorf("FinishRow() = %d", lvl.FinishRow())
	}

	res := lvl.GridColumnAndRowAfterMove(MoveForward, 7, 6)
	if !res.Moved || res.Row != 5 {
		t.Errorf("forward from start = %+v", res)
	}
}

func TestLevelLanes(t *testing.T) {
	cfg := config.DefaultCrossingConfig().Level
	cfg.RoadChance = 1

	a, _ := NewLevel(cfg, 7)
	b, _ := NewLevel(cfg, 7)

	for row := 0; row < cfg.Height; row++ {
		if a.Lane(row) != b.Lane(row) {
			t.Fatalf("row %d differs between levels with the same seed", row)
		}
		lane := a.Lane(row)
		safe := row >= cfg.StartRow-cfg.SafeRows && row <= cfg.StartRow+cfg.SafeRows
		switch {
		case safe || row >= cfg.FinishRow():
			if lane.Kind != LaneGrass {
				t.Errorf("row %d should be grass", row)
			}
		default:
			if lane.Kind != LaneRoad {
				t.Errorf("row %d should be a road", row)
			}
			if lane.Edge != 1 && lane.Edge != -1 {
				t.Errorf("row %d edge = %d", row, lane.Edge)
			}
			if lane.Interval < config.Seconds(cfg.SpawnMin) || lane.Interval > config.Seconds(cfg.SpawnMax) {
				t.Errorf("row %d interval = %v", row, lane.Interval)
			}
		}
	}

	if a.Lane(-1).Kind != LaneGrass || a.Lane(cfg.Height).Kind != LaneGrass {
		t.Error("rows outside the level should read as grass")
	}
}

type spawnRecorder struct {
	positions []core.Vec3
}

func (r *spawnRecorder) SpawnRequested(pos core.Vec3) {
	r.positions = append(r.positions, pos)
}

func TestLevelSpawnsAtLaneEdges(t *testing.T) {
	cfg := config.DefaultCrossingConfig().Level
	cfg.RoadChance = 1
	lvl, _ := NewLevel(cfg, 3)
	rec := &spawnRecorder{}
	lvl.SetSpawnListener(rec)

	s := sim.NewScheduler()
	lvl.StartSpawning(s, "round")
	lvl.StartSpawning(s, "round")
	s.Advance(config.Seconds(cfg.SpawnMax))

	if len(rec.positions) == 0 {
		t.Fatal("no spawn requests after one full interval")
	}
	for _, pos := range rec.positions {
		if math.Abs(math.Abs(pos.X)-lvl.LevelWidth()/2) > eps {
			t.Errorf("spawn x = %v, expected the level edge", pos.X)
		}
		row := int(math.Round(pos.Z / cfg.CellSize))
		lane := lvl.Lane(row)
		if lane.Kind != LaneRoad {
			t.Errorf("spawn on non-road row %d", row)
		}
		if math.Signbit(pos.X) != (lane.Edge < 0) {
			t.Errorf("row %d spawned at x=%v but edge is %d", row, pos.X, lane.Edge)
		}
	}

	before := len(rec.positions)
	if n := s.CancelScope("round"); n == 0 {
		t.Error("spawn timers should be scoped to the round")
	}
	s.Advance(10 * time.Second)
	if len(rec.positions) != before {
		t.Error("cancelled spawn timers kept firing")
	}
}
