package crossing

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sim"
)

// ErrInvalidLevel is wrapped by every failure to build a level or round.
var ErrInvalidLevel = errors.New("crossing: invalid level")

// SpawnListener receives spawn requests from a level.
type SpawnListener interface {
	SpawnRequested(pos core.Vec3)
}

// LevelProvider maps the grid to world space and requests obstacles.
type LevelProvider interface {
	CoordinatesForGridPosition(column, row int) core.Vec3
	GridColumnAndRowAfterMove(dir MoveDirection, column, row int) MoveResult
	LevelWidth() float64
	RowCount() int
	ColumnCount() int
	SetSpawnListener(l SpawnListener)
}

// LaneKind is the surface of a grid row.
type LaneKind int

const (
	LaneGrass LaneKind = iota
	LaneRoad
)

// Lane describes one grid row. Road lanes spawn cars from Edge (-1 left,
// +1 right) every Interval.
type Lane struct {
	Kind     LaneKind
	Edge     int
	Interval time.Duration
}

// Level is the grid geometry plus the lane layout. It is immutable after
// NewLevel except for its spawn listener and spawn timers.
type Level struct {
	cfg      config.LevelConfig
	lanes    []Lane
	rng      *rand.Rand
	listener SpawnListener
	spawning bool
}

// NewLevel validates cfg and generates the lane layout from seed.
func NewLevel(cfg config.LevelConfig, seed int64) (*Level, error) {
	if err := validateLevel(cfg); err != nil {
		return nil, err
	}

	l := &Level{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	l.lanes = l.generateLanes()
	return l, nil
}

func validateLevel(cfg config.LevelConfig) error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, cfg.Width, cfg.Height)
	case cfg.CellSize <= 0:
		return fmt.Errorf("%w: cell size %.3f", ErrInvalidLevel, cfg.CellSize)
	case cfg.StartColumn < 0 || cfg.StartColumn >= cfg.Width || cfg.StartRow < 0 || cfg.StartRow >= cfg.Height:
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d", ErrInvalidLevel, cfg.StartColumn, cfg.StartRow, cfg.Width, cfg.Height)
	case cfg.FinishOffset <= 0 || cfg.FinishRow() < 0:
		return fmt.Errorf("%w: finish offset %d", ErrInvalidLevel, cfg.FinishOffset)
	case cfg.SpawnMin <= 0 || cfg.SpawnMax < cfg.SpawnMin:
		return fmt.Errorf("%w: spawn interval [%.2f,%.2f]", ErrInvalidLevel, cfg.SpawnMin, cfg.SpawnMax)
	}
	return nil
}

// generateLanes marks rows near the start and from the finish onwards as
// grass. Every other row becomes a road with probability RoadChance.
func (l *Level) generateLanes() []Lane {
	lanes := make([]Lane, l.cfg.Height)
	finish := l.cfg.FinishRow()
	for row := range lanes {
		safe := row >= l.cfg.StartRow-l.cfg.SafeRows && row <= l.cfg.StartRow+l.cfg.SafeRows
		if safe || row >= finish || l.rng.Float64() >= l.cfg.RoadChance {
			continue
		}
		edge := 1
		if l.rng.Intn(2) == 0 {
			edge = -1
		}
		span := l.cfg.SpawnMax - l.cfg.SpawnMin
		lanes[row] = Lane{
			Kind:     LaneRoad,
			Edge:     edge,
			Interval: config.Seconds(l.cfg.SpawnMin + l.rng.Float64()*span),
		}
	}
	return lanes
}

// CoordinatesForGridPosition returns the world position of a cell centre.
// Columns are centred on X=0; rows grow along Z.
func (l *Level) CoordinatesForGridPosition(column, row int) core.Vec3 {
	half := float64(l.cfg.Width-1) / 2
	return core.Vec3{
		X: (float64(column) - half) * l.cfg.CellSize,
		Z: float64(row) * l.cfg.CellSize,
	}
}

// GridColumnAndRowAfterMove applies AttemptMove within the level bounds.
func (l *Level) GridColumnAndRowAfterMove(dir MoveDirection, column, row int) MoveResult {
	return AttemptMove(dir, GridPosition{Column: column, Row: row}, l.cfg.Width, l.cfg.Height)
}

// LevelWidth returns the world width of the level.
func (l *Level) LevelWidth() float64 {
	return float64(l.cfg.Width) * l.cfg.CellSize
}

// RowCount returns the number of grid rows.
func (l *Level) RowCount() int {
	return l.cfg.Height
}

// ColumnCount returns the number of grid columns.
func (l *Level) ColumnCount() int {
	return l.cfg.Width
}

// CellSize returns the world size of one cell.
func (l *Level) CellSize() float64 {
	return l.cfg.CellSize
}

// FinishRow returns the row that completes the level.
func (l *Level) FinishRow() int {
	return l.cfg.FinishRow()
}

// Start returns the configured start cell.
func (l *Level) Start() GridPosition {
	return GridPosition{Column: l.cfg.StartColumn, Row: l.cfg.StartRow}
}

// Lane returns the lane of row. Rows outside the level are grass.
func (l *Level) Lane(row int) Lane {
	if row < 0 || row >= len(l.lanes) {
		return Lane{}
	}
	return l.lanes[row]
}

// SetSpawnListener sets the receiver of spawn requests.
func (l *Level) SetSpawnListener(sl SpawnListener) {
	l.listener = sl
}

// StartSpawning arms one repeating timer per road lane on s, all under
// scope. Each lane fires first after a random fraction of its interval.
// Calling it again is a no-op.
func (l *Level) StartSpawning(s *sim.Scheduler, scope string) {
	if l.spawning {
		return
	}
	l.spawning = true
	for row, lane := range l.lanes {
		if lane.Kind != LaneRoad {
			continue
		}
		first := time.Duration(l.rng.Float64() * float64(lane.Interval))
		l.scheduleSpawn(s, scope, row, lane, first)
	}
}

func (l *Level) scheduleSpawn(s *sim.Scheduler, scope string, row int, lane Lane, after time.Duration) {
	s.After(after, scope, func() {
		if l.listener != nil {
			pos := l.CoordinatesForGridPosition(0, row)
			pos.X = float64(lane.Edge) * l.LevelWidth() / 2
			l.listener.SpawnRequested(pos)
		}
		l.scheduleSpawn(s, scope, row, lane, lane.Interval)
	})
}
