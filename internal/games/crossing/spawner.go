package crossing

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sim"
)

// Obstacle is a car crossing one road lane.
type Obstacle struct {
	ID        string
	Node      *sim.Node
	Body      *sim.Body
	Direction float64 // -1 or +1 along X
	SpawnTime time.Duration

	removal sim.TaskID
}

// TravelDirection returns the X direction for a car spawned at x. Cars
// always head for the opposite side.
func TravelDirection(x float64) float64 {
	if x > 0 {
		return -1
	}
	return 1
}

// Spawner turns spawn requests into cars on a loop. Each car drives one
// level width and is removed by a timer scoped to its ID.
type Spawner struct {
	loop      *sim.Loop
	level     LevelProvider
	cfg       config.ObstacleConfig
	prefix    string
	nextID    int
	obstacles []*Obstacle
}

// NewSpawner creates a spawner. prefix namespaces obstacle IDs, usually
// the round ID.
func NewSpawner(loop *sim.Loop, level LevelProvider, cfg config.ObstacleConfig, prefix string) *Spawner {
	return &Spawner{
		loop:   loop,
		level:  level,
		cfg:    cfg,
		prefix: prefix,
	}
}

// SpawnRequested creates one car at pos.
func (s *Spawner) SpawnRequested(pos core.Vec3) {
	if s.loop.Closed() {
		return
	}
	s.nextID++
	id := fmt.Sprintf("%s/car-%d", s.prefix, s.nextID)
	dir := TravelDirection(pos.X)
	travel := config.Seconds(s.cfg.TravelDuration)

	node := sim.NewNode(id, pos)
	node.Run("drive", sim.MoveBy(core.Vec3{X: dir * s.level.LevelWidth()}, travel, sim.TimingLinear))
	body := &sim.Body{
		Name:        id,
		Node:        node,
		Size:        core.Footprint{Width: s.cfg.Width, Length: s.cfg.Length},
		Category:    CategoryObstacle,
		ContactMask: CategoryPlayer,
	}
	o := &Obstacle{
		ID:        id,
		Node:      node,
		Body:      body,
		Direction: dir,
		SpawnTime: s.loop.Now(),
	}

	s.loop.AddNode(node)
	s.loop.World().AddBody(body)
	s.obstacles = append(s.obstacles, o)
	o.removal = s.loop.Scheduler().After(travel, id, func() { s.remove(id) })

	logger.Debug("car spawned", "id", id, "x", pos.X, "z", pos.Z, "dir", dir)
}

func (s *Spawner) remove(id string) {
	for i, o := range s.obstacles {
		if o.ID != id {
			continue
		}
		s.loop.World().RemoveBody(o.Body)
		s.loop.RemoveNode(o.Node)
		s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
		return
	}
}

// Clear takes every live car off the loop and cancels its removal timer.
// It returns how many cars were cleared.
func (s *Spawner) Clear() int {
	n := len(s.obstacles)
	for _, o := range s.obstacles {
		s.loop.Scheduler().Cancel(o.removal)
		o.Node.RemoveAllActions()
		s.loop.World().RemoveBody(o.Body)
		s.loop.RemoveNode(o.Node)
	}
	s.obstacles = nil
	return n
}

// Obstacles returns the live cars in spawn order.
func (s *Spawner) Obstacles() []*Obstacle {
	return s.obstacles
}
