package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sim"
)

const (
	actionMove = "move"
	actionHop  = "hop"
)

// Player owns the logical grid position and the nodes that animate it.
// Node carries the X/Z position and the collision body; Hop is a child
// node that only moves along Y.
type Player struct {
	Node *sim.Node
	Hop  *sim.Node
	Body *sim.Body

	level LevelProvider
	cfg   config.PlayerConfig
	pos   GridPosition
}

// NewPlayer places a player at start.
func NewPlayer(level LevelProvider, cfg config.PlayerConfig, start GridPosition) *Player {
	p := &Player{
		level: level,
		cfg:   cfg,
		pos:   start,
	}
	p.Node = sim.NewNode("player", level.CoordinatesForGridPosition(start.Column, start.Row))
	p.Hop = sim.NewNode("player-hop", core.Vec3{Y: cfg.RestHeight})
	p.Node.AddChild(p.Hop)
	p.Body = &sim.Body{
		Name:        "player",
		Node:        p.Node,
		Size:        core.Footprint{Width: cfg.Footprint, Length: cfg.Footprint},
		Category:    CategoryPlayer,
		ContactMask: CategoryObstacle,
	}
	return p
}

// Position returns the logical grid position.
func (p *Player) Position() GridPosition {
	return p.pos
}

// Move validates a step through the level. On success the grid position
// changes immediately and the move and hop animations start; a second
// call before they finish is judged against the new position.
func (p *Player) Move(dir MoveDirection) MoveResult {
	res := p.level.GridColumnAndRowAfterMove(dir, p.pos.Column, p.pos.Row)
	if !res.Moved {
		return res
	}
	p.pos = res.Position()

	target := p.level.CoordinatesForGridPosition(res.Column, res.Row)
	target.Y = p.Node.Position.Y
	p.Node.Run(actionMove, sim.MoveTo(target, config.Seconds(p.cfg.MoveDuration), sim.TimingLinear))

	hop := config.Seconds(p.cfg.HopDuration)
	top := core.Vec3{Y: p.cfg.RestHeight + p.cfg.HopHeight}
	rest := core.Vec3{Y: p.cfg.RestHeight}
	p.Hop.Run(actionHop, sim.Sequence(
		sim.MoveTo(top, hop, sim.TimingEaseOut),
		sim.MoveTo(rest, hop, sim.TimingEaseIn),
	))
	return res
}

// Airborne reports whether the hop animation is above rest height.
func (p *Player) Airborne() bool {
	return p.Hop.Position.Y > p.cfg.RestHeight+p.cfg.HopHeight/4
}
