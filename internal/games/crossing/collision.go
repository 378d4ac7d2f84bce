package crossing

import "github.com/vovakirdan/tui-crossing/internal/sim"

// Collision categories. Player and obstacle are the only pairing that
// reports contacts.
const (
	CategoryPlayer sim.Category = 1 << iota
	CategoryObstacle
)

// collisionTarget is the part of a round the monitor drives.
type collisionTarget interface {
	ID() string
	Phase() Phase
	Collide()
}

// CollisionMonitor turns player/car contacts into collision events while
// the round is active.
type CollisionMonitor struct {
	target collisionTarget
}

// NewCollisionMonitor creates a monitor for target.
func NewCollisionMonitor(target collisionTarget) *CollisionMonitor {
	return &CollisionMonitor{target: target}
}

func isPlayerHit(c sim.Contact) bool {
	return c.Involves(CategoryPlayer) && c.Involves(CategoryObstacle)
}

// ContactBegan ends the round on a new player/car contact. Outside the
// active phase it does nothing.
func (m *CollisionMonitor) ContactBegan(c sim.Contact) {
	if !isPlayerHit(c) || m.target.Phase() != PhaseActive {
		return
	}
	m.target.Collide()
}

// ContactUpdated is diagnostic only.
func (m *CollisionMonitor) ContactUpdated(c sim.Contact) {
	logger.Debug("contact updated", "round", m.target.ID(), "a", c.A.Name, "b", c.B.Name)
}

// ContactEnded is diagnostic only.
func (m *CollisionMonitor) ContactEnded(c sim.Contact) {
	logger.Debug("contact ended", "round", m.target.ID(), "a", c.A.Name, "b", c.B.Name)
}
