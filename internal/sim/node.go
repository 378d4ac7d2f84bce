package sim

import (
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Action changes a node over time. Actions are single-use: build a new one
// for every Run.
type Action interface {
	// advance applies up to dt of progress to n. It returns the part of dt
	// it did not need and whether the action has finished.
	advance(n *Node, dt time.Duration) (rest time.Duration, done bool)
}

// Node is a positioned object in the simulation. Children are positioned
// relative to their parent.
type Node struct {
	Name     string
	Position core.Vec3

	parent  *Node
	actions []runningAction
	removed bool
}

type runningAction struct {
	key    string
	action Action
}

// NewNode creates a node at the given local position.
func NewNode(name string, pos core.Vec3) *Node {
	return &Node{Name: name, Position: pos}
}

// AddChild attaches c below n.
func (n *Node) AddChild(c *Node) {
	c.parent = n
}

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// WorldPosition returns the position including all ancestors.
func (n *Node) WorldPosition() core.Vec3 {
	pos := n.Position
	for p := n.parent; p != nil; p = p.parent {
		pos = pos.Add(p.Position)
	}
	return pos
}

// Run starts an action. A non-empty key replaces any running action with the
// same key; an empty key always adds.
func (n *Node) Run(key string, a Action) {
	if key != "" {
		n.RemoveAction(key)
	}
	n.actions = append(n.actions, runningAction{key: key, action: a})
}

// RemoveAction stops the action with the given key, leaving the node where it is.
func (n *Node) RemoveAction(key string) {
	kept := n.actions[:0]
	for _, ra := range n.actions {
		if ra.key != key {
			kept = append(kept, ra)
		}
	}
	n.actions = kept
}

// RemoveAllActions stops every running action.
func (n *Node) RemoveAllActions() {
	n.actions = nil
}

// HasAction reports whether an action with the key is running.
func (n *Node) HasAction(key string) bool {
	for _, ra := range n.actions {
		if ra.key == key {
			return true
		}
	}
	return false
}

// Removed reports whether the node has been taken out of its loop.
func (n *Node) Removed() bool {
	return n.removed
}

// Update advances all running actions by dt. Actions run concurrently.
func (n *Node) Update(dt time.Duration) {
	if len(n.actions) == 0 {
		return
	}
	running := make([]runningAction, len(n.actions))
	copy(running, n.actions)

	finished := make(map[Action]bool)
	for _, ra := range running {
		if _, done := ra.action.advance(n, dt); done {
			finished[ra.action] = true
		}
		if n.removed {
			return
		}
	}

	kept := n.actions[:0]
	for _, ra := range n.actions {
		if !finished[ra.action] {
			kept = append(kept, ra)
		}
	}
	n.actions = kept
}

// moveTo moves a node to an absolute position.
type moveTo struct {
	target   core.Vec3
	duration time.Duration
	timing   Timing
	start    core.Vec3
	elapsed  time.Duration
	started  bool
}

// MoveTo moves the node to target over d.
func MoveTo(target core.Vec3, d time.Duration, timing Timing) Action {
	return &moveTo{target: target, duration: d, timing: timing}
}

func (m *moveTo) advance(n *Node, dt time.Duration) (time.Duration, bool) {
	if !m.started {
		m.start = n.Position
		m.started = true
	}
	rest := m.elapsed + dt - m.duration
	m.elapsed += dt
	if m.elapsed >= m.duration {
		n.Position = m.target
		if rest < 0 {
			rest = 0
		}
		return rest, true
	}
	n.Position = m.start.Lerp(m.target, m.timing.Apply(progress(m.elapsed, m.duration)))
	return 0, false
}

// moveBy shifts a node by a relative offset. It only applies its own delta,
// so it composes with other movement on the same node.
type moveBy struct {
	delta    core.Vec3
	duration time.Duration
	timing   Timing
	applied  core.Vec3
	elapsed  time.Duration
}

// MoveBy shifts the node by delta over d.
func MoveBy(delta core.Vec3, d time.Duration, timing Timing) Action {
	return &moveBy{delta: delta, duration: d, timing: timing}
}

func (m *moveBy) advance(n *Node, dt time.Duration) (time.Duration, bool) {
	rest := m.elapsed + dt - m.duration
	m.elapsed += dt
	if m.elapsed > m.duration {
		m.elapsed = m.duration
	}
	want := m.delta.Scale(m.timing.Apply(progress(m.elapsed, m.duration)))
	n.Position = n.Position.Add(want.Sub(m.applied))
	m.applied = want
	if m.elapsed >= m.duration {
		if rest < 0 {
			rest = 0
		}
		return rest, true
	}
	return 0, false
}

type sequence struct {
	actions []Action
	index   int
}

// Sequence runs actions one after another. Time left over by one action
// carries into the next within the same update.
func Sequence(actions ...Action) Action {
	return &sequence{actions: actions}
}

func (s *sequence) advance(n *Node, dt time.Duration) (time.Duration, bool) {
	for s.index < len(s.actions) {
		rest, done := s.actions[s.index].advance(n, dt)
		if !done {
			return 0, false
		}
		s.index++
		dt = rest
		if n.removed {
			return 0, true
		}
	}
	return dt, true
}
