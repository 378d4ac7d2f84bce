package sim

import "time"

// FrameTickListener is called once per frame after physics has run.
type FrameTickListener interface {
	FrameTick(now time.Duration)
}

// Loop owns one simulation: its timers, nodes and physics world.
//
// A frame is: the caller applies queued input, then calls Step, which
// runs due timers, advances node actions, dispatches contact events and
// finally notifies frame-tick listeners. Nothing overlaps.
type Loop struct {
	sched   *Scheduler
	world   *World
	nodes   []*Node
	tickers []FrameTickListener
	closed  bool
}

// NewLoop creates an empty loop at time zero.
func NewLoop() *Loop {
	return &Loop{
		sched: NewScheduler(),
		world: NewWorld(),
	}
}

// Scheduler returns the loop's timer queue.
func (l *Loop) Scheduler() *Scheduler {
	return l.sched
}

// World returns the loop's physics world.
func (l *Loop) World() *World {
	return l.world
}

// Now returns the loop's simulated time.
func (l *Loop) Now() time.Duration {
	return l.sched.Now()
}

// AddNode registers a node so its actions are advanced each frame.
func (l *Loop) AddNode(n *Node) {
	n.removed = false
	l.nodes = append(l.nodes, n)
}

// RemoveNode stops advancing n and marks it removed.
func (l *Loop) RemoveNode(n *Node) {
	n.removed = true
	kept := l.nodes[:0]
	for _, other := range l.nodes {
		if other != n {
			kept = append(kept, other)
		}
	}
	l.nodes = kept
}

// Nodes returns the registered nodes.
func (l *Loop) Nodes() []*Node {
	return l.nodes
}

// AddTickListener subscribes t to per-frame ticks.
func (l *Loop) AddTickListener(t FrameTickListener) {
	if l.HasTickListener(t) {
		return
	}
	l.tickers = append(l.tickers, t)
}

// HasTickListener reports whether t is subscribed to ticks.
func (l *Loop) HasTickListener(t FrameTickListener) bool {
	for _, other := range l.tickers {
		if other == t {
			return true
		}
	}
	return false
}

// RemoveTickListener unsubscribes t.
func (l *Loop) RemoveTickListener(t FrameTickListener) {
	kept := l.tickers[:0]
	for _, other := range l.tickers {
		if other != t {
			kept = append(kept, other)
		}
	}
	l.tickers = kept
}

// Step advances the simulation by dt.
func (l *Loop) Step(dt time.Duration) {
	if l.closed {
		return
	}

	l.sched.Advance(dt)
	if l.closed {
		return
	}

	nodes := make([]*Node, len(l.nodes))
	copy(nodes, l.nodes)
	for _, n := range nodes {
		if !n.removed {
			n.Update(dt)
		}
	}

	l.world.Step()
	if l.closed {
		return
	}

	tickers := make([]FrameTickListener, len(l.tickers))
	copy(tickers, l.tickers)
	now := l.sched.Now()
	for _, t := range tickers {
		if l.closed {
			return
		}
		if l.HasTickListener(t) {
			t.FrameTick(now)
		}
	}
}

// Close cancels all timers and detaches all listeners. A closed loop
// ignores Step.
func (l *Loop) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.sched.Close()
	l.tickers = nil
	l.world.listeners = nil
}

// Closed reports whether Close has been called.
func (l *Loop) Closed() bool {
	return l.closed
}
