// Package sim is the simulation runtime the crossing game runs on: one-shot
// timers, node actions, a contact-detecting physics world and the frame loop
// that advances them in a fixed order.
//
// Nothing in this package is safe for concurrent use. Everything is driven
// from the single goroutine that steps the loop.
package sim

import (
	"container/heap"
	"time"
)

// TaskID identifies a scheduled task. The zero value is never issued.
type TaskID uint64

type task struct {
	id        TaskID
	scope     string
	due       time.Duration
	fn        func()
	cancelled bool
	index     int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].id < h[j].id
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	t.index = -1
	return t
}

// Scheduler runs one-shot callbacks at points in simulated time.
// Every task belongs to a scope (a round or obstacle identifier) so that a
// whole group can be invalidated at once.
type Scheduler struct {
	now    time.Duration
	nextID TaskID
	queue  taskHeap
	byID   map[TaskID]*task
	closed bool
}

// NewScheduler creates a scheduler at simulated time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[TaskID]*task),
	}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d from now. Tasks due at the same instant
// run in the order they were scheduled. Returns 0 if the scheduler is closed.
func (s *Scheduler) After(d time.Duration, scope string, fn func()) TaskID {
	if s.closed || fn == nil {
		return 0
	}
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &task{
		id:    s.nextID,
		scope: scope,
		due:   s.now + d,
		fn:    fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel prevents a pending task from running.
// Returns false if the task already ran or was cancelled.
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	t.cancelled = true
	delete(s.byID, id)
	return true
}

// CancelScope cancels every pending task in the scope and returns how many.
func (s *Scheduler) CancelScope(scope string) int {
	n := 0
	for id, t := range s.byID {
		if t.scope == scope {
			t.cancelled = true
			delete(s.byID, id)
			n++
		}
	}
	return n
}

// Pending returns the number of tasks still waiting to run.
func (s *Scheduler) Pending() int {
	return len(s.byID)
}

// Advance moves simulated time forward by dt and runs every task that came
// due, earliest first. Tasks scheduled by a callback run in the same call if
// they are already due. Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s.closed {
		return 0
	}
	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for s.queue.Len() > 0 && !s.closed {
		next := s.queue[0]
		if next.due > s.now {
			break
		}
		heap.Pop(&s.queue)
		if next.cancelled {
			continue
		}
		delete(s.byID, next.id)
		next.fn()
		ran++
	}
	return ran
}

// Close cancels all pending tasks and rejects new ones.
func (s *Scheduler) Close() {
	s.closed = true
	for id, t := range s.byID {
		t.cancelled = true
		delete(s.byID, id)
	}
	s.queue = nil
}

// Closed reports whether Close has been called.
func (s *Scheduler) Closed() bool {
	return s.closed
}
