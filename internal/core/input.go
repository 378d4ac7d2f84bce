package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionForward         // Up, W, Space - tap or swipe forward
	ActionBackward        // Down, S - swipe backward
	ActionLeft            // Left, A - swipe left
	ActionRight           // Right, D - swipe right
	ActionBack            // B, Escape - go back to menu
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four directional inputs.
func (a Action) IsMovement() bool {
	switch a {
	case ActionForward, ActionBackward, ActionLeft, ActionRight:
		return true
	}
	return false
}

// InputFrame holds the actions delivered to a single simulation tick,
// in the order they were generated.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an input frame from the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: actions}
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// InputQueue hands input over from the UI goroutine to the simulation loop.
// Push may be called from any goroutine; Drain is called by the loop at the
// start of a frame and returns actions in push order.
type InputQueue struct {
	mu      sync.Mutex
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{pending: make([]Action, 0, 8)}
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, a)
	q.mu.Unlock()
}

// Drain removes all pending actions and returns them as one frame.
func (q *InputQueue) Drain() InputFrame {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return InputFrame{}
	}
	actions := make([]Action, len(q.pending))
	copy(actions, q.pending)
	q.pending = q.pending[:0]
	return InputFrame{Actions: actions}
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
