package crossing

// Phase is the top-level state of a round.
type Phase int

const (
	PhaseWaitingForFirstInput Phase = iota
	PhaseActive
	PhaseEnded
	PhaseResetting
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaitingForFirstInput:
		return "Waiting"
	case PhaseActive:
		return "Active"
	case PhaseEnded:
		return "Ended"
	case PhaseResetting:
		return "Resetting"
	default:
		return "Unknown"
	}
}

// Event drives phase transitions.
type Event int

const (
	EventMove Event = iota
	EventCollision
	EventReachedFinish
	EventTransitionComplete
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventMove:
		return "Move"
	case EventCollision:
		return "Collision"
	case EventReachedFinish:
		return "ReachedFinish"
	case EventTransitionComplete:
		return "TransitionComplete"
	default:
		return "Unknown"
	}
}

// transitions[phase][event] is the next phase. Resetting + TransitionComplete
// yields Waiting because the round is replaced by a fresh one.
var transitions = [4][4]Phase{
	PhaseWaitingForFirstInput: {
		EventMove:               PhaseActive,
		EventCollision:          PhaseWaitingForFirstInput,
		EventReachedFinish:      PhaseWaitingForFirstInput,
		EventTransitionComplete: PhaseWaitingForFirstInput,
	},
	PhaseActive: {
		EventMove:               PhaseActive,
		EventCollision:          PhaseEnded,
		EventReachedFinish:      PhaseEnded,
		EventTransitionComplete: PhaseActive,
	},
	PhaseEnded: {
		EventMove:               PhaseResetting,
		EventCollision:          PhaseEnded,
		EventReachedFinish:      PhaseEnded,
		EventTransitionComplete: PhaseEnded,
	},
	PhaseResetting: {
		EventMove:               PhaseResetting,
		EventCollision:          PhaseResetting,
		EventReachedFinish:      PhaseResetting,
		EventTransitionComplete: PhaseWaitingForFirstInput,
	},
}

// Transition returns the phase that follows p on event e. Unknown values
// leave the phase unchanged.
func Transition(p Phase, e Event) Phase {
	if p < 0 || int(p) >= len(transitions) || e < 0 || int(e) >= len(transitions[p]) {
		return p
	}
	return transitions[p][e]
}

// EndReason records why a round ended. Both reasons show the same
// game-over messaging.
type EndReason string

const (
	ReasonNone      EndReason = ""
	ReasonCollision EndReason = "collision"
	ReasonFinish    EndReason = "finish"
)

// PhaseObserver is notified after every phase change of a round.
type PhaseObserver interface {
	PhaseChanged(roundID string, from, to Phase)
}
