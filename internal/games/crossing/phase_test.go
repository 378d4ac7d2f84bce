package crossing

import "testing"

func TestTransitionTable(t *testing.T) {
	want := map[Phase]map[Event]Phase{
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

	phases := []Phase{PhaseWaitingForFirstInput, PhaseActive, PhaseEnded, PhaseResetting}
	events := []Event{EventMove, EventCollision, EventReachedFinish, EventTransitionComplete}
	for _, p := range phases {
		for _, e := range events {
			expected, ok := want[p][e]
			if !ok {
				t.Fatalf("missing expectation for %s/%s", p, e)
			}
			for i := 0; i < 2; i++ {
				if got := Transition(p, e); got != expected {
					t.Errorf("Transition(%s, %s) = %s, expected %s", p, e, got, expected)
				}
			}
		}
	}
}

func TestTransitionUnknownValues(t *testing.T) {
	if got := Transition(Phase(42), EventMove); got != Phase(42) {
		t.Errorf("unknown phase changed to %s", got)
	}
	if got := Transition(PhaseActive, Event(-1)); got != PhaseActive {
		t.Errorf("unknown event changed phase to %s", got)
	}
}

func TestCollisionNeverLeavesEndedOrResetting(t *testing.T) {
	for _, p := range []Phase{PhaseEnded, PhaseResetting} {
		if got := Transition(p, EventCollision); got != p {
			t.Errorf("collision in %s moved to %s", p, got)
		}
	}
}
