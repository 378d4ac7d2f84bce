package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

const (
	catPlayer Category = 1 << iota
	catCar
)

type recordingListener struct {
	began, updated, ended int
	onBegan               func(Contact)
}

func (r *recordingListener) ContactBegan(c Contact) {
	r.began++
	if r.onBegan != nil {
		r.onBegan(c)
	}
}
func (r *recordingListener) ContactUpdated(Contact) { r.updated++ }
func (r *recordingListener) ContactEnded(Contact)   { r.ended++ }

func newBody(name string, x float64, cat, mask Category) *Body {
	return &Body{
		Name:        name,
		Node:        NewNode(name, core.Vec3{X: x}),
		Size:        core.Footprint{Width: 0.2, Length: 0.2},
		Category:    cat,
		ContactMask: mask,
	}
}

func TestWorldContactLifecycle(t *testing.T) {
	w := NewWorld()
	rec := &recordingListener{}
	w.AddContactListener(rec)

	player := newBody("player", 0, catPlayer, catCar)
	car := newBody("car", 1, catCar, catPlayer)
	w.AddBody(player)
	w.AddBody(car)

	w.Step()
	if rec.began != 0 {
		t.Fatal("separated bodies should not contact")
	}

	car.Node.Position.X = 0.1
	w.Step()
	w.Step()
	if rec.began != 1 || rec.updated != 1 {
		t.Errorf("began=%d updated=%d, expected 1 and 1", rec.began, rec.updated)
	}

	car.Node.Position.X = 1
	w.Step()
	if rec.ended != 1 {
		t.Errorf("ended=%d, expected 1", rec.ended)
	}
	if w.ActiveContacts() != 0 {
		t.Errorf("ActiveContacts() = %d, expected 0", w.ActiveContacts())
	}
}

func TestWorldMasksFilterPairs(t *testing.T) {
	w := NewWorld()
	rec := &recordingListener{}
	w.AddContactListener(rec)

	// Two overlapping cars never report contact with each other.
	w.AddBody(newBody("car-a", 0, catCar, catPlayer))
	w.AddBody(newBody("car-b", 0.05, catCar, catPlayer))
	w.Step()

	if rec.began != 0 {
		t.Errorf("car/car overlap reported %d contacts", rec.began)
	}
}

func TestWorldRemoveBodyEndsContact(t *testing.T) {
	w := NewWorld()
	rec := &recordingListener{}
	w.AddContactListener(rec)

	player := newBody("player", 0, catPlayer, catCar)
	car := newBody("car", 0, catCar, catPlayer)
	w.AddBody(player)
	w.AddBody(car)
	w.Step()

	w.RemoveBody(car)
	if rec.ended != 1 {
		t.Errorf("removing a body should end its contact, ended=%d", rec.ended)
	}
	if len(w.Bodies()) != 1 {
		t.Errorf("Bodies() has %d entries, expected 1", len(w.Bodies()))
	}
}

func TestWorldListenerRemovedDuringDispatch(t *testing.T) {
	w := NewWorld()
	rec := &recordingListener{}
	rec.onBegan = func(Contact) { w.RemoveContactListener(rec) }
	w.AddContactListener(rec)

	player := newBody("player", 0, catPlayer, catCar)
	w.AddBody(player)
	w.AddBody(newBody("car-a", 0.05, catCar, catPlayer))
	w.AddBody(newBody("car-b", -0.05, catCar, catPlayer))
	w.Step()

	if rec.began != 1 {
		t.Errorf("listener removed in its first callback got %d began events", rec.began)
	}
}

type tickRecorder struct {
	ticks []time.Duration
	log   *[]string
}

func (r *tickRecorder) FrameTick(now time.Duration) {
	r.ticks = append(r.ticks, now)
	*r.log = append(*r.log, "tick")
}

type orderListener struct {
	log *[]string
}

func (o orderListener) ContactBegan(Contact)   { *o.log = append(*o.log, "contact") }
func (o orderListener) ContactUpdated(Contact) {}
func (o orderListener) ContactEnded(Contact)   {}

func TestLoopFrameOrder(t *testing.T) {
	var log []string
	loop := NewLoop()

	player := newBody("player", 0, catPlayer, catCar)
	car := newBody("car", 1, catCar, catPlayer)
	loop.AddNode(car.Node)
	loop.World().AddBody(player)
	loop.World().AddBody(car)
	loop.World().AddContactListener(orderListener{log: &log})

	ticker := &tickRecorder{log: &log}
	loop.AddTickListener(ticker)

	// The timer teleports the car onto the player; physics must see it
	// in the same frame, and the tick comes last.
	loop.Scheduler().After(10*time.Millisecond, "round", func() {
		log = append(log, "timer")
		car.Node.Position.X = 0
	})

	loop.Step(10 * time.Millisecond)

	want := []string{"timer", "contact", "tick"}
	if len(log) != len(want) {
		t.Fatalf("frame log = %v, expected %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("step %d = %s, expected %s", i, log[i], want[i])
		}
	}
	if ticker.ticks[0] != 10*time.Millisecond {
		t.Errorf("tick time = %v, expected 10ms", ticker.ticks[0])
	}
}

func TestLoopCloseStopsEverything(t *testing.T) {
	loop := NewLoop()
	fired := false
	loop.Scheduler().After(10*time.Millisecond, "round", func() { fired = true })
	ticker := &tickRecorder{log: new([]string)}
	loop.AddTickListener(ticker)

	loop.Close()
	loop.Step(time.Second)

	if fired || len(ticker.ticks) != 0 {
		t.Error("closed loop should not run timers or ticks")
	}
	if !loop.Closed() {
		t.Error("Closed() should be true")
	}
}

func TestLoopRemoveNode(t *testing.T) {
	loop := NewLoop()
	n := NewNode("car", core.Vec3{})
	loop.AddNode(n)
	n.Run("drive", MoveBy(core.Vec3{X: 1}, 100*time.Millisecond, TimingLinear))

	loop.Step(50 * time.Millisecond)
	loop.RemoveNode(n)
	loop.Step(50 * time.Millisecond)

	if !n.Removed() {
		t.Error("node should be marked removed")
	}
	if !n.Position.ApproxEqual(core.Vec3{X: 0.5}, eps) {
		t.Errorf("removed node kept moving: %v", n.Position)
	}
}
