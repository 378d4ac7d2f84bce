package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

const eps = 1e-9

func TestMoveToReachesTarget(t *testing.T) {
	n := NewNode("n", core.Vec3{})
	n.Run("move", MoveTo(core.Vec3{X: 1, Z: -2}, 100*time.Millisecond, TimingLinear))

	n.Update(50 * time.Millisecond)
	if !n.Position.ApproxEqual(core.Vec3{X: 0.5, Z: -1}, eps) {
		t.Errorf("halfway position = %v", n.Position)
	}
	n.Update(50 * time.Millisecond)
	if n.Position != (core.Vec3{X: 1, Z: -2}) {
		t.Errorf("final position = %v", n.Position)
	}
	if n.HasAction("move") {
		t.Error("finished action should be removed")
	}
}

func TestKeyedRunReplaces(t *testing.T) {
	n := NewNode("n", core.Vec3{})
	n.Run("move", MoveTo(core.Vec3{X: 1}, 100*time.Millisecond, TimingLinear))
	n.Update(50 * time.Millisecond)

	n.Run("move", MoveTo(core.Vec3{X: -1}, 100*time.Millisecond, TimingLinear))
	n.Update(100 * time.Millisecond)

	if n.Position != (core.Vec3{X: -1}) {
		t.Errorf("position = %v, expected replacement target", n.Position)
	}
}

func TestMoveByComposes(t *testing.T) {
	n := NewNode("n", core.Vec3{X: 1})
	n.Run("", MoveBy(core.Vec3{X: 2}, 100*time.Millisecond, TimingLinear))
	n.Run("", MoveBy(core.Vec3{Y: 1}, 100*time.Millisecond, TimingLinear))

	for i := 0; i < 10; i++ {
		n.Update(10 * time.Millisecond)
	}
	if !n.Position.ApproxEqual(core.Vec3{X: 3, Y: 1}, eps) {
		t.Errorf("position = %v, expected (3, 1, 0)", n.Position)
	}
}

func TestSequenceHopReturnsToGround(t *testing.T) {
	n := NewNode("hop", core.Vec3{})
	n.Run("hop", Sequence(
		MoveBy(core.Vec3{Y: 0.2}, 100*time.Millisecond, TimingEaseOut),
		MoveBy(core.Vec3{Y: -0.2}, 100*time.Millisecond, TimingEaseIn),
	))

	n.Update(100 * time.Millisecond)
	if !n.Position.ApproxEqual(core.Vec3{Y: 0.2}, eps) {
		t.Errorf("apex = %v, expected y=0.2", n.Position)
	}
	n.Update(150 * time.Millisecond)
	if !n.Position.ApproxEqual(core.Vec3{}, eps) {
		t.Errorf("landed = %v, expected ground", n.Position)
	}
	if n.HasAction("hop") {
		t.Error("hop should have finished")
	}
}

func TestSequenceCarriesLeftoverTime(t *testing.T) {
	n := NewNode("n", core.Vec3{})
	n.Run("", Sequence(
		MoveBy(core.Vec3{Z: 0.3}, 30*time.Millisecond, TimingLinear),
		MoveBy(core.Vec3{X: 1}, 100*time.Millisecond, TimingLinear),
	))

	n.Update(80 * time.Millisecond)
	if !n.Position.ApproxEqual(core.Vec3{X: 0.5, Z: 0.3}, eps) {
		t.Errorf("position = %v, expected leftover 50ms applied to MoveBy", n.Position)
	}
}

func TestChildWorldPosition(t *testing.T) {
	parent := NewNode("p", core.Vec3{X: 1, Z: 2})
	child := NewNode("c", core.Vec3{Y: 0.5})
	parent.AddChild(child)

	if got := child.WorldPosition(); got != (core.Vec3{X: 1, Y: 0.5, Z: 2}) {
		t.Errorf("WorldPosition() = %v", got)
	}
	if child.Parent() != parent {
		t.Error("Parent() mismatch")
	}
}
