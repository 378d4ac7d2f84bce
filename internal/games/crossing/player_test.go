package crossing

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func newTestPlayer(t *testing.T) (*Player, *Level) {
	t.Helper()
	cfg := testConfig()
	lvl, err := NewLevel(cfg.Level, 1)
	if err != nil {
		t.Fatal(err)
	}
	return NewPlayer(lvl, cfg.Player, lvl.Start()), lvl
}

func stepPlayer(p *Player, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += 10 * time.Millisecond {
		p.Node.Update(10 * time.Millisecond)
		p.Hop.Update(10 * time.Millisecond)
	}
}

func TestPlayerMoveUpdatesImmediately(t *testing.T) {
	p, lvl := newTestPlayer(t)

	first := p.Move(MoveForward)
	second := p.Move(MoveForward)

	if !first.Moved || !second.Moved {
		t.Fatal("both moves should be accepted")
	}
	if p.Position().Row != lvl.Start().Row-2 {
		t.Errorf("row = %d, second move should use the updated position", p.Position().Row)
	}
	if !p.Node.HasAction(actionMove) {
		t.Error("move animation should be running")
	}
}

func TestPlayerAnimationReachesTarget(t *testing.T) {
	p, lvl := newTestPlayer(t)
	cfg := testConfig().Player

	p.Move(MoveRight)
	stepPlayer(p, config.Seconds(cfg.HopDuration))
	if !p.Airborne() {
		t.Error("player should be at the top of the hop")
	}

	stepPlayer(p, config.Seconds(cfg.MoveDuration))
	want := lvl.CoordinatesForGridPosition(lvl.Start().Column+1, lvl.Start().Row)
	if !p.Node.Position.ApproxEqual(want, eps) {
		t.Errorf("position = %+v, expected %+v", p.Node.Position, want)
	}
	if !p.Hop.Position.ApproxEqual(core.Vec3{Y: cfg.RestHeight}, eps) {
		t.Errorf("hop = %+v, expected rest height", p.Hop.Position)
	}
	if p.Airborne() || p.Node.HasAction(actionMove) || p.Hop.HasAction(actionHop) {
		t.Error("animations should be finished")
	}
}

func TestPlayerRejectedMoveHasNoEffect(t *testing.T) {
	cfg := testConfig()
	lvl, _ := NewLevel(cfg.Level, 1)
	p := NewPlayer(lvl, cfg.Player, GridPosition{Column: 0, Row: 3})
	start := p.Node.Position

	for i := 0; i < 3; i++ {
		if res := p.Move(MoveLeft); res.Moved {
			t.Fatal("move off the left edge accepted")
		}
	}
	if p.Position() != (GridPosition{Column: 0, Row: 3}) {
		t.Errorf("position = %+v", p.Position())
	}
	if p.Node.HasAction(actionMove) || p.Hop.HasAction(actionHop) {
		t.Error("rejected move started an animation")
	}
	if p.Node.Position != start {
		t.Error("rejected move changed the world position")
	}
}

func TestPlayerHopDoesNotMoveFootprint(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.Move(MoveLeft)
	stepPlayer(p, config.Seconds(testConfig().Player.HopDuration))

	if p.Body.Node != p.Node {
		t.Fatal("collision body should ride the ground node")
	}
	if p.Body.Bounds().Center.Y != 0 {
		t.Errorf("footprint Y = %v, hop leaked into collision", p.Body.Bounds().Center.Y)
	}
}
