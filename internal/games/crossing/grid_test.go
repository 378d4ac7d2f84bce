package crossing

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestAttemptMoveInterior(t *testing.T) {
	const width, height = 5, 7
	deltas := map[MoveDirection]GridPosition{
		MoveForward:  {Column: 0, Row: -1},
		MoveBackward: {Column: 0, Row: 1},
		MoveLeft:     {Column: -1, Row: 0},
		MoveRight:    {Column: 1, Row: 0},
	}

	for dir, d := range deltas {
		for col := 1; col < width-1; col++ {
			for row := 1; row < height-1; row++ {
				pos := GridPosition{Column: col, Row: row}
				res := AttemptMove(dir, pos, width, height)
				if !res.Moved {
					t.Fatalf("%s from %+v rejected", dir, pos)
				}
				if res.Column != col+d.Column || res.Row != row+d.Row {
					t.Errorf("%s from %+v = (%d,%d)", dir, pos, res.Column, res.Row)
				}
			}
		}
	}
}

func TestAttemptMoveBoundary(t *testing.T) {
	const width, height = 5, 7
	tests := []struct {
		dir MoveDirection
		pos GridPosition
	}{
		{MoveForward, GridPosition{Column: 2, Row: 0}},
		{MoveBackward, GridPosition{Column: 2, Row: height - 1}},
		{MoveLeft, GridPosition{Column: 0, Row: 3}},
		{MoveRight, GridPosition{Column: width - 1, Row: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			pos := tt.pos
			for i := 0; i < 3; i++ {
				res := AttemptMove(tt.dir, pos, width, height)
				if res.Moved {
					t.Fatalf("attempt %d: move off the grid accepted", i)
				}
				if res.Position() != tt.pos {
					t.Fatalf("attempt %d: position changed to %+v", i, res.Position())
				}
				pos = res.Position()
			}
		})
	}
}

func TestDirectionForAction(t *testing.T) {
	tests := []struct {
		action core.Action
		want   MoveDirection
		ok     bool
	}{
		{core.ActionForward, MoveForward, true},
		{core.ActionBackward, MoveBackward, true},
		{core.ActionLeft, MoveLeft, true},
		{core.ActionRight, MoveRight, true},
		{core.ActionBack, 0, false},
		{core.ActionQuit, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		got, ok := DirectionForAction(tt.action)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("DirectionForAction(%s) = %s, %v", tt.action, got, ok)
		}
	}
}
