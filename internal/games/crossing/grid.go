// Package crossing implements a cross-the-road arcade game: the player hops
// across a grid of grass and road lanes while cars drive past. Game logic
// runs on a deterministic sim.Loop; rendering goes through core.Screen.
package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// MoveDirection is a single grid step requested by the player.
type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
)

// String returns the direction name.
func (d MoveDirection) String() string {
	switch d {
	case MoveForward:
		return "Forward"
	case MoveBackward:
		return "Backward"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// DirectionForAction maps a movement action to a direction.
func DirectionForAction(a core.Action) (MoveDirection, bool) {
	switch a {
	case core.ActionForward:
		return MoveForward, true
	case core.ActionBackward:
		return MoveBackward, true
	case core.ActionLeft:
		return MoveLeft, true
	case core.ActionRight:
		return MoveRight, true
	}
	return 0, false
}

// GridPosition is a logical cell, independent of world coordinates.
type GridPosition struct {
	Column int
	Row    int
}

// MoveResult is the outcome of a move attempt. When Moved is false the
// column and row are the unchanged current position.
type MoveResult struct {
	Moved  bool
	Column int
	Row    int
}

// Position returns the result as a grid position.
func (r MoveResult) Position() GridPosition {
	return GridPosition{Column: r.Column, Row: r.Row}
}

// AttemptMove applies one step in dir to pos. Forward decreases the row,
// Backward increases it, Left decreases the column and Right increases it.
// Moves leaving [0,width)x[0,height) are rejected. Cars do not block cells.
func AttemptMove(dir MoveDirection, pos GridPosition, width, height int) MoveResult {
	col, row := pos.Column, pos.Row
	switch dir {
	case MoveForward:
		row--
	case MoveBackward:
		row++
	case MoveLeft:
		col--
	case MoveRight:
		col++
	default:
		return MoveResult{Column: pos.Column, Row: pos.Row}
	}

	if col < 0 || col >= width || row < 0 || row >= height {
		return MoveResult{Column: pos.Column, Row: pos.Row}
	}
	return MoveResult{Moved: true, Column: col, Row: row}
}
