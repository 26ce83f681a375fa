package manager

import (
	"snake-grid/game/board"
	"snake-grid/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Classify decides what happens when the head moves to pos. Walls are
// checked before the board is read, so a terminal outcome never touches it.
func (cm *CollisionManager) Classify(b *board.Board, pos types.Position) types.Outcome {
	if cm.isWallCollision(b, pos) {
		return types.OutOfBounds
	}
	switch b.At(pos) {
	case types.Snake:
		return types.SelfCollision
	case types.Fruit:
		return types.Grew
	default:
		return types.Moved
	}
}

// isWallCollision uses exclusive upper bounds: row == rows is already outside
func (cm *CollisionManager) isWallCollision(b *board.Board, pos types.Position) bool {
	return !b.InBounds(pos)
}

// IsDanger reports whether moving to pos would end the round
func (cm *CollisionManager) IsDanger(b *board.Board, pos types.Position) bool {
	return cm.Classify(b, pos).Terminal()
}
