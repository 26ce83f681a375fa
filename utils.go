package main

import "snake-grid/game/types"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// manhattanDistance on a bounded board, no wrapping
func manhattanDistance(p1, p2 types.Position) int {
	return abs(p2.Row-p1.Row) + abs(p2.Col-p1.Col)
}
