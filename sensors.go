package main

import (
	"fmt"

	"snake-grid/game"
	"snake-grid/game/types"
)

// Relative actions understood by the autopilot
const (
	actionLeft = iota
	actionStraight
	actionRight
	numActions
)

// observation is what the autopilot sees of a board, whether it comes from
// the engine during training or from a controller view during play.
type observation struct {
	cells    [][]types.Cell
	head     types.Position
	dir      types.Direction
	fruit    types.Position
	hasFruit bool
}

func observeEngine(e *game.Engine) observation {
	fruit, ok := e.Fruit()
	return observation{
		cells:    e.Board().Snapshot(),
		head:     e.Snake().GetHead(),
		dir:      e.Snake().Direction(),
		fruit:    fruit,
		hasFruit: ok,
	}
}

func observeView(v game.View) observation {
	return observation{
		cells:    v.Cells,
		head:     v.Head,
		dir:      v.Direction,
		fruit:    v.Fruit,
		hasFruit: v.HasFruit,
	}
}

// relativeActionToAbsolute turns left/straight/right into a heading. None of
// the results is ever the reverse of the current heading.
func relativeActionToAbsolute(current types.Direction, action int) types.Direction {
	switch action {
	case actionLeft:
		return current.TurnLeft()
	case actionRight:
		return current.TurnRight()
	default:
		return current
	}
}

func (o observation) danger(p types.Position) bool {
	if p.Row < 0 || p.Row >= len(o.cells) || p.Col < 0 || p.Col >= len(o.cells[p.Row]) {
		return true
	}
	return o.cells[p.Row][p.Col] == types.Snake
}

// fruitDistance is the Manhattan distance from the head, or -1 without fruit
func (o observation) fruitDistance() int {
	if !o.hasFruit {
		return -1
	}
	return manhattanDistance(o.head, o.fruit)
}

// stateKey encodes danger left/ahead/right and where the fruit lies in the
// snake's own frame of reference.
func (o observation) stateKey() string {
	var dangers [numActions]int
	for a := 0; a < numActions; a++ {
		next := o.head.Add(relativeActionToAbsolute(o.dir, a).Delta())
		if o.danger(next) {
			dangers[a] = 1
		}
	}

	ahead, side := 0, 0
	if o.hasFruit {
		dr, dc := o.fruit.Row-o.head.Row, o.fruit.Col-o.head.Col
		fwd := o.dir.Delta()
		left := o.dir.TurnLeft().Delta()
		ahead = sign(dr*fwd.Row + dc*fwd.Col)
		side = sign(dr*left.Row + dc*left.Col)
	}
	return fmt.Sprintf("%d%d%d:%d:%d", dangers[actionLeft], dangers[actionStraight], dangers[actionRight], ahead, side)
}
