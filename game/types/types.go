package types

import (
	"errors"
	"fmt"
	"strings"
)

// Default board and snake layout
const (
	DefaultRows        = 20
	DefaultCols        = 20
	DefaultSnakeLength = 4
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrBoardFull            = errors.New("no blank cell left for fruit")
	ErrRoundOver            = errors.New("round is over, reset first")
)

// Cell is the occupancy of one board position
type Cell uint8

const (
	Blank Cell = iota
	Snake
	Fruit
)

func (c Cell) String() string {
	switch c {
	case Blank:
		return "blank"
	case Snake:
		return "snake"
	case Fruit:
		return "fruit"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Position is a (row, column) coordinate on the board
type Position struct {
	Row int
	Col int
}

func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is the snake heading
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the reverse heading, or d itself when d is not valid
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta is the one-step displacement for d; rows grow downwards
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{Row: -1}
	case Down:
		return Position{Row: 1}
	case Left:
		return Position{Col: -1}
	case Right:
		return Position{Col: 1}
	default:
		return Position{}
	}
}

// TurnLeft returns the heading after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	default:
		return d
	}
}

// TurnRight returns the heading after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection maps user input to a Direction. Accepts plain names and
// browser key names; anything else reports false and should be ignored.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "arrowup":
		return Up, true
	case "down", "arrowdown":
		return Down, true
	case "left", "arrowleft":
		return Left, true
	case "right", "arrowright":
		return Right, true
	default:
		return 0, false
	}
}

// State is the lifecycle of one round
type State int

const (
	Idle State = iota
	Running
	Paused
	Over
)

// IsPaused reports whether the round is waiting for a start command
func (s State) IsPaused() bool {
	return s == Idle || s == Paused
}

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome classifies a single move of the head
type Outcome int

const (
	Moved Outcome = iota
	Grew
	OutOfBounds
	SelfCollision
)

// Terminal reports whether the outcome ends the round
func (o Outcome) Terminal() bool {
	return o == OutOfBounds || o == SelfCollision
}

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Grew:
		return "grew"
	case OutOfBounds:
		return "out of bounds"
	case SelfCollision:
		return "self collision"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}
