package game

import (
	"errors"
	"fmt"

	"snake-grid/game/board"
	"snake-grid/game/entity"
	"snake-grid/game/manager"
	"snake-grid/game/types"
)

// Config fixes the board and the starting layout of every round
type Config struct {
	Rows        int
	Cols        int
	SnakeLength int
	Heading     types.Direction
	Seed        uint64
}

// DefaultConfig is a 20x20 board with a four-segment snake heading left
// from the middle row.
func DefaultConfig() Config {
	return Config{
		Rows:        types.DefaultRows,
		Cols:        types.DefaultCols,
		SnakeLength: types.DefaultSnakeLength,
		Heading:     types.Left,
	}
}

// Tail is where the first segment of a new snake is laid
func (c Config) Tail() types.Position {
	return types.Position{Row: c.Rows / 2, Col: c.Cols / 2}
}

// Engine applies one move per Step. It is not safe for concurrent use;
// the Controller serializes access.
type Engine struct {
	cfg        Config
	board      *board.Board
	snake      *entity.Snake
	collisions *manager.CollisionManager
	fruits     *manager.FruitManager

	fruit    types.Position
	hasFruit bool
	full     bool
	steps    int
}

func NewEngine(cfg Config) (*Engine, error) {
	b, err := board.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:        cfg,
		board:      b,
		collisions: manager.NewCollisionManager(),
		fruits:     manager.NewFruitManager(cfg.Seed),
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset clears the board, lays a fresh snake and places the first fruit
func (e *Engine) Reset() error {
	e.board.Clear()
	snake, err := entity.NewSnake(e.board, e.cfg.Tail(), e.cfg.SnakeLength, e.cfg.Heading)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	e.snake = snake
	e.steps = 0
	e.full = false
	e.hasFruit = false
	e.placeFruit()
	return nil
}

func (e *Engine) placeFruit() {
	pos, err := e.fruits.Place(e.board)
	if errors.Is(err, types.ErrBoardFull) {
		e.full = true
		return
	}
	e.fruit = pos
	e.hasFruit = true
}

// Step moves the snake one cell along its heading. Terminal outcomes leave
// the board and body untouched.
func (e *Engine) Step() types.Outcome {
	next := e.snake.NextHead()
	outcome := e.collisions.Classify(e.board, next)
	switch outcome {
	case types.OutOfBounds, types.SelfCollision:
		return outcome
	case types.Grew:
		e.snake.Advance(e.board, next, true)
		e.hasFruit = false
		e.placeFruit()
	default:
		e.snake.Advance(e.board, next, false)
	}
	e.steps++
	return outcome
}

// RequestDirection forwards to the snake's reversal filter
func (e *Engine) RequestDirection(d types.Direction) bool {
	return e.snake.SetDirection(d)
}

// Board is exposed for reading; only Step and Reset mutate it
func (e *Engine) Board() *board.Board { return e.board }

func (e *Engine) Snake() *entity.Snake { return e.snake }

func (e *Engine) Config() Config { return e.cfg }

// Fruit returns the fruit position and whether one is on the board
func (e *Engine) Fruit() (types.Position, bool) {
	return e.fruit, e.hasFruit
}

// Full reports that the snake covers every cell and no fruit could be placed
func (e *Engine) Full() bool { return e.full }

// Score is the snake length
func (e *Engine) Score() int { return e.snake.Len() }

func (e *Engine) Steps() int { return e.steps }
