package entity

import (
	"fmt"

	"snake-grid/game/board"
	"snake-grid/game/types"
)

// Snake is the body, stored tail-first with the head last, plus its heading
type Snake struct {
	Body      []types.Position
	direction types.Direction
}

// NewSnake lays length segments on b starting at tail and stepping along dir.
// The last segment is the head and dir becomes the heading.
func NewSnake(b *board.Board, tail types.Position, length int, dir types.Direction) (*Snake, error) {
	if length < 1 || !dir.Valid() {
		return nil, fmt.Errorf("snake length %d heading %v: %w", length, dir, types.ErrInvalidConfiguration)
	}
	body := make([]types.Position, 0, length)
	p := tail
	for i := 0; i < length; i++ {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("snake segment %v off a %dx%d board: %w", p, b.Rows(), b.Cols(), types.ErrInvalidConfiguration)
		}
		body = append(body, p)
		p = p.Add(dir.Delta())
	}
	for _, seg := range body {
		b.Set(seg, types.Snake)
	}
	return &Snake{Body: body, direction: dir}, nil
}

func (s *Snake) Move(newHead types.Position) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() types.Position {
	tail := s.Body[0]
	s.Body = s.Body[1:]
	return tail
}

func (s *Snake) GetHead() types.Position {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Position {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Positions returns a copy of the body, tail-first
func (s *Snake) Positions() []types.Position {
	out := make([]types.Position, len(s.Body))
	copy(out, s.Body)
	return out
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection is the only place a heading changes. Unknown directions and
// direct reversals are refused and reported as false.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir
	return true
}

// NextHead is the position one step ahead of the head
func (s *Snake) NextHead() types.Position {
	return s.GetHead().Add(s.direction.Delta())
}

// Advance pushes next as the new head and marks it on b. Without growth the
// tail is popped and its cell blanked. next must already be validated.
func (s *Snake) Advance(b *board.Board, next types.Position, grow bool) {
	s.Move(next)
	b.Set(next, types.Snake)
	if grow {
		return
	}
	tail := s.RemoveTail()
	b.Set(tail, types.Blank)
}
