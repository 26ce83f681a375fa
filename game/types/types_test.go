package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
		if got := tt.d.Opposite().Opposite(); got != tt.d {
			t.Errorf("double opposite of %v = %v", tt.d, got)
		}
	}
}

func TestDirectionDeltaCancelsWithOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (Position{}) {
			t.Errorf("%v delta + opposite delta = %v", d, sum)
		}
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%v left then right = %v", d, got)
		}
		if got := d.TurnLeft().TurnLeft(); got != d.Opposite() {
			t.Errorf("%v two left turns = %v, want %v", d, got, d.Opposite())
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"ArrowUp", Up, true},
		{"arrowdown", Down, true},
		{" left ", Left, true},
		{"RIGHT", Right, true},
		{"", 0, false},
		{"north", 0, false},
		{"ArrowUpp", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInvalidDirection(t *testing.T) {
	var d Direction
	if d.Valid() {
		t.Fatal("zero direction must not be valid")
	}
	if d.Delta() != (Position{}) {
		t.Errorf("zero direction delta = %v", d.Delta())
	}
	if Direction(42).Opposite() != Direction(42) {
		t.Error("unknown direction should be its own opposite")
	}
}

func TestStateIsPaused(t *testing.T) {
	want := map[State]bool{Idle: true, Paused: true, Running: false, Over: false}
	for s, w := range want {
		if s.IsPaused() != w {
			t.Errorf("%v.IsPaused() = %v", s, !w)
		}
	}
}

func TestOutcomeTerminal(t *testing.T) {
	if Moved.Terminal() || Grew.Terminal() {
		t.Error("moves that keep the snake alive must not be terminal")
	}
	if !OutOfBounds.Terminal() || !SelfCollision.Terminal() {
		t.Error("collisions must be terminal")
	}
}
