package board

import (
	"errors"
	"testing"

	"snake-grid/game/types"
)

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, types.ErrInvalidConfiguration) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidConfiguration", dims[0], dims[1], err)
		}
	}
}

func TestNewIsBlank(t *testing.T) {
	b, err := New(20, 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := b.Count(types.Blank); got != 400 {
		t.Errorf("blank cells = %d, want 400", got)
	}
	if len(b.Blanks()) != 400 {
		t.Errorf("Blanks() len = %d", len(b.Blanks()))
	}
}

func TestInBoundsIsExclusive(t *testing.T) {
	b, _ := New(4, 3)
	tests := []struct {
		p    types.Position
		want bool
	}{
		{types.Position{Row: 0, Col: 0}, true},
		{types.Position{Row: 3, Col: 2}, true},
		{types.Position{Row: 4, Col: 0}, false},
		{types.Position{Row: 0, Col: 3}, false},
		{types.Position{Row: -1, Col: 0}, false},
		{types.Position{Row: 0, Col: -1}, false},
	}
	for _, tt := range tests {
		if got := b.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSetAtAndBlanks(t *testing.T) {
	b, _ := New(2, 2)
	b.Set(types.Position{Row: 0, Col: 1}, types.Snake)
	b.Set(types.Position{Row: 1, Col: 0}, types.Fruit)

	if got := b.At(types.Position{Row: 0, Col: 1}); got != types.Snake {
		t.Errorf("At(0,1) = %v", got)
	}
	blanks := b.Blanks()
	want := []types.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	if len(blanks) != len(want) {
		t.Fatalf("Blanks() = %v, want %v", blanks, want)
	}
	for i := range want {
		if blanks[i] != want[i] {
			t.Errorf("Blanks()[%d] = %v, want %v", i, blanks[i], want[i])
		}
	}

	b.Clear()
	if b.Count(types.Blank) != 4 {
		t.Error("Clear left non-blank cells")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b, _ := New(3, 2)
	p := types.Position{Row: 2, Col: 1}
	b.Set(p, types.Snake)

	snap := b.Snapshot()
	if len(snap) != 3 || len(snap[0]) != 2 {
		t.Fatalf("snapshot shape %dx%d", len(snap), len(snap[0]))
	}
	if snap[2][1] != types.Snake {
		t.Errorf("snapshot[2][1] = %v", snap[2][1])
	}
	snap[2][1] = types.Fruit
	if b.At(p) != types.Snake {
		t.Error("mutating the snapshot changed the board")
	}
}

func TestOutOfBoundsAccessPanics(t *testing.T) {
	b, _ := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds At")
		}
	}()
	b.At(types.Position{Row: 2, Col: 0})
}
