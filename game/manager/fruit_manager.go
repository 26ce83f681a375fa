package manager

import (
	"snake-grid/game/board"
	"snake-grid/game/types"

	"golang.org/x/exp/rand"
)

// FruitManager places fruit on a uniformly random blank cell
type FruitManager struct {
	rng *rand.Rand
}

func NewFruitManager(seed uint64) *FruitManager {
	return &FruitManager{rng: rand.New(rand.NewSource(seed))}
}

// Place picks among the blank cells directly instead of sampling and
// retrying, so a full board fails with ErrBoardFull instead of spinning.
func (fm *FruitManager) Place(b *board.Board) (types.Position, error) {
	blanks := b.Blanks()
	if len(blanks) == 0 {
		return types.Position{}, types.ErrBoardFull
	}
	pos := blanks[fm.rng.Intn(len(blanks))]
	b.Set(pos, types.Fruit)
	return pos, nil
}
