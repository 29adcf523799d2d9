package player

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type randomPlayer struct {
	intn func(n int) int
}

// NewRandomPlayer - picks uniformly among the empty cells.
func NewRandomPlayer(opts ...Option) Player {
	o := buildOptions(opts)
	return &randomPlayer{intn: o.intn}
}

func (that *randomPlayer) GetMove(board *entity.Board) (int, error) {
	availableCells := board.AvailableMoves()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.intn(len(availableCells))], nil
}
