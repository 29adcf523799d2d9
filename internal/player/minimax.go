package player

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type MinimaxPlayer struct {
	mark entity.Mark
	opts options
}

// NewMinimaxPlayer - plays optimal moves for mark.
func NewMinimaxPlayer(mark entity.Mark, opts ...Option) *MinimaxPlayer {
	return &MinimaxPlayer{
		mark: mark,
		opts: buildOptions(opts),
	}
}

func (that *MinimaxPlayer) Mark() entity.Mark {
	return that.mark
}

// GetMove - on an empty board every opening is worth the same, so a random cell is played without searching.
func (that *MinimaxPlayer) GetMove(board *entity.Board) (int, error) {
	if board.IsTerminal() {
		return 0, apperror.ErrNoAvailableMoves
	}

	if that.opts.openingShortcut && board.EmptyCellCount() == entity.CellCount {
		return that.opts.intn(entity.CellCount), nil
	}

	result := that.opts.searcher(board, that.mark, that.mark)
	if !result.HasPosition() {
		return 0, apperror.ErrNoAvailableMoves
	}

	return result.Position, nil
}
