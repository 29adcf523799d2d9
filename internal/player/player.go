// Package player provides the move-selection strategies that drive engine turns.
package player

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/search"
)

// Player picks the cell to play on the given board.
type Player interface {
	GetMove(board *entity.Board) (int, error)
}

// Searcher evaluates a position, search.SelectMove in production.
type Searcher func(board *entity.Board, toMove, maximizing entity.Mark) search.Result

type options struct {
	intn            func(n int) int
	searcher        Searcher
	openingShortcut bool
}

type Option func(*options)

// WithRand - draws random choices from rnd instead of the shared source.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) {
		o.intn = rnd.Intn
	}
}

func WithSearcher(searcher Searcher) Option {
	return func(o *options) {
		o.searcher = searcher
	}
}

// WithOpeningShortcut - toggles the random first move on an empty board.
func WithOpeningShortcut(enabled bool) Option {
	return func(o *options) {
		o.openingShortcut = enabled
	}
}

func buildOptions(opts []Option) options {
	o := options{
		intn:            rand.Intn, //nolint: gosec // it's ok
		searcher:        search.SelectMove,
		openingShortcut: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New - builds a player of the given kind for mark.
func New(kind string, mark entity.Mark, opts ...Option) (Player, error) {
	switch kind {
	case entity.OpponentRandom:
		return NewRandomPlayer(opts...), nil
	case entity.OpponentMinimax:
		return NewMinimaxPlayer(mark, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownOpponent, kind)
	}
}
