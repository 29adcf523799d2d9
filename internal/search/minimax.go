// Package search implements exhaustive minimax over the 3x3 game tree.
package search

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// NoPosition marks a result computed for a terminal board.
const NoPosition = -1

// Result is the chosen cell and its minimax score.
// Wins score +(empty cells + 1) for the maximizing mark and the negation for the other one, so quicker wins
// and slower losses weigh more.
type Result struct {
	Position int `json:"position"`
	Score    int `json:"score"`
}

func (that Result) HasPosition() bool {
	return that.Position != NoPosition
}

// Stats counts the positions visited by one search.
type Stats struct {
	Nodes int
}

// SelectMove - returns the optimal move for toMove, scored from the point of view of maximizing.
// The board is mutated while searching and restored before returning.
func SelectMove(board *entity.Board, toMove, maximizing entity.Mark) Result {
	result, _ := Search(board, toMove, maximizing)
	return result
}

// Search - same as SelectMove, also reporting how many positions were visited.
func Search(board *entity.Board, toMove, maximizing entity.Mark) (Result, Stats) {
	var stats Stats
	result := selectMove(board, toMove, maximizing, &stats)
	return result, stats
}

func selectMove(board *entity.Board, toMove, maximizing entity.Mark, stats *Stats) Result {
	stats.Nodes++

	// under strict alternation the winner is always the opponent of toMove
	if winner, ok := board.CurrentWinner(); ok {
		weight := board.EmptyCellCount() + 1
		if winner == maximizing {
			return Result{Position: NoPosition, Score: weight}
		}
		return Result{Position: NoPosition, Score: -weight}
	}

	if !board.HasEmptyCell() {
		return Result{Position: NoPosition, Score: 0}
	}

	maximize := toMove == maximizing

	best := Result{Position: NoPosition, Score: math.MaxInt}
	if maximize {
		best.Score = math.MinInt
	}

	for _, cell := range board.AvailableMoves() {
		candidate := withMove(board, cell, toMove, func() Result {
			return selectMove(board, toMove.Opponent(), maximizing, stats)
		})
		candidate.Position = cell

		// strict comparison keeps the lowest cell on ties
		if maximize && candidate.Score > best.Score || !maximize && candidate.Score < best.Score {
			best = candidate
		}
	}

	return best
}

// withMove - plays mark at cell for the duration of eval. The move is undone on every return path.
func withMove(board *entity.Board, cell int, mark entity.Mark, eval func() Result) Result {
	if !board.MakeMove(cell, mark) {
		panic("search: available move rejected by board")
	}
	defer board.UndoMove(cell)

	return eval()
}
