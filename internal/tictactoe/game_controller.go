package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
)

// Outcome is the terminal condition of a board.
type Outcome struct {
	Finished bool        `json:"finished"`
	Winner   entity.Mark `json:"winner,omitempty"`
	Draw     bool        `json:"draw"`
}

// GetOutcome - reads the result off the board.
func GetOutcome(board *entity.Board) Outcome {
	if winner, ok := board.CurrentWinner(); ok {
		return Outcome{Finished: true, Winner: winner}
	}

	if board.EmptyCellCount() == 0 {
		return Outcome{Finished: true, Draw: true}
	}

	return Outcome{}
}

// MakeTurn - commits mark at cell and passes the turn when the game goes on.
func MakeTurn(board *entity.Board, state *entity.GameState, mark entity.Mark, cell int) (Outcome, error) {
	if board.IsTerminal() {
		return GetOutcome(board), apperror.ErrGameFinished
	}

	if err := validateMove(board, state, mark, cell); err != nil {
		return Outcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	if !board.MakeMove(cell, mark) {
		return Outcome{}, apperror.ErrCellOccupied
	}

	outcome := GetOutcome(board)
	if outcome.Finished {
		state.Finish()
	} else {
		state.Advance()
	}

	return outcome, nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, state *entity.GameState, mark entity.Mark, cell int) error {
	if cell < 0 || cell >= entity.CellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if state.MarkToMove != mark {
		return apperror.ErrNotYourTurn
	}

	if board.Cell(cell) != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// PlayTurn - applies a move to a session and refreshes its status.
func PlayTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if _, err := MakeTurn(game.Board, &game.State, mark, cell); err != nil {
		return err
	}

	game.UpdateGameState()

	return nil
}

// MatchResult is the final board of a match together with the cells played in order.
type MatchResult struct {
	Board   *entity.Board
	Moves   []int
	Outcome Outcome
}

// PlayMatch - lets two players alternate on a fresh board until the game ends.
func PlayMatch(ctx context.Context, players map[entity.Mark]player.Player, first entity.Mark) (MatchResult, error) {
	board := entity.NewBoard()
	state := entity.NewGameState(first)
	moves := make([]int, 0, entity.CellCount)

	for {
		if err := ctx.Err(); err != nil {
			return MatchResult{}, fmt.Errorf("match interrupted: %w", err)
		}

		mark := state.MarkToMove
		current, ok := players[mark]
		if !ok {
			return MatchResult{}, fmt.Errorf("%w: no player for mark %s", apperror.ErrUnknownOpponent, mark)
		}

		cell, err := current.GetMove(board)
		if err != nil {
			return MatchResult{}, fmt.Errorf("player %s failed to choose a move: %w", mark, err)
		}

		outcome, err := MakeTurn(board, &state, mark, cell)
		if err != nil {
			return MatchResult{}, fmt.Errorf("player %s made an illegal move: %w", mark, err)
		}
		moves = append(moves, cell)

		if outcome.Finished {
			return MatchResult{Board: board, Moves: moves, Outcome: outcome}, nil
		}
	}
}
