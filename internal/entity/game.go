package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	ResultTie = "-"
)

// Game is a human versus engine session kept while it is in progress.
type Game struct {
	ID      string    `json:"id"`
	Board   *Board    `json:"board"`
	State   GameState `json:"state"`
	Status  string    `json:"status"`
	Winner  string    `json:"winner"`
	Players []*Player `json:"players"`
}

// NewGame - X always moves first, the engine plays the mark the human did not take.
func NewGame(id string, humanMark Mark, engineKind string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		State:  NewGameState(X),
		Status: StatusOngoing,
		Players: []*Player{
			{Mark: humanMark},
			{Mark: humanMark.Opponent(), IsEngine: true, Kind: engineKind},
		},
	}
}

// UpdateGameState - derives status and winner from the board after a move.
func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.CurrentWinner(); ok {
		that.Winner = string(winner)
		that.Status = StatusFinished
		that.State.Finish()
		return
	}

	if !that.Board.HasEmptyCell() {
		that.Winner = ResultTie
		that.Status = StatusFinished
		that.State.Finish()
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// Engine - returns the engine-driven side, nil for a malformed session.
func (that *Game) Engine() *Player {
	for _, player := range that.Players {
		if player.IsEngine {
			return player
		}
	}
	return nil
}

func (that *Game) Human() *Player {
	for _, player := range that.Players {
		if !player.IsEngine {
			return player
		}
	}
	return nil
}

// IsEngineTurn - reports whether the engine side is to move.
func (that *Game) IsEngineTurn() bool {
	engine := that.Engine()
	return engine != nil && that.IsOngoing() && that.State.MarkToMove == engine.Mark
}
