package rest

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type NewGameRequest struct {
	Mark     string `json:"mark" binding:"required"`
	Opponent string `json:"opponent"`
}

type TurnRequest struct {
	Cell *int `json:"cell" binding:"required"`
}

type AnalyseRequest struct {
	Board  [entity.CellCount]string `json:"board"`
	ToMove string                   `json:"to_move" binding:"required"`
}

type AnalyseResponse struct {
	Position *int `json:"position"`
	Score    int  `json:"score"`
}

type GameResponse struct {
	ID         string                   `json:"id"`
	Board      [entity.CellCount]string `json:"board"`
	Status     string                   `json:"status"`
	Winner     string                   `json:"winner"`
	PlayerTurn string                   `json:"player_turn"`
	HumanMark  string                   `json:"human_mark"`
	Opponent   string                   `json:"opponent"`
}

func newGameResponse(game *entity.Game) GameResponse {
	response := GameResponse{
		ID:         game.ID,
		Status:     game.Status,
		Winner:     game.Winner,
		PlayerTurn: string(game.State.MarkToMove),
	}

	for i, mark := range game.Board.Cells() {
		response.Board[i] = string(mark)
	}

	if human := game.Human(); human != nil {
		response.HumanMark = string(human.Mark)
	}

	if engine := game.Engine(); engine != nil {
		response.Opponent = engine.Kind
	}

	return response
}
