package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/search"
)

type uGame interface {
	NewGame(ctx context.Context, humanMark entity.Mark, opponent string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Analyse(cells [entity.CellCount]entity.Mark, toMove entity.Mark) (search.Result, error)
}

type handlers struct {
	logger *slog.Logger
	uGame  uGame
}

func newHandlers(logger *slog.Logger, uGame uGame) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *handlers) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (that *handlers) newGame(c *gin.Context) {
	var req NewGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mark required"})
		return
	}

	mark, err := entity.ParseMark(req.Mark)
	if err != nil || mark == entity.Empty {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mark must be X or O"})
		return
	}

	game, err := that.uGame.NewGame(c.Request.Context(), mark, req.Opponent)
	if err != nil {
		that.writeError(c, "newGame", err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

func (that *handlers) getGame(c *gin.Context) {
	game, err := that.uGame.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.writeError(c, "getGame", err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

func (that *handlers) makeTurn(c *gin.Context) {
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cell required"})
		return
	}

	game, err := that.uGame.MakeTurn(c.Request.Context(), c.Param("id"), *req.Cell)
	if err != nil {
		that.writeError(c, "makeTurn", err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

func (that *handlers) analyse(c *gin.Context) {
	var req AnalyseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	toMove, err := entity.ParseMark(req.ToMove)
	if err != nil || toMove == entity.Empty {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to_move must be X or O"})
		return
	}

	var cells [entity.CellCount]entity.Mark
	for i, value := range req.Board {
		if cells[i], err = entity.ParseMark(value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := that.uGame.Analyse(cells, toMove)
	if err != nil {
		that.writeError(c, "analyse", err)
		return
	}

	response := AnalyseResponse{Score: result.Score}
	if result.HasPosition() {
		position := result.Position
		response.Position = &position
	}

	c.JSON(http.StatusOK, response)
}

func (that *handlers) writeError(c *gin.Context, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrUnknownOpponent),
		errors.Is(err, entity.ErrUnknownMark):
		status = http.StatusBadRequest
	default:
		that.logger.Error("request failed", "method", method, "error", err)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
