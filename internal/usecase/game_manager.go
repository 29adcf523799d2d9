package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
	"github.com/rocketscienceinc/tictactoe-engine/internal/search"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs human versus engine sessions.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	defaultOpponent string
	playerOpts      []player.Option
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, defaultOpponent string, playerOpts ...player.Option) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,

		defaultOpponent: defaultOpponent,
		playerOpts:      playerOpts,
	}
}

// NewGame - starts a session. X moves first, so the engine replies at once when the human takes O.
func (that *GameManager) NewGame(ctx context.Context, humanMark entity.Mark, opponent string) (*entity.Game, error) {
	if !humanMark.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownMark, humanMark)
	}

	if opponent == "" {
		opponent = that.defaultOpponent
	}

	if _, err := player.New(opponent, humanMark.Opponent(), that.playerOpts...); err != nil {
		return nil, fmt.Errorf("failed to create opponent: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), humanMark, opponent)

	if game.IsEngineTurn() {
		if err := that.engineTurn(game); err != nil {
			return nil, fmt.Errorf("engine failed to make first turn: %w", err)
		}
	}

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "human", humanMark, "opponent", opponent)

	return game, nil
}

// MakeTurn - plays the human move and the engine reply. A finished session is removed from storage
// and returned in its final state.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	human := game.Human()
	if human == nil {
		return nil, fmt.Errorf("%w: game %s has no human player", apperror.ErrNotFound, gameID)
	}

	if err = tictactoe.PlayTurn(game, human.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsEngineTurn() {
		if err = that.engineTurn(game); err != nil {
			return nil, fmt.Errorf("engine failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.deleteGame(ctx, game)

		return game, nil
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Analyse - evaluates a position for toMove without touching any session.
func (that *GameManager) Analyse(cells [entity.CellCount]entity.Mark, toMove entity.Mark) (search.Result, error) {
	log := that.logger.With("method", "Analyse")

	if !toMove.IsPlayer() {
		return search.Result{}, fmt.Errorf("%w: %q", entity.ErrUnknownMark, toMove)
	}

	board, err := entity.BoardFromCells(cells)
	if err != nil {
		return search.Result{}, fmt.Errorf("failed to build board: %w", err)
	}

	result, stats := search.Search(board, toMove, toMove)
	log.Debug("position analysed", "position", result.Position, "score", result.Score, "nodes", stats.Nodes)

	return result, nil
}

func (that *GameManager) engineTurn(game *entity.Game) error {
	engine := game.Engine()
	if engine == nil {
		return apperror.ErrUnknownOpponent
	}

	opponent, err := player.New(engine.Kind, engine.Mark, that.playerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create opponent: %w", err)
	}

	cell, err := opponent.GetMove(game.Board)
	if err != nil {
		return fmt.Errorf("failed to choose a move: %w", err)
	}

	if err = tictactoe.PlayTurn(game, engine.Mark, cell); err != nil {
		return fmt.Errorf("failed to play cell %d: %w", cell, err)
	}

	that.logger.Debug("engine moved", "gameID", game.ID, "mark", engine.Mark, "cell", cell)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game finished", "winner", game.Winner)
}
