package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/search"
)

var errRedisDown = errors.New("redis down")

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newManager(t *testing.T) (*GameManager, *mockGameRepo) {
	t.Helper()

	repo := &mockGameRepo{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGameManager(logger, repo, entity.OpponentMinimax), repo
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Human X waits for the first move", func(t *testing.T) {
		// Given: a manager with a working repository
		manager, repo := newManager(t)
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: the human takes X
		game, err := manager.NewGame(ctx, entity.X, "")

		// Then: the board is empty and X is to move
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.CellCount, game.Board.EmptyCellCount())
		assert.Equal(t, entity.X, game.State.MarkToMove)
		assert.Equal(t, entity.OpponentMinimax, game.Engine().Kind)
	})

	t.Run("Engine opens when the human takes O", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		game, err := manager.NewGame(ctx, entity.O, entity.OpponentRandom)

		require.NoError(t, err)
		assert.Equal(t, entity.CellCount-1, game.Board.EmptyCellCount())
		assert.Equal(t, entity.O, game.State.MarkToMove)
	})

	t.Run("Rejects invalid mark", func(t *testing.T) {
		manager, _ := newManager(t)

		_, err := manager.NewGame(ctx, entity.Empty, "")

		require.ErrorIs(t, err, entity.ErrUnknownMark)
	})

	t.Run("Rejects unknown opponent", func(t *testing.T) {
		manager, _ := newManager(t)

		_, err := manager.NewGame(ctx, entity.X, "oracle")

		require.ErrorIs(t, err, apperror.ErrUnknownOpponent)
	})

	t.Run("Returns error if repository fails", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		game, err := manager.NewGame(ctx, entity.X, "")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Engine replies to the human move", func(t *testing.T) {
		// Given: a stored session where the human plays X against minimax
		manager, repo := newManager(t)
		stored := entity.NewGame("g1", entity.X, entity.OpponentMinimax)
		repo.On("GetByID", mock.Anything, "g1").Return(stored, nil).Once()
		repo.On("CreateOrUpdate", mock.Anything, stored).Return(nil).Once()

		// When: the human takes the center
		game, err := manager.MakeTurn(ctx, "g1", 4)

		// Then: the engine answered and it is X's turn again
		require.NoError(t, err)
		assert.Equal(t, entity.X, game.Board.Cell(4))
		assert.Equal(t, entity.CellCount-2, game.Board.EmptyCellCount())
		assert.Equal(t, entity.X, game.State.MarkToMove)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Finished session is deleted", func(t *testing.T) {
		// Given: the human can complete the top row
		manager, repo := newManager(t)
		stored := entity.NewGame("g2", entity.X, entity.OpponentMinimax)
		for _, cell := range []int{0, 3, 1, 4} {
			require.True(t, stored.Board.MakeMove(cell, stored.State.MarkToMove))
			stored.State.Advance()
		}
		repo.On("GetByID", mock.Anything, "g2").Return(stored, nil).Once()
		repo.On("DeleteByID", mock.Anything, "g2").Return(nil).Once()

		// When: the human plays the winning cell
		game, err := manager.MakeTurn(ctx, "g2", 2)

		// Then: the final state is returned and nothing is saved
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, string(entity.X), game.Winner)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		manager, repo := newManager(t)
		stored := entity.NewGame("g3", entity.X, entity.OpponentMinimax)
		require.True(t, stored.Board.MakeMove(4, entity.O))
		repo.On("GetByID", mock.Anything, "g3").Return(stored, nil).Once()

		_, err := manager.MakeTurn(ctx, "g3", 4)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Unknown game", func(t *testing.T) {
		manager, repo := newManager(t)
		repo.On("GetByID", mock.Anything, "nope").Return(nil, repository.ErrGameNotFound).Once()

		_, err := manager.MakeTurn(ctx, "nope", 0)

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestGameManager_Analyse(t *testing.T) {
	manager, _ := newManager(t)

	t.Run("Finds the winning cell", func(t *testing.T) {
		result, err := manager.Analyse([entity.CellCount]entity.Mark{entity.X, entity.X}, entity.X)

		require.NoError(t, err)
		assert.Equal(t, search.Result{Position: 2, Score: 7}, result)
	})

	t.Run("Rejects empty mark to move", func(t *testing.T) {
		_, err := manager.Analyse([entity.CellCount]entity.Mark{}, entity.Empty)

		require.ErrorIs(t, err, entity.ErrUnknownMark)
	})
}
