package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNotFound          = errors.New("not found")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownOpponent   = errors.New("unknown opponent kind")
)
