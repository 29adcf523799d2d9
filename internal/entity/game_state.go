package entity

// GameState carries whose turn it is and which marks take part, in turn order.
type GameState struct {
	MarkToMove Mark `json:"mark_to_move"`
	First      Mark `json:"first"`
	Second     Mark `json:"second"`
}

func NewGameState(first Mark) GameState {
	return GameState{
		MarkToMove: first,
		First:      first,
		Second:     first.Opponent(),
	}
}

// Advance - passes the turn to the other mark.
func (that *GameState) Advance() {
	if that.MarkToMove == that.First {
		that.MarkToMove = that.Second
		return
	}
	that.MarkToMove = that.First
}

// Finish - nobody is to move once the game is over.
func (that *GameState) Finish() {
	that.MarkToMove = Empty
}
