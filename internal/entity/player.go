package entity

const (
	OpponentRandom  = "random"
	OpponentMinimax = "minimax"
)

// Player describes one side of a session: its mark and who drives it.
type Player struct {
	Mark     Mark   `json:"mark"`
	IsEngine bool   `json:"is_engine"`
	Kind     string `json:"kind,omitempty"`
}
