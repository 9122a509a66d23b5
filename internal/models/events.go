package models

const (
	EventNumberCalled = "number_called"
	EventPlayerJoined = "player_joined"
	EventGameStarted  = "game_started"
	EventPlayerWon    = "player_won"
	EventPlayerLeft   = "player_left"
)

// GameEvent is one inbound message on the real-time channel. Fields
// are populated per Type; unrelated fields stay at their zero value.
type GameEvent struct {
	Type string `json:"type"`

	// number_called
	Number      int    `json:"number,omitempty"`
	Letter      string `json:"letter,omitempty"`
	TotalCalled int    `json:"total_called,omitempty"`

	// player_joined / player_won / player_left
	UserID      int64  `json:"user_id,omitempty"`
	Username    string `json:"username,omitempty"`
	PlayerCount int    `json:"player_count,omitempty"`

	// player_won
	Pattern       string  `json:"pattern,omitempty"`
	WinningAmount float64 `json:"winning_amount,omitempty"`

	Message string `json:"message,omitempty"`
}
