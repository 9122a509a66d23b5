package models

type JoinGameRequest struct {
	CardIDs []int64 `json:"card_ids" binding:"required"`
}

type JoinResult struct {
	RoomID      int64  `json:"room_id"`
	PlayerCount int    `json:"player_count"`
	Status      string `json:"status"`
}

type GenerateCardsResponse struct {
	Message string `json:"message"`
	Cards   []Card `json:"cards"`
}

// WinResult is the authoritative outcome of one check-win call. The
// backend alone decides HasWon, Pattern and WinningAmount; the client
// does no local pattern matching.
type WinResult struct {
	HasWon        bool    `json:"has_won"`
	Pattern       string  `json:"pattern,omitempty"`
	WinningAmount float64 `json:"winning_amount,omitempty"`
	Status        string  `json:"status,omitempty"`
}
