package models

const (
	RoomStatusWaiting  = "waiting"
	RoomStatusStarting = "starting"
	RoomStatusRunning  = "running"
	RoomStatusFinished = "finished"
)

// Room is an immutable snapshot of a joinable game room. It is
// re-fetched per browse, never patched in place.
type Room struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	StakeAmount    float64 `json:"stake_amount"`
	MaxPlayers     int     `json:"max_players"`
	CurrentPlayers int     `json:"current_players"`
	Status         string  `json:"status"`
}

func (r *Room) IsFull() bool {
	return r.CurrentPlayers >= r.MaxPlayers
}
