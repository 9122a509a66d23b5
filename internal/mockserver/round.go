package mockserver

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"bingo-miniapp-client/internal/models"
)

// round calls the shuffled 1-75 sequence for one room, broadcasting
// each number on the room hub until the deck runs out or the round is
// stopped.
type round struct {
	roomID int64
	order  []int
	stop   chan struct{}
	once   sync.Once
}

func newRound(roomID int64) *round {
	order := rand.Perm(75)
	for i := range order {
		order[i]++
	}
	return &round{roomID: roomID, order: order, stop: make(chan struct{})}
}

func (r *round) halt() {
	r.once.Do(func() { close(r.stop) })
}

func (s *Server) startRound(roomID int64) {
	s.roundsMu.Lock()
	if _, running := s.rounds[roomID]; running {
		s.roundsMu.Unlock()
		return
	}
	r := newRound(roomID)
	s.rounds[roomID] = r
	s.roundsMu.Unlock()

	s.store.setRoomStatus(roomID, models.RoomStatusRunning)
	go s.callNumbers(r)
}

func (s *Server) stopRound(roomID int64) {
	s.roundsMu.Lock()
	r, ok := s.rounds[roomID]
	if ok {
		delete(s.rounds, roomID)
	}
	s.roundsMu.Unlock()
	if ok {
		r.halt()
	}
}

func (s *Server) roundActive(roomID int64) bool {
	s.roundsMu.Lock()
	defer s.roundsMu.Unlock()
	_, ok := s.rounds[roomID]
	return ok
}

func (s *Server) callNumbers(r *round) {
	ticker := time.NewTicker(s.callDelay)
	defer ticker.Stop()

	for called := 0; called < len(r.order); {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			number := r.order[called]
			called++
			s.hubFor(r.roomID).broadcast <- models.GameEvent{
				Type:        models.EventNumberCalled,
				Number:      number,
				Letter:      models.Letter(number),
				TotalCalled: called,
			}
		}
	}
	// Deck exhausted. The round stays registered so late win checks
	// are still answered.
	s.store.setRoomStatus(r.roomID, models.RoomStatusFinished)
}

// judge checks one card for a completed row, column or diagonal. The
// FREE center always counts as marked.
func judge(card models.Card, marked map[int]bool) (bool, string) {
	at := func(row, col int) bool {
		idx := row*models.CardColumns + col
		if idx == models.FreeCell {
			return true
		}
		return marked[card.Numbers[idx]]
	}

	for row := 0; row < models.CardRows; row++ {
		full := true
		for col := 0; col < models.CardColumns; col++ {
			if !at(row, col) {
				full = false
				break
			}
		}
		if full {
			return true, rowPattern(row)
		}
	}
	for col := 0; col < models.CardColumns; col++ {
		full := true
		for row := 0; row < models.CardRows; row++ {
			if !at(row, col) {
				full = false
				break
			}
		}
		if full {
			return true, colPattern(col)
		}
	}
	full := true
	for i := 0; i < models.CardRows; i++ {
		if !at(i, i) {
			full = false
			break
		}
	}
	if full {
		return true, `Diagonal \`
	}
	full = true
	for i := 0; i < models.CardRows; i++ {
		if !at(i, models.CardColumns-1-i) {
			full = false
			break
		}
	}
	if full {
		return true, "Diagonal /"
	}
	return false, ""
}

func rowPattern(row int) string { return fmt.Sprintf("Row %d", row+1) }
func colPattern(col int) string { return fmt.Sprintf("Column %d", col+1) }
