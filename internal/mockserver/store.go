package mockserver

import (
	"fmt"
	"sync"
	"time"

	"bingo-miniapp-client/internal/game"
	"bingo-miniapp-client/internal/models"
)

// participant is one user's stake in a room: the held card ids in
// held order and the numbers recorded per card. Mark recording is
// append-only; the client's local toggles may diverge.
type participant struct {
	userID  int64
	roomID  int64
	cardIDs []int64
	marked  map[int64]map[int]bool
	status  string
}

type store struct {
	mu sync.Mutex

	nextUserID int64
	nextCardID int64

	users        map[int64]*models.User
	byTelegram   map[string]int64
	cards        map[int64][]models.Card
	rooms        map[int64]*models.Room
	participants map[int64]map[int64]*participant
	transactions map[int64][]models.Transaction
}

func newStore() *store {
	s := &store{
		users:        make(map[int64]*models.User),
		byTelegram:   make(map[string]int64),
		cards:        make(map[int64][]models.Card),
		rooms:        make(map[int64]*models.Room),
		participants: make(map[int64]map[int64]*participant),
		transactions: make(map[int64][]models.Transaction),
	}
	s.seedRooms()
	return s
}

func (s *store) seedRooms() {
	for i, stake := range []float64{10, 25, 50, 100} {
		id := int64(i + 1)
		s.rooms[id] = &models.Room{
			ID:          id,
			Name:        fmt.Sprintf("Room %d", id),
			StakeAmount: stake,
			MaxPlayers:  100,
			Status:      models.RoomStatusWaiting,
		}
	}
}

// loginUser finds or creates the user for a platform identity. New
// users start with the welcome bonus.
func (s *store) loginUser(req models.LoginRequest) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byTelegram[req.TelegramID]; ok {
		u := *s.users[id]
		return &u
	}

	s.nextUserID++
	user := &models.User{
		ID:           s.nextUserID,
		TelegramID:   req.TelegramID,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Balance:      0,
		BonusBalance: 10,
		Language:     "en",
		CreatedAt:    time.Now().UTC(),
	}
	s.users[user.ID] = user
	s.byTelegram[req.TelegramID] = user.ID
	u := *user
	return &u
}

func (s *store) user(id int64) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	u := *user
	return &u, true
}

func (s *store) listRooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		if room.Status == models.RoomStatusWaiting || room.Status == models.RoomStatusStarting {
			rooms = append(rooms, *room)
		}
	}
	return rooms
}

func (s *store) issueCards(userID int64, generated []models.Card) []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	issued := make([]models.Card, 0, len(generated))
	for _, card := range generated {
		s.nextCardID++
		card.ID = s.nextCardID
		s.cards[userID] = append(s.cards[userID], card)
		issued = append(issued, card)
	}
	return issued
}

func (s *store) userCards(userID int64) []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Card(nil), s.cards[userID]...)
}

func (s *store) cardByID(userID, cardID int64) (models.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, card := range s.cards[userID] {
		if card.ID == cardID {
			return card, true
		}
	}
	return models.Card{}, false
}

// join deducts the stake and registers the participant. It returns
// the updated player count.
func (s *store) join(userID, roomID int64, cardIDs []int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, fmt.Errorf("user not found")
	}
	room, ok := s.rooms[roomID]
	if !ok {
		return 0, fmt.Errorf("room not found")
	}
	if room.CurrentPlayers >= room.MaxPlayers {
		return 0, fmt.Errorf("room is full")
	}
	if _, joined := s.participants[roomID][userID]; joined {
		return 0, fmt.Errorf("already in this game")
	}
	if len(cardIDs) == 0 || len(cardIDs) > game.MaxSelectedCards {
		return 0, fmt.Errorf("select 1 or %d cards", game.MaxSelectedCards)
	}
	owned := make(map[int64]bool, len(s.cards[userID]))
	for _, card := range s.cards[userID] {
		owned[card.ID] = true
	}
	for _, id := range cardIDs {
		if !owned[id] {
			return 0, fmt.Errorf("card %d not issued to user", id)
		}
	}
	if user.Balance < room.StakeAmount {
		return 0, fmt.Errorf("insufficient balance")
	}

	user.Balance -= room.StakeAmount
	if s.participants[roomID] == nil {
		s.participants[roomID] = make(map[int64]*participant)
	}
	s.participants[roomID][userID] = &participant{
		userID:  userID,
		roomID:  roomID,
		cardIDs: append([]int64(nil), cardIDs...),
		marked:  make(map[int64]map[int]bool),
		status:  "playing",
	}
	room.CurrentPlayers++
	return room.CurrentPlayers, nil
}

func (s *store) room(id int64) (*models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, false
	}
	r := *room
	return &r, true
}

func (s *store) setRoomStatus(id int64, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[id]; ok {
		room.Status = status
	}
}

func (s *store) markNumber(userID, roomID int64, cardIndex, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[roomID][userID]
	if !ok {
		return fmt.Errorf("participant not found")
	}
	if cardIndex < 0 || cardIndex >= len(p.cardIDs) {
		return fmt.Errorf("invalid card index")
	}
	cardID := p.cardIDs[cardIndex]
	if p.marked[cardID] == nil {
		p.marked[cardID] = make(map[int]bool)
	}
	p.marked[cardID][number] = true
	return nil
}

// checkWin judges one held card against its recorded marks. A fresh
// win flips the participant to won, pays the pot into the winner's
// balance and reports the amount.
func (s *store) checkWin(userID, roomID int64, cardIndex int) (*models.WinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[roomID][userID]
	if !ok {
		return nil, fmt.Errorf("participant not found")
	}
	if cardIndex < 0 || cardIndex >= len(p.cardIDs) {
		return nil, fmt.Errorf("invalid card index")
	}
	cardID := p.cardIDs[cardIndex]
	var card *models.Card
	for i := range s.cards[userID] {
		if s.cards[userID][i].ID == cardID {
			card = &s.cards[userID][i]
			break
		}
	}
	if card == nil {
		return nil, fmt.Errorf("card not found")
	}

	hasWon, pattern := judge(*card, p.marked[cardID])
	result := &models.WinResult{HasWon: hasWon, Pattern: pattern, Status: p.status}
	if hasWon && p.status == "playing" {
		p.status = "won"
		result.Status = "won"
		room := s.rooms[roomID]
		pot := room.StakeAmount * float64(room.CurrentPlayers)
		winner := s.users[userID]
		winner.Balance += pot
		result.WinningAmount = pot
		s.transactions[userID] = append(s.transactions[userID], models.Transaction{
			ID:          models.GenerateTransactionID(),
			Type:        models.TransactionTypeGameWin,
			Amount:      pot,
			Status:      "completed",
			Description: fmt.Sprintf("Bingo win in room %d (%s)", roomID, pattern),
			CreatedAt:   time.Now().UTC(),
		})
	}
	return result, nil
}

func (s *store) addTransaction(userID int64, tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[userID] = append(s.transactions[userID], tx)
}

func (s *store) userTransactions(userID int64, limit int) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := s.transactions[userID]
	if limit > 0 && len(txs) > limit {
		txs = txs[len(txs)-limit:]
	}
	return append([]models.Transaction(nil), txs...)
}

func (s *store) adjustBalance(userID int64, delta float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user not found")
	}
	if user.Balance+delta < 0 {
		return fmt.Errorf("insufficient balance")
	}
	user.Balance += delta
	return nil
}

func (s *store) setLanguage(userID int64, language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user not found")
	}
	user.Language = language
	return nil
}
