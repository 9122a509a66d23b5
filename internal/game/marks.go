package game

import "bingo-miniapp-client/internal/models"

// MarkTracker keeps the local marked-cell sets for the cards held in
// the current round. Local marks always succeed; backend recording is
// best-effort and may diverge (see Session.Mark).
type MarkTracker struct {
	cards  []models.Card
	marked []map[int]bool
}

func NewMarkTracker(cards []models.Card) *MarkTracker {
	marked := make([]map[int]bool, len(cards))
	for i := range marked {
		marked[i] = make(map[int]bool)
	}
	return &MarkTracker{cards: cards, marked: marked}
}

func (t *MarkTracker) CardCount() int {
	return len(t.cards)
}

// Cards returns the held cards in their held order.
func (t *MarkTracker) Cards() []models.Card {
	out := make([]models.Card, len(t.cards))
	copy(out, t.cards)
	return out
}

// IsMarked reports whether a cell is marked. The FREE center is
// permanently marked.
func (t *MarkTracker) IsMarked(cardIndex, cellIndex int) bool {
	if cardIndex < 0 || cardIndex >= len(t.cards) {
		return false
	}
	if cellIndex == models.FreeCell {
		return true
	}
	return t.marked[cardIndex][cellIndex]
}

// Toggle flips local membership of cellIndex in the card's marked set
// and returns the cell's number. Toggling the FREE cell or an invalid
// index changes nothing and reports changed=false.
func (t *MarkTracker) Toggle(cardIndex, cellIndex int) (number int, changed bool) {
	if cardIndex < 0 || cardIndex >= len(t.cards) {
		return 0, false
	}
	if cellIndex < 0 || cellIndex >= len(t.cards[cardIndex].Numbers) {
		return 0, false
	}
	if cellIndex == models.FreeCell {
		return models.FreeNumber, false
	}
	if t.marked[cardIndex][cellIndex] {
		delete(t.marked[cardIndex], cellIndex)
	} else {
		t.marked[cardIndex][cellIndex] = true
	}
	return t.cards[cardIndex].Numbers[cellIndex], true
}

// MarkedCells returns the marked grid indices of one card, FREE cell
// excluded.
func (t *MarkTracker) MarkedCells(cardIndex int) []int {
	if cardIndex < 0 || cardIndex >= len(t.cards) {
		return nil
	}
	cells := make([]int, 0, len(t.marked[cardIndex]))
	for idx := range t.marked[cardIndex] {
		cells = append(cells, idx)
	}
	return cells
}
