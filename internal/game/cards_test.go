package game_test

import (
	"testing"

	"bingo-miniapp-client/internal/game"
	"bingo-miniapp-client/internal/models"
)

func TestGenerateCardsProperties(t *testing.T) {
	cards := game.GenerateCards(200)
	if len(cards) != 200 {
		t.Fatalf("expected 200 cards, got %d", len(cards))
	}

	for i, card := range cards {
		if card.Issued() {
			t.Errorf("card %d: client-generated card should carry no id", i)
		}
		if err := card.Validate(); err != nil {
			t.Errorf("card %d: %v", i, err)
		}

		for col := 0; col < models.CardColumns; col++ {
			lo := col*models.ColumnSpan + 1
			hi := col*models.ColumnSpan + models.ColumnSpan
			seen := make(map[int]bool)
			for row := 0; row < models.CardRows; row++ {
				idx := row*models.CardColumns + col
				n := card.Numbers[idx]
				if idx == models.FreeCell {
					if n != models.FreeNumber {
						t.Errorf("card %d: center cell is %d, want FREE", i, n)
					}
					continue
				}
				if n < lo || n > hi {
					t.Errorf("card %d: column %d value %d outside [%d, %d]", i, col, n, lo, hi)
				}
				if seen[n] {
					t.Errorf("card %d: column %d holds %d twice", i, col, n)
				}
				seen[n] = true
				if n == models.FreeNumber {
					t.Errorf("card %d: FREE sentinel outside the center at cell %d", i, idx)
				}
			}
		}
	}
}
