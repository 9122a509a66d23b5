package game

import (
	"math/rand"

	"bingo-miniapp-client/internal/models"
)

// GenerateCards builds count candidate cards client-side. Issued cards
// from the backend are preferred whenever available; generated cards
// carry no id. Cards are independent, so duplicates across cards are
// possible.
func GenerateCards(count int) []models.Card {
	cards := make([]models.Card, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, generateCard())
	}
	return cards
}

func generateCard() models.Card {
	numbers := make([]int, models.CardCells)
	for col := 0; col < models.CardColumns; col++ {
		lo := col*models.ColumnSpan + 1
		var drawn [models.ColumnSpan + 1]bool
		row := 0
		for row < models.CardRows {
			n := lo + rand.Intn(models.ColumnSpan)
			if drawn[n-lo] {
				continue
			}
			drawn[n-lo] = true
			numbers[row*models.CardColumns+col] = n
			row++
		}
	}
	numbers[models.FreeCell] = models.FreeNumber
	return models.Card{Numbers: numbers}
}
