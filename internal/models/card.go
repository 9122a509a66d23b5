package models

import "fmt"

const (
	CardCells   = 25
	CardColumns = 5
	CardRows    = 5
	ColumnSpan  = 15

	// FreeCell is the center grid index; its value is always FreeNumber
	// and the cell counts as marked.
	FreeCell   = 12
	FreeNumber = 0
)

// Card is a 5x5 bingo card stored row-major: the cell at (row, col)
// lives at index row*5+col. Column c holds five distinct numbers from
// [15c+1, 15c+15], except the FREE center. ID is zero until the
// backend has issued the card.
type Card struct {
	ID      int64 `json:"id,omitempty"`
	Numbers []int `json:"numbers"`
}

// Issued reports whether the card was assigned an id by the backend.
func (c *Card) Issued() bool {
	return c.ID != 0
}

// IndexOf returns the grid index of number on the card, or -1.
func (c *Card) IndexOf(number int) int {
	for i, n := range c.Numbers {
		if n == number {
			return i
		}
	}
	return -1
}

func (c *Card) Validate() error {
	if len(c.Numbers) != CardCells {
		return fmt.Errorf("card must have %d cells, got %d", CardCells, len(c.Numbers))
	}
	for col := 0; col < CardColumns; col++ {
		lo := col*ColumnSpan + 1
		hi := col*ColumnSpan + ColumnSpan
		seen := make(map[int]bool, CardRows)
		for row := 0; row < CardRows; row++ {
			idx := row*CardColumns + col
			n := c.Numbers[idx]
			if idx == FreeCell {
				if n != FreeNumber {
					return fmt.Errorf("center cell must be FREE, got %d", n)
				}
				continue
			}
			if n < lo || n > hi {
				return fmt.Errorf("cell %d: %d outside column range [%d, %d]", idx, n, lo, hi)
			}
			if seen[n] {
				return fmt.Errorf("cell %d: duplicate %d in column %d", idx, n, col)
			}
			seen[n] = true
		}
	}
	return nil
}

// Letter returns the B/I/N/G/O column letter for a called number.
func Letter(number int) string {
	switch {
	case number >= 1 && number <= 15:
		return "B"
	case number <= 30:
		return "I"
	case number <= 45:
		return "N"
	case number <= 60:
		return "G"
	default:
		return "O"
	}
}
