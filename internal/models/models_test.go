package models_test

import (
	"testing"

	"bingo-miniapp-client/internal/models"
)

func TestCardValidate(t *testing.T) {
	card := models.Card{
		ID: 1,
		Numbers: []int{
			1, 16, 31, 46, 61,
			2, 17, 32, 47, 62,
			3, 18, 0, 48, 63,
			4, 19, 34, 49, 64,
			5, 20, 35, 50, 65,
		},
	}

	if err := card.Validate(); err != nil {
		t.Errorf("valid card failed validation: %v", err)
	}

	bad := card
	bad.Numbers = append([]int(nil), card.Numbers...)
	bad.Numbers[0] = 16 // out of B column range
	if err := bad.Validate(); err == nil {
		t.Error("out-of-range column value should fail validation")
	}

	dup := card
	dup.Numbers = append([]int(nil), card.Numbers...)
	dup.Numbers[5] = 1 // duplicates cell 0 in column B
	if err := dup.Validate(); err == nil {
		t.Error("duplicate column value should fail validation")
	}

	noFree := card
	noFree.Numbers = append([]int(nil), card.Numbers...)
	noFree.Numbers[models.FreeCell] = 33
	if err := noFree.Validate(); err == nil {
		t.Error("card without FREE center should fail validation")
	}
}

func TestLetter(t *testing.T) {
	cases := map[int]string{1: "B", 15: "B", 16: "I", 30: "I", 31: "N", 45: "N", 46: "G", 60: "G", 61: "O", 75: "O"}
	for n, want := range cases {
		if got := models.Letter(n); got != want {
			t.Errorf("Letter(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRoomIsFull(t *testing.T) {
	room := models.Room{MaxPlayers: 10, CurrentPlayers: 9}
	if room.IsFull() {
		t.Error("room with free slots should not be full")
	}
	room.CurrentPlayers = 10
	if !room.IsFull() {
		t.Error("room at capacity should be full")
	}
}

func TestGenerateTransactionID(t *testing.T) {
	id := models.GenerateTransactionID()
	if id == "" {
		t.Error("transaction ID should not be empty")
	}
	if id == models.GenerateTransactionID() {
		t.Error("transaction IDs should not repeat")
	}
}
