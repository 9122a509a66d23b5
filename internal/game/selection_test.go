package game_test

import (
	"testing"

	"bingo-miniapp-client/internal/game"
)

func TestSelectionToggle(t *testing.T) {
	ledger := game.NewSelectionLedger()

	if got := ledger.Toggle(101); got != game.ToggleAdded {
		t.Fatalf("first toggle = %v, want added", got)
	}
	if got := ledger.Toggle(102); got != game.ToggleAdded {
		t.Fatalf("second toggle = %v, want added", got)
	}

	// Third card is rejected and the held set is untouched.
	if got := ledger.Toggle(103); got != game.ToggleRejected {
		t.Fatalf("third toggle = %v, want rejected", got)
	}
	ids := ledger.IDs()
	if len(ids) != 2 || ids[0] != 101 || ids[1] != 102 {
		t.Fatalf("held set changed after rejected add: %v", ids)
	}

	// toggle(toggle(x)) restores the original state.
	if got := ledger.Toggle(101); got != game.ToggleRemoved {
		t.Fatalf("re-toggle = %v, want removed", got)
	}
	if got := ledger.Toggle(101); got != game.ToggleAdded {
		t.Fatalf("re-add = %v, want added", got)
	}
	ids = ledger.IDs()
	if len(ids) != 2 || !ledger.Contains(101) || !ledger.Contains(102) {
		t.Fatalf("toggle law violated, held: %v", ids)
	}
}

func TestSelectionOrderPreserved(t *testing.T) {
	ledger := game.NewSelectionLedger()
	ledger.Toggle(5)
	ledger.Toggle(3)
	ids := ledger.IDs()
	if ids[0] != 5 || ids[1] != 3 {
		t.Fatalf("selection order not preserved: %v", ids)
	}

	ledger.Reset()
	if ledger.Len() != 0 {
		t.Fatal("reset should empty the ledger")
	}
}
