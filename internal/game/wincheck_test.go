package game_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"bingo-miniapp-client/internal/game"
	"bingo-miniapp-client/internal/models"
)

// scriptedBackend answers CheckWin from a fixed script and records the
// card indexes it was asked about.
type scriptedBackend struct {
	results []models.WinResult
	err     error
	asked   []int
}

func (b *scriptedBackend) ListRooms(context.Context) ([]models.Room, error) { return nil, nil }
func (b *scriptedBackend) GenerateCards(context.Context, int) ([]models.Card, error) {
	return nil, nil
}
func (b *scriptedBackend) MyCards(context.Context) ([]models.Card, error) { return nil, nil }
func (b *scriptedBackend) JoinGame(context.Context, int64, []int64) (*models.JoinResult, error) {
	return nil, nil
}
func (b *scriptedBackend) StartGame(context.Context, int64) error          { return nil }
func (b *scriptedBackend) MarkNumber(context.Context, int64, int, int) error { return nil }

func (b *scriptedBackend) CheckWin(_ context.Context, _ int64, cardIndex int) (*models.WinResult, error) {
	b.asked = append(b.asked, cardIndex)
	if b.err != nil {
		return nil, b.err
	}
	result := b.results[cardIndex]
	return &result, nil
}

func TestWinCheckerSecondCardWins(t *testing.T) {
	backend := &scriptedBackend{results: []models.WinResult{
		{HasWon: false},
		{HasWon: true, Pattern: "Row 1", WinningAmount: 40},
	}}
	checker := game.NewWinChecker(backend, zap.NewNop().Sugar())

	result, index, err := checker.Check(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.HasWon || index != 1 {
		t.Fatalf("got index %d, result %+v; want the second card", index, result)
	}
	if len(backend.asked) != 2 || backend.asked[0] != 0 || backend.asked[1] != 1 {
		t.Fatalf("cards checked out of order: %v", backend.asked)
	}
}

func TestWinCheckerStopsAtFirstWin(t *testing.T) {
	backend := &scriptedBackend{results: []models.WinResult{
		{HasWon: true, Pattern: "Column 3"},
		{HasWon: true, Pattern: "Row 2"},
	}}
	checker := game.NewWinChecker(backend, zap.NewNop().Sugar())

	result, index, err := checker.Check(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if index != 0 || result.Pattern != "Column 3" {
		t.Fatalf("first winner not reported: index %d, %+v", index, result)
	}
	if len(backend.asked) != 1 {
		t.Fatalf("scan continued past the first win: %v", backend.asked)
	}
}

func TestWinCheckerNoWin(t *testing.T) {
	backend := &scriptedBackend{results: []models.WinResult{{}, {}}}
	checker := game.NewWinChecker(backend, zap.NewNop().Sugar())

	result, index, err := checker.Check(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result.HasWon || index != -1 {
		t.Fatalf("expected no win, got index %d, %+v", index, result)
	}
	if len(backend.asked) != 2 {
		t.Fatalf("expected both cards checked, got %v", backend.asked)
	}
}

func TestWinCheckerError(t *testing.T) {
	backend := &scriptedBackend{err: errors.New("boom")}
	checker := game.NewWinChecker(backend, zap.NewNop().Sugar())

	if _, _, err := checker.Check(context.Background(), 1, 2); err == nil {
		t.Fatal("expected the backend error to surface")
	}
}
