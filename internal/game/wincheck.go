package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bingo-miniapp-client/internal/models"
)

// WinChecker asks the backend to judge the held cards one at a time,
// in held order, awaiting each verdict before the next request. The
// first winning card ends the scan: later cards are never checked,
// which is the documented payout rule, so a check pays out at most one
// card per invocation.
type WinChecker struct {
	backend Backend
	log     *zap.SugaredLogger
}

func NewWinChecker(backend Backend, log *zap.SugaredLogger) *WinChecker {
	return &WinChecker{backend: backend, log: log}
}

// Check returns the first winning card's result and held index, or a
// no-win result with index -1 when none of the heldCount cards won.
func (w *WinChecker) Check(ctx context.Context, roomID int64, heldCount int) (*models.WinResult, int, error) {
	for i := 0; i < heldCount; i++ {
		result, err := w.backend.CheckWin(ctx, roomID, i)
		if err != nil {
			return nil, -1, fmt.Errorf("check win for card %d: %w", i, err)
		}
		if result.HasWon {
			w.log.Infow("winning card confirmed", "room", roomID, "card", i, "pattern", result.Pattern)
			return result, i, nil
		}
	}
	return &models.WinResult{HasWon: false}, -1, nil
}
