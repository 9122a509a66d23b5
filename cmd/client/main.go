// Headless harness for the game-session controller: logs in, funds
// the wallet, joins the cheapest room and plays a round end to end.
// Useful against the practice server during development.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bingo-miniapp-client/internal/api"
	"bingo-miniapp-client/internal/config"
	"bingo-miniapp-client/internal/game"
	"bingo-miniapp-client/internal/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var zl *zap.Logger
	if cfg.Env == "production" {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := play(ctx, stop, cfg, logger); err != nil {
		logger.Fatalw("session aborted", "error", err)
	}
}

func play(ctx context.Context, stop context.CancelFunc, cfg *config.Config, logger *zap.SugaredLogger) error {
	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, logger)

	telegramID := cfg.TelegramID
	if telegramID == "" {
		telegramID = "demo-player"
	}
	user, err := client.Login(ctx, models.LoginRequest{
		TelegramID: telegramID,
		FirstName:  cfg.FirstName,
		Username:   cfg.Username,
	})
	if err != nil {
		return err
	}
	logger.Infow("logged in", "user", user.ID, "balance", user.Balance, "bonus", user.BonusBalance)

	if user.Balance < 100 {
		if _, err := client.Deposit(ctx, models.DepositRequest{Method: "telebirr", Amount: 100}); err != nil {
			return err
		}
	}

	conn := game.NewConnectionManager(cfg.WSBaseURL, client, logger)
	sess := game.NewSession(game.Config{}, client, conn, game.LogNotifier{Log: logger}, logger)
	sess.SetUser(*user)
	sess.SetHooks(game.Hooks{
		OnCountdown: func(secondsLeft int) {
			logger.Infow("waiting for round", "seconds_left", secondsLeft)
		},
		OnNumberCalled: func(number int, letter string) {
			autoplay(ctx, sess, logger, number, letter)
			if sess.Phase() == game.PhaseCalling && len(sess.CalledNumbers()) >= 75 {
				logger.Info("deck exhausted without a bingo")
				sess.Leave()
				stop()
			}
		},
		OnPlayerCount: func(count int) {
			logger.Infow("player joined", "players", count)
		},
		OnWin: func(result models.WinResult) {
			logger.Infow("BINGO", "pattern", result.Pattern, "amount", result.WinningAmount)
			stop()
		},
	})

	rooms, err := sess.BrowseRooms(ctx)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		logger.Info("no joinable rooms")
		return nil
	}
	pick := rooms[0]
	for _, room := range rooms[1:] {
		if room.StakeAmount < pick.StakeAmount {
			pick = room
		}
	}
	sess.SelectRoom(pick)

	cards, err := sess.LoadCards(ctx)
	if err != nil {
		return err
	}
	for _, card := range cards {
		if sess.Selection().Len() >= game.MaxSelectedCards {
			break
		}
		if card.Issued() {
			sess.ToggleCard(card.ID)
		}
	}
	if err := sess.Join(ctx); err != nil {
		return err
	}

	sess.Run(ctx)
	sess.Leave()
	return nil
}

// autoplay marks the called number wherever it appears on the held
// cards, then asks for verification.
func autoplay(ctx context.Context, sess *game.Session, logger *zap.SugaredLogger, number int, letter string) {
	marks := sess.Marks()
	if marks == nil {
		return
	}
	for cardIndex, card := range marks.Cards() {
		cell := card.IndexOf(number)
		if cell < 0 || marks.IsMarked(cardIndex, cell) {
			continue
		}
		sess.Mark(cardIndex, cell)
		logger.Infow("marked", "number", number, "letter", letter, "card", cardIndex)
	}
	if _, err := sess.CheckWin(ctx); err != nil {
		logger.Warnw("win check failed", "error", err)
	}
}
