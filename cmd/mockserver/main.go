// Runs the in-memory practice backend for local client development.
package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bingo-miniapp-client/internal/config"
	"bingo-miniapp-client/internal/mockserver"
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

	server := mockserver.New(mockserver.Options{
		JWTSecret:       cfg.JWTSecret,
		TokenTTL:        cfg.TokenTTL,
		NumberCallDelay: cfg.NumberCallDelay,
		Env:             cfg.Env,
		Log:             logger,
	})

	logger.Infow("practice server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, server.Router()); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
