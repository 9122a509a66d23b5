package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds settings for both the client harness and the practice
// server. Values come from the environment; cmd mains load .env first.
type Config struct {
	Env  string
	Port string

	APIBaseURL string
	WSBaseURL  string

	TelegramID string
	FirstName  string
	Username   string

	RequestTimeout time.Duration

	JWTSecret       string
	TokenTTL        time.Duration
	NumberCallDelay time.Duration
}

func Load() (*Config, error) {
	requestTimeout, err := getEnvSeconds("REQUEST_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, err
	}
	tokenTTL, err := getEnvSeconds("TOKEN_TTL_SECONDS", 7*24*3600)
	if err != nil {
		return nil, err
	}
	callDelay, err := getEnvSeconds("NUMBER_CALL_DELAY_SECONDS", 3)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8080/api"),
		WSBaseURL:       getEnv("WS_BASE_URL", "ws://localhost:8080/ws"),
		TelegramID:      getEnv("TELEGRAM_ID", ""),
		FirstName:       getEnv("TELEGRAM_FIRST_NAME", ""),
		Username:        getEnv("TELEGRAM_USERNAME", ""),
		RequestTimeout:  requestTimeout,
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:        tokenTTL,
		NumberCallDelay: callDelay,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultSeconds int) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defaultSeconds) * time.Second, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return time.Duration(seconds) * time.Second, nil
}
