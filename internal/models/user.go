package models

import "time"

type User struct {
	ID         int64  `json:"id"`
	TelegramID string `json:"telegram_id"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`

	Balance      float64 `json:"balance"`
	BonusBalance float64 `json:"bonus_balance"`

	PhotoURL  string    `json:"photo_url,omitempty"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type LoginRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
