package models

import "time"

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeGameWin  TransactionType = "game_win"
	TransactionTypeGameLoss TransactionType = "game_loss"
)

type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Method      string          `json:"method,omitempty"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type BalanceResponse struct {
	Balance      float64 `json:"balance"`
	BonusBalance float64 `json:"bonus_balance"`
	Total        float64 `json:"total"`
}

type DepositRequest struct {
	Method         string  `json:"method" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	PhoneOrAccount string  `json:"phone_or_account"`
}

type WithdrawRequest struct {
	Amount      float64           `json:"amount" binding:"required"`
	Method      string            `json:"method" binding:"required"`
	AccountInfo map[string]string `json:"account_info"`
}

type TransferRequest struct {
	RecipientID int64   `json:"recipient_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}
