package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bingo-miniapp-client/internal/models"
)

// Wallet and profile calls are consumed as opaque services by the
// presentation layer; the game core never touches them.

func (c *Client) Balance(ctx context.Context) (*models.BalanceResponse, error) {
	var balance models.BalanceResponse
	if err := c.do(ctx, http.MethodGet, "/wallet/balance", nil, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) Transactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var txs []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/wallet/transactions", query, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) Deposit(ctx context.Context, req models.DepositRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/wallet/deposit", nil, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Withdraw(ctx context.Context, req models.WithdrawRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/wallet/withdraw", nil, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Transfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/wallet/transfer", nil, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/profile/", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateLanguage(ctx context.Context, language string) error {
	query := url.Values{"language": {language}}
	return c.do(ctx, http.MethodPut, "/profile/language", query, nil, nil)
}
