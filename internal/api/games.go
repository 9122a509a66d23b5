package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"bingo-miniapp-client/internal/models"
)

func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/games/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) GenerateCards(ctx context.Context, count int) ([]models.Card, error) {
	query := url.Values{"count": {strconv.Itoa(count)}}
	var resp models.GenerateCardsResponse
	if err := c.do(ctx, http.MethodPost, "/games/generate-cards", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cards, nil
}

func (c *Client) MyCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := c.do(ctx, http.MethodGet, "/games/my-cards", nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) JoinGame(ctx context.Context, roomID int64, cardIDs []int64) (*models.JoinResult, error) {
	query := url.Values{"room_id": {strconv.FormatInt(roomID, 10)}}
	var result models.JoinResult
	err := c.do(ctx, http.MethodPost, "/games/join-game", query, models.JoinGameRequest{CardIDs: cardIDs}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) StartGame(ctx context.Context, roomID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/games/start-game/%d", roomID), nil, nil, nil)
}

func (c *Client) MarkNumber(ctx context.Context, roomID int64, number, cardIndex int) error {
	query := url.Values{
		"room_id":    {strconv.FormatInt(roomID, 10)},
		"number":     {strconv.Itoa(number)},
		"card_index": {strconv.Itoa(cardIndex)},
	}
	return c.do(ctx, http.MethodPost, "/games/mark-number", query, nil, nil)
}

func (c *Client) CheckWin(ctx context.Context, roomID int64, cardIndex int) (*models.WinResult, error) {
	query := url.Values{
		"room_id":    {strconv.FormatInt(roomID, 10)},
		"card_index": {strconv.Itoa(cardIndex)},
	}
	var result models.WinResult
	if err := c.do(ctx, http.MethodPost, "/games/check-win", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
