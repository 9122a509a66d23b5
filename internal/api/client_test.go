package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"bingo-miniapp-client/internal/api"
	"bingo-miniapp-client/internal/models"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return api.New(ts.URL, 5*time.Second, zap.NewNop().Sugar())
}

func TestLoginStoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("login method = %s", r.Method)
		}
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if req.TelegramID != "tg-42" {
			t.Errorf("telegram id = %q", req.TelegramID)
		}
		json.NewEncoder(w).Encode(models.AuthResponse{
			User:  models.User{ID: 42, TelegramID: "tg-42", Username: "player"},
			Token: "tok-abc",
		})
	})
	mux.HandleFunc("/games/rooms", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("authorization header = %q", got)
		}
		json.NewEncoder(w).Encode([]models.Room{{ID: 1, Name: "Room 1"}})
	})

	client := newClient(t, mux)
	user, err := client.Login(context.Background(), models.LoginRequest{TelegramID: "tg-42", Username: "player"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("user id = %d", user.ID)
	}
	if client.Token() != "tok-abc" {
		t.Fatalf("token not stored: %q", client.Token())
	}

	rooms, err := client.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != 1 {
		t.Fatalf("rooms: %+v", rooms)
	}
}

func TestErrorDetailDecoded(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "insufficient balance"})
	}))

	_, err := client.JoinGame(context.Background(), 1, []int64{1})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T: %v", err, err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Detail != "insufficient balance" {
		t.Fatalf("decoded error: %+v", apiErr)
	}
}

func TestErrorWithoutDetailFallsBack(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))

	_, err := client.MyCards(context.Background())
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T: %v", err, err)
	}
	if apiErr.Status != http.StatusForbidden || apiErr.Detail != http.StatusText(http.StatusForbidden) {
		t.Fatalf("fallback error: %+v", apiErr)
	}
}

func TestMarkNumberQuery(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/mark-number" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("room_id") != "3" || q.Get("number") != "17" || q.Get("card_index") != "1" {
			t.Errorf("query = %v", q)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.MarkNumber(context.Background(), 3, 17, 1); err != nil {
		t.Fatalf("mark number: %v", err)
	}
}

func TestStartGamePath(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/start-game/9" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.StartGame(context.Background(), 9); err != nil {
		t.Fatalf("start game: %v", err)
	}
}
