package mockserver

import (
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bingo-miniapp-client/internal/models"
)

type wsClient struct {
	userID int64
	conn   *websocket.Conn
}

// roomHub fans events out to every connection in one room. All writes
// happen on the hub goroutine.
type roomHub struct {
	roomID     int64
	clients    map[int64]*websocket.Conn
	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan models.GameEvent
	log        *zap.SugaredLogger
}

func newRoomHub(roomID int64, log *zap.SugaredLogger) *roomHub {
	h := &roomHub{
		roomID:     roomID,
		clients:    make(map[int64]*websocket.Conn),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan models.GameEvent, 100),
		log:        log,
	}
	go h.run()
	return h
}

func (h *roomHub) run() {
	for {
		select {
		case client := <-h.register:
			if old, ok := h.clients[client.userID]; ok {
				old.Close()
			}
			h.clients[client.userID] = client.conn
			h.log.Debugw("ws client registered", "room", h.roomID, "user", client.userID)

		case client := <-h.unregister:
			if conn, ok := h.clients[client.userID]; ok && conn == client.conn {
				delete(h.clients, client.userID)
				h.log.Debugw("ws client unregistered", "room", h.roomID, "user", client.userID)
			}

		case event := <-h.broadcast:
			for userID, conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					h.log.Warnw("ws broadcast failed", "room", h.roomID, "user", userID, "error", err)
				}
			}
		}
	}
}

func (s *Server) hubFor(roomID int64) *roomHub {
	s.hubsMu.Lock()
	defer s.hubsMu.Unlock()
	hub, ok := s.hubs[roomID]
	if !ok {
		hub = newRoomHub(roomID, s.log)
		s.hubs[roomID] = hub
	}
	return hub
}
