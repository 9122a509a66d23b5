package mockserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"bingo-miniapp-client/internal/game"
	"bingo-miniapp-client/internal/models"
)

const maxCardsPerRequest = 10

func userID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func (s *Server) handleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "telegram_id is required"})
		return
	}

	user := s.store.loginUser(req)
	token, err := s.issueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{User: *user, Token: token})
}

func (s *Server) handleListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.listRooms())
}

func (s *Server) handleMyCards(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.userCards(userID(c)))
}

func (s *Server) handleGenerateCards(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "2"))
	if err != nil || count < 1 || count > maxCardsPerRequest {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "count must be between 1 and 10"})
		return
	}

	issued := s.store.issueCards(userID(c), game.GenerateCards(count))
	c.JSON(http.StatusOK, models.GenerateCardsResponse{
		Message: "Generated " + strconv.Itoa(count) + " cards",
		Cards:   issued,
	})
}

func (s *Server) handleJoinGame(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid room_id"})
		return
	}
	var req models.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "card_ids are required"})
		return
	}

	uid := userID(c)
	playerCount, err := s.store.join(uid, roomID, req.CardIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, _ := s.store.user(uid)
	event := models.GameEvent{
		Type:        models.EventPlayerJoined,
		UserID:      uid,
		PlayerCount: playerCount,
	}
	if user != nil {
		event.Username = user.Username
	}
	s.hubFor(roomID).broadcast <- event

	c.JSON(http.StatusOK, models.JoinResult{
		RoomID:      roomID,
		PlayerCount: playerCount,
		Status:      "joined",
	})
}

func (s *Server) handleStartGame(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid room_id"})
		return
	}
	if _, ok := s.store.room(roomID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "room not found"})
		return
	}

	// Every waiting client signals start when its countdown ends;
	// only the first signal launches the caller.
	if !s.roundActive(roomID) {
		s.store.setRoomStatus(roomID, models.RoomStatusStarting)
		s.hubFor(roomID).broadcast <- models.GameEvent{
			Type:    models.EventGameStarted,
			Message: "Game is starting!",
		}
		s.startRound(roomID)
	}

	c.JSON(http.StatusOK, gin.H{"status": "Game started"})
}

func (s *Server) handleMarkNumber(c *gin.Context) {
	roomID, err1 := strconv.ParseInt(c.Query("room_id"), 10, 64)
	number, err2 := strconv.Atoi(c.Query("number"))
	cardIndex, err3 := strconv.Atoi(c.Query("card_index"))
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "room_id, number and card_index are required"})
		return
	}

	if err := s.store.markNumber(userID(c), roomID, cardIndex, number); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Number marked"})
}

func (s *Server) handleCheckWin(c *gin.Context) {
	roomID, err1 := strconv.ParseInt(c.Query("room_id"), 10, 64)
	cardIndex, err2 := strconv.Atoi(c.Query("card_index"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "room_id and card_index are required"})
		return
	}
	if !s.roundActive(roomID) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "game not active"})
		return
	}

	uid := userID(c)
	result, err := s.store.checkWin(uid, roomID, cardIndex)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}

	if result.HasWon && result.WinningAmount > 0 {
		user, _ := s.store.user(uid)
		event := models.GameEvent{
			Type:          models.EventPlayerWon,
			UserID:        uid,
			Pattern:       result.Pattern,
			WinningAmount: result.WinningAmount,
		}
		if user != nil {
			event.Username = user.Username
		}
		s.hubFor(roomID).broadcast <- event
		s.stopRound(roomID)
		s.store.setRoomStatus(roomID, models.RoomStatusFinished)
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleWebSocket(c *gin.Context) {
	roomID, err1 := strconv.ParseInt(c.Param("room_id"), 10, 64)
	pathUserID, err2 := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid channel key"})
		return
	}
	if pathUserID != userID(c) {
		c.JSON(http.StatusForbidden, gin.H{"detail": "channel key does not match token"})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warnw("ws upgrade failed", "error", err)
		return
	}

	hub := s.hubFor(roomID)
	client := &wsClient{userID: pathUserID, conn: conn}
	hub.register <- client

	defer func() {
		hub.unregister <- client
		conn.Close()
		hub.broadcast <- models.GameEvent{Type: models.EventPlayerLeft, UserID: pathUserID}
	}()

	for {
		var msg models.GameEvent
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				s.log.Warnw("ws read error", "room", roomID, "user", pathUserID, "error", err)
			}
			return
		}
		// The core defines no outbound messages; tolerate pings from
		// other clients of the contract.
		if msg.Type == "ping" {
			conn.WriteJSON(models.GameEvent{Type: "pong"})
		}
	}
}
