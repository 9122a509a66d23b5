package game

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bingo-miniapp-client/internal/models"
)

type ConnState string

const (
	StateAbsent     ConnState = "absent"
	StateConnecting ConnState = "connecting"
	StateOpen       ConnState = "open"
	StateClosed     ConnState = "closed"
)

// TokenSource supplies the bearer token attached to the channel dial.
type TokenSource interface {
	Token() string
}

// ConnectionManager owns the single real-time channel of a session,
// keyed by (roomID, userID). It is driven from the session loop only;
// the read pump goroutine never touches manager state, it just posts
// events into the loop. Transport errors mark the handle closed and
// nothing more: reconnection happens solely on foreground resume.
type ConnectionManager struct {
	wsBaseURL string
	tokens    TokenSource
	dialer    *websocket.Dialer
	log       *zap.SugaredLogger

	sink chan<- Event

	state  ConnState
	roomID int64
	userID int64
	conn   *websocket.Conn
	done   chan struct{}
	gen    uint64
}

func NewConnectionManager(wsBaseURL string, tokens TokenSource, log *zap.SugaredLogger) *ConnectionManager {
	return &ConnectionManager{
		wsBaseURL: strings.TrimRight(wsBaseURL, "/"),
		tokens:    tokens,
		dialer:    websocket.DefaultDialer,
		log:       log,
		state:     StateAbsent,
	}
}

func (m *ConnectionManager) State() ConnState {
	return m.state
}

// IsOpen reports whether a handle is live (open or still connecting).
func (m *ConnectionManager) IsOpen() bool {
	return m.state == StateOpen || m.state == StateConnecting
}

// Open dials the game channel for (roomID, userID). It is idempotent:
// a live handle for the same key is left alone; any stale handle is
// closed first.
func (m *ConnectionManager) Open(roomID, userID int64) error {
	if m.IsOpen() && m.roomID == roomID && m.userID == userID {
		return nil
	}
	m.closeConn()

	m.roomID = roomID
	m.userID = userID
	m.state = StateConnecting

	endpoint := fmt.Sprintf("%s/game/%d/%d", m.wsBaseURL, roomID, userID)
	if m.tokens != nil {
		if tok := m.tokens.Token(); tok != "" {
			endpoint += "?token=" + url.QueryEscape(tok)
		}
	}

	conn, resp, err := m.dialer.Dial(endpoint, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		m.state = StateClosed
		return fmt.Errorf("dial game channel room=%d: %w", roomID, err)
	}

	m.conn = conn
	m.done = make(chan struct{})
	m.gen++
	m.state = StateOpen
	go m.readPump(conn, m.done, m.gen)
	m.log.Infow("game channel open", "room", roomID, "user", userID)
	return nil
}

// Close releases the current handle, if any.
func (m *ConnectionManager) Close() {
	m.closeConn()
	if m.state != StateAbsent {
		m.state = StateClosed
	}
}

func (m *ConnectionManager) closeConn() {
	if m.conn != nil {
		m.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		m.conn.Close()
		m.conn = nil
		m.log.Infow("game channel closed", "room", m.roomID, "user", m.userID)
	}
	if m.done != nil {
		close(m.done)
		m.done = nil
	}
}

// noteClosed records a transport-level loss reported by the read pump.
// Stale notices from superseded connections are ignored.
func (m *ConnectionManager) noteClosed(gen uint64) {
	if gen != m.gen || m.state != StateOpen {
		return
	}
	m.conn = nil
	if m.done != nil {
		close(m.done)
		m.done = nil
	}
	m.state = StateClosed
}

func (m *ConnectionManager) readPump(conn *websocket.Conn, done <-chan struct{}, gen uint64) {
	for {
		var msg models.GameEvent
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				m.log.Warnw("game channel read failed", "error", err)
			}
			select {
			case m.sink <- connClosedEvent{gen: gen}:
			case <-done:
			default:
			}
			return
		}
		select {
		case m.sink <- pushEvent{msg: msg}:
		case <-done:
			return
		}
	}
}
