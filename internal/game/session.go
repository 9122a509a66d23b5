package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bingo-miniapp-client/internal/models"
)

// Phase is the session's position in one room engagement.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseBrowsing  Phase = "browsing"
	PhaseSelecting Phase = "selecting"
	PhaseJoining   Phase = "joining"
	PhaseWaiting   Phase = "waiting"
	PhaseCalling   Phase = "calling"
	PhaseEnded     Phase = "ended"
)

// CountdownSeconds is the fixed pre-round countdown. The backend does
// not expose a round timer, so the client keeps its own.
const CountdownSeconds = 10

// Backend is the request/response surface the session consumes. The
// API client implements it.
type Backend interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GenerateCards(ctx context.Context, count int) ([]models.Card, error)
	MyCards(ctx context.Context) ([]models.Card, error)
	JoinGame(ctx context.Context, roomID int64, cardIDs []int64) (*models.JoinResult, error)
	StartGame(ctx context.Context, roomID int64) error
	MarkNumber(ctx context.Context, roomID int64, number, cardIndex int) error
	CheckWin(ctx context.Context, roomID int64, cardIndex int) (*models.WinResult, error)
}

// Config tunes session timing. Zero values pick the defaults.
type Config struct {
	// TickInterval is the countdown tick period, one second unless
	// shortened for tests.
	TickInterval time.Duration
	// CardCount is how many cards to request or generate when the
	// player has none.
	CardCount int
}

// Hooks are optional rendering callbacks. They run on the session
// loop, so they may call back into the session.
type Hooks struct {
	OnCountdown    func(secondsLeft int)
	OnNumberCalled func(number int, letter string)
	OnPlayerCount  func(count int)
	OnGameStarted  func()
	OnWin          func(result models.WinResult)
}

type countdown struct {
	remaining int
	stop      chan struct{}
	stopped   bool
}

// Session drives one player's room engagement: browsing, card
// selection, joining, the pre-round countdown, the live calling phase
// and win verification. It is not goroutine-safe: every method and
// Handle must run on the one goroutine that owns the session, with
// background goroutines feeding Events() only.
type Session struct {
	cfg      Config
	backend  Backend
	conn     *ConnectionManager
	notifier Notifier
	hooks    Hooks
	log      *zap.SugaredLogger

	events chan Event

	user      models.User
	phase     Phase
	room      *models.Room
	selection *SelectionLedger
	available []models.Card
	marks     *MarkTracker
	called    []int
	countdown *countdown
	winner    *WinChecker
}

func NewSession(cfg Config, backend Backend, conn *ConnectionManager, notifier Notifier, log *zap.SugaredLogger) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.CardCount <= 0 {
		cfg.CardCount = MaxSelectedCards
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s := &Session{
		cfg:       cfg,
		backend:   backend,
		conn:      conn,
		notifier:  notifier,
		log:       log,
		events:    make(chan Event, 64),
		phase:     PhaseIdle,
		selection: NewSelectionLedger(),
		winner:    NewWinChecker(backend, log),
	}
	if conn != nil {
		conn.sink = s.events
	}
	return s
}

// SetHooks installs rendering callbacks. Call before the loop starts.
func (s *Session) SetHooks(hooks Hooks) {
	s.hooks = hooks
}

// SetUser records the logged-in user the session acts for.
func (s *Session) SetUser(user models.User) {
	s.user = user
}

func (s *Session) User() models.User { return s.user }

func (s *Session) Phase() Phase { return s.phase }

// Room returns the snapshot of the engaged room, nil outside an
// engagement.
func (s *Session) Room() *models.Room {
	if s.room == nil {
		return nil
	}
	snapshot := *s.room
	return &snapshot
}

func (s *Session) Selection() *SelectionLedger { return s.selection }

func (s *Session) AvailableCards() []models.Card {
	out := make([]models.Card, len(s.available))
	copy(out, s.available)
	return out
}

// Marks exposes the held cards and their marked cells during a round,
// nil before a join.
func (s *Session) Marks() *MarkTracker { return s.marks }

// CalledNumbers returns the numbers received so far, in call order.
func (s *Session) CalledNumbers() []int {
	out := make([]int, len(s.called))
	copy(out, s.called)
	return out
}

// CountdownRemaining is the seconds left in the waiting phase, zero
// elsewhere.
func (s *Session) CountdownRemaining() int {
	if s.countdown == nil {
		return 0
	}
	return s.countdown.remaining
}

// Events is the session's single delivery channel: countdown ticks,
// push messages and transport notices. The owner must feed each event
// to Handle.
func (s *Session) Events() <-chan Event { return s.events }

// Run drains the event loop until ctx is cancelled, for headless
// owners that take no user input of their own.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			s.Handle(ev)
		}
	}
}

func (s *Session) Handle(ev Event) {
	switch ev := ev.(type) {
	case tickEvent:
		s.handleTick(ev)
	case pushEvent:
		s.handlePush(ev.msg)
	case connClosedEvent:
		if s.conn != nil {
			s.conn.noteClosed(ev.gen)
		}
	}
}

// BrowseRooms fetches the joinable rooms and enters the browsing
// phase. Rooms are fresh snapshots each call.
func (s *Session) BrowseRooms(ctx context.Context) ([]models.Room, error) {
	if s.phase != PhaseIdle && s.phase != PhaseBrowsing {
		s.notifier.Notify(SeverityWarning, "finish the current game first")
		return nil, nil
	}
	rooms, err := s.backend.ListRooms(ctx)
	if err != nil {
		s.notifier.Notify(SeverityError, "failed to load game rooms")
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	s.phase = PhaseBrowsing
	return rooms, nil
}

// SelectRoom snapshots the picked room and starts card selection.
func (s *Session) SelectRoom(room models.Room) bool {
	if s.phase != PhaseBrowsing {
		s.notifier.Notify(SeverityWarning, "please select a room first")
		return false
	}
	snapshot := room
	s.room = &snapshot
	s.selection.Reset()
	s.phase = PhaseSelecting
	return true
}

// AbandonRoom drops the picked room and returns to browsing.
func (s *Session) AbandonRoom() {
	if s.phase != PhaseSelecting {
		return
	}
	s.room = nil
	s.selection.Reset()
	s.available = nil
	s.phase = PhaseBrowsing
}

// LoadCards fetches the player's issued cards, asking the backend to
// issue new ones when there are none. If the backend cannot supply
// cards at all, locally generated candidates are returned so the
// player still has something to look at; those carry no id and cannot
// be selected for a join.
func (s *Session) LoadCards(ctx context.Context) ([]models.Card, error) {
	if s.phase != PhaseSelecting {
		s.notifier.Notify(SeverityWarning, "pick a room before choosing cards")
		return nil, nil
	}

	cards, err := s.backend.MyCards(ctx)
	if err != nil {
		s.log.Warnw("fetching issued cards failed", "error", err)
	}
	if len(cards) == 0 {
		cards, err = s.backend.GenerateCards(ctx, s.cfg.CardCount)
		if err != nil {
			s.log.Warnw("card issuance failed, generating locally", "error", err)
			s.notifier.Notify(SeverityWarning, "cards are offline previews until the server is reachable")
			cards = GenerateCards(s.cfg.CardCount)
		}
	}
	s.available = cards
	return s.AvailableCards(), nil
}

// ToggleCard flips a card in or out of the pre-join selection. Picking
// a third card is rejected with a warning and leaves the held set
// unchanged.
func (s *Session) ToggleCard(id int64) bool {
	if s.phase != PhaseSelecting {
		s.notifier.Notify(SeverityWarning, "cards can only be chosen before joining")
		return false
	}
	if id == 0 {
		s.notifier.Notify(SeverityWarning, "this card has not been issued yet")
		return false
	}
	if s.selection.Toggle(id) == ToggleRejected {
		s.notifier.Notify(SeverityWarning, fmt.Sprintf("maximum %d cards allowed", MaxSelectedCards))
		return false
	}
	return true
}

// Join submits the selected cards to the room. With an empty
// selection no request is made and the phase does not change. On a
// rejected join the session falls back to selecting.
func (s *Session) Join(ctx context.Context) error {
	if s.phase != PhaseSelecting || s.room == nil {
		s.notifier.Notify(SeverityWarning, "please select a room first")
		return nil
	}
	ids := s.selection.IDs()
	if len(ids) == 0 {
		s.notifier.Notify(SeverityWarning, "select at least one card to join")
		return nil
	}

	s.phase = PhaseJoining
	result, err := s.backend.JoinGame(ctx, s.room.ID, ids)
	if err != nil {
		s.phase = PhaseSelecting
		s.notifier.Notify(SeverityError, "failed to join game")
		return fmt.Errorf("join room %d: %w", s.room.ID, err)
	}

	if result.PlayerCount > 0 {
		s.room.CurrentPlayers = result.PlayerCount
	}
	s.marks = NewMarkTracker(s.heldCards(ids))
	s.called = nil
	s.phase = PhaseWaiting
	s.startCountdown()
	s.openChannel()
	s.log.Infow("joined room", "room", s.room.ID, "players", s.room.CurrentPlayers, "cards", len(ids))
	return nil
}

// heldCards resolves selected ids to card snapshots in held order.
func (s *Session) heldCards(ids []int64) []models.Card {
	held := make([]models.Card, 0, len(ids))
	for _, id := range ids {
		for _, card := range s.available {
			if card.ID == id {
				held = append(held, card)
				break
			}
		}
	}
	return held
}

// Mark toggles a cell on a held card. The local set changes
// immediately; the backend record is fire-and-forget, with failures
// only logged, so local and server mark state may diverge.
func (s *Session) Mark(cardIndex, cellIndex int) {
	if s.marks == nil || s.room == nil {
		return
	}
	number, changed := s.marks.Toggle(cardIndex, cellIndex)
	if !changed {
		return
	}
	roomID := s.room.ID
	go func() {
		if err := s.backend.MarkNumber(context.Background(), roomID, number, cardIndex); err != nil {
			s.log.Warnw("mark-number sync failed", "room", roomID, "card", cardIndex, "number", number, "error", err)
		}
	}()
}

// CheckWin runs the sequential first-match verification over the held
// cards. A confirmed win ends the session; otherwise the player is
// told there is no bingo yet and the phase is unchanged.
func (s *Session) CheckWin(ctx context.Context) (*models.WinResult, error) {
	if s.phase != PhaseWaiting && s.phase != PhaseCalling {
		s.notifier.Notify(SeverityWarning, "no round in progress")
		return nil, nil
	}
	result, _, err := s.winner.Check(ctx, s.room.ID, s.marks.CardCount())
	if err != nil {
		s.notifier.Notify(SeverityError, "win check failed")
		return nil, err
	}
	if result.HasWon {
		s.endGame(result)
		return result, nil
	}
	s.notifier.Notify(SeverityInfo, "No bingo yet!")
	return result, nil
}

// Leave exits the engagement. Anywhere at or past joining this tears
// down the countdown and the push channel.
func (s *Session) Leave() {
	switch s.phase {
	case PhaseSelecting:
		s.AbandonRoom()
	case PhaseJoining, PhaseWaiting, PhaseCalling:
		s.endGame(nil)
	}
}

// Continue acknowledges the ended round and returns to browsing.
func (s *Session) Continue() {
	if s.phase != PhaseEnded {
		return
	}
	s.room = nil
	s.selection.Reset()
	s.available = nil
	s.marks = nil
	s.called = nil
	s.phase = PhaseBrowsing
}

// SetVisible applies the host shell's visibility policy: background
// closes the channel to save battery, foreground reopens it when a
// round is still live. This is the only reconnection trigger.
func (s *Session) SetVisible(visible bool) {
	if s.conn == nil {
		return
	}
	if !visible {
		if s.conn.IsOpen() {
			s.conn.Close()
		}
		return
	}
	if (s.phase == PhaseWaiting || s.phase == PhaseCalling) && !s.conn.IsOpen() {
		s.openChannel()
	}
}

func (s *Session) openChannel() {
	if s.conn == nil || s.room == nil {
		return
	}
	if err := s.conn.Open(s.room.ID, s.user.ID); err != nil {
		// Transport failures have no recovery path here; a later
		// foreground resume retries.
		s.log.Warnw("opening game channel failed", "room", s.room.ID, "error", err)
	}
}

func (s *Session) startCountdown() {
	s.stopCountdown()
	cd := &countdown{remaining: CountdownSeconds, stop: make(chan struct{})}
	s.countdown = cd
	go func() {
		ticker := time.NewTicker(s.cfg.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-cd.stop:
				return
			case <-ticker.C:
				select {
				case s.events <- tickEvent{cd: cd}:
				case <-cd.stop:
					return
				}
			}
		}
	}()
}

func (s *Session) stopCountdown() {
	if s.countdown == nil {
		return
	}
	if !s.countdown.stopped {
		s.countdown.stopped = true
		close(s.countdown.stop)
	}
	s.countdown = nil
}

func (s *Session) handleTick(ev tickEvent) {
	// Ticks from a cancelled or superseded countdown are stale.
	if ev.cd != s.countdown || s.phase != PhaseWaiting {
		return
	}
	ev.cd.remaining--
	if s.hooks.OnCountdown != nil {
		s.hooks.OnCountdown(ev.cd.remaining)
	}
	if ev.cd.remaining > 0 {
		return
	}

	s.stopCountdown()
	s.phase = PhaseCalling
	s.notifier.Notify(SeveritySuccess, "Game started!")
	if s.hooks.OnGameStarted != nil {
		s.hooks.OnGameStarted()
	}
	s.openChannel()

	roomID := s.room.ID
	go func() {
		if err := s.backend.StartGame(context.Background(), roomID); err != nil {
			s.log.Warnw("start-game signal failed", "room", roomID, "error", err)
		}
	}()
}

func (s *Session) handlePush(msg models.GameEvent) {
	switch msg.Type {
	case models.EventNumberCalled:
		if s.phase != PhaseWaiting && s.phase != PhaseCalling {
			return
		}
		s.called = append(s.called, msg.Number)
		if s.hooks.OnNumberCalled != nil {
			s.hooks.OnNumberCalled(msg.Number, msg.Letter)
		}
	case models.EventPlayerJoined:
		if s.room != nil && msg.PlayerCount > 0 {
			s.room.CurrentPlayers = msg.PlayerCount
			if s.hooks.OnPlayerCount != nil {
				s.hooks.OnPlayerCount(msg.PlayerCount)
			}
		}
	case models.EventGameStarted:
		s.notifier.Notify(SeverityInfo, "Round is starting")
	case models.EventPlayerWon:
		if msg.UserID != 0 && msg.UserID == s.user.ID {
			s.endGame(&models.WinResult{
				HasWon:        true,
				Pattern:       msg.Pattern,
				WinningAmount: msg.WinningAmount,
			})
			return
		}
		s.notifier.Notify(SeverityInfo, fmt.Sprintf("%s got bingo (%s)", msg.Username, msg.Pattern))
	case models.EventPlayerLeft:
		s.log.Debugw("player left room", "user", msg.UserID)
	default:
		s.log.Debugw("unhandled game event", "type", msg.Type)
	}
}

// endGame moves to the ended phase and releases the timer and the
// channel. A non-nil result means an authoritative win.
func (s *Session) endGame(result *models.WinResult) {
	if s.phase != PhaseJoining && s.phase != PhaseWaiting && s.phase != PhaseCalling {
		return
	}
	s.stopCountdown()
	if s.conn != nil {
		s.conn.Close()
	}
	s.phase = PhaseEnded
	if result != nil {
		s.notifier.Notify(SeveritySuccess,
			fmt.Sprintf("BINGO! Pattern %s, won %s", result.Pattern, models.FormatAmount(result.WinningAmount)))
		if s.hooks.OnWin != nil {
			s.hooks.OnWin(*result)
		}
	}
}
