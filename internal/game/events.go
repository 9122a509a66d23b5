package game

import "bingo-miniapp-client/internal/models"

// Event is an opaque item on the session's single-threaded loop:
// countdown ticks, push-channel messages and transport-loss notices.
// The owner drains Events() and feeds each one to Handle on the same
// goroutine that calls every other Session method.
type Event interface {
	isEvent()
}

type tickEvent struct {
	cd *countdown
}

type pushEvent struct {
	msg models.GameEvent
}

type connClosedEvent struct {
	gen uint64
}

func (tickEvent) isEvent()       {}
func (pushEvent) isEvent()       {}
func (connClosedEvent) isEvent() {}
