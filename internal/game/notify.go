package game

import "go.uber.org/zap"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives transient user-facing messages. Validation
// problems arrive as warnings, failed requests as errors; none of them
// are fatal to the session.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(Severity, string) {}

// LogNotifier routes notifications to a logger, for headless use.
type LogNotifier struct {
	Log *zap.SugaredLogger
}

func (n LogNotifier) Notify(severity Severity, message string) {
	switch severity {
	case SeverityWarning:
		n.Log.Warnw(message, "notify", severity)
	case SeverityError:
		n.Log.Errorw(message, "notify", severity)
	default:
		n.Log.Infow(message, "notify", severity)
	}
}
