package catalog

import "github.com/rs/zerolog"

// Severity tags a notification the way the dashboard's toast component does.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is a short user-facing message about an operation's outcome.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier receives every success and failure outcome of the catalog
// workflow. Fire-and-forget: implementations must not block or fail.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the service log.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) LogNotifier {
	return LogNotifier{logger: logger}
}

func (l LogNotifier) Notify(n Notification) {
	event := l.logger.Info()
	if n.Severity == SeverityDestructive {
		event = l.logger.Warn()
	}
	event.
		Str("title", n.Title).
		Str("severity", string(n.Severity)).
		Msg(n.Description)
}
