package textwidth

import "log/slog"

// WarningProvider receives recoverable-warning signals: malformed byte
// sequences during width aggregation and unresolvable Unicode version
// requests. Warnings are informational; the computation always continues
// with a best-effort result.
type WarningProvider interface {
	// Warn is called with a human-readable description of the condition.
	Warn(message string)
}

// NoopWarnings discards all warnings. It is the default.
type NoopWarnings struct{}

func (NoopWarnings) Warn(string) {}

// LogWarnings forwards warnings to a slog logger. With a nil Logger it uses
// slog.Default().
type LogWarnings struct {
	Logger *slog.Logger
}

func (w LogWarnings) Warn(message string) {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(message)
}

// CollectWarnings appends warnings to Messages, useful in tests and for
// callers that surface warnings out of band. Not safe for concurrent use.
type CollectWarnings struct {
	Messages []string
}

func (w *CollectWarnings) Warn(message string) {
	w.Messages = append(w.Messages, message)
}
