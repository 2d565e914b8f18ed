package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when Loops (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAlert logs and discards a single alert.
func (n *NoOpNotifier) SendAlert(_ context.Context, alert AlertPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"kind", alert.Kind,
		"email", alert.Email,
		"current_value", alert.CurrentValue,
		"threshold", alert.Threshold,
	)
	return nil
}
