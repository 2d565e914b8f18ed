// Package notify defines the notification interface and implementations
// for alert delivery.
package notify

import (
	"context"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// AlertPayload contains the data needed to send one threshold alert email.
type AlertPayload struct {
	Kind         domain.AlertKind
	Email        string
	CurrentValue float64
	Threshold    float64
}

// Notifier defines the interface for sending threshold alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert AlertPayload) error
}
