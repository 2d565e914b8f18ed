package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

func TestNoOpNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.SendAlert(context.Background(), AlertPayload{
		Kind:         domain.AlertHighPrice,
		Email:        "jane@example.com",
		CurrentValue: 42,
		Threshold:    30,
	})
	require.NoError(t, err)
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*LoopsNotifier)(nil)
)
