package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o6elisk/amber-scan-simple/internal/notify"
	"github.com/o6elisk/amber-scan-simple/pkg/retry"
	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

func fastRetry() retry.Policy {
	return retry.Policy{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
	}
}

type capturedRequest struct {
	TransactionalID string            `json:"transactionalId"`
	Email           string            `json:"email"`
	DataVariables   map[string]string `json:"dataVariables"`
}

func TestLoopsNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		alert          notify.AlertPayload
		wantDescriptor string
		wantCurrent    string
		wantMessage    string
	}{
		{
			name: "high price",
			alert: notify.AlertPayload{
				Kind:         domain.AlertHighPrice,
				Email:        "jane@example.com",
				CurrentValue: 45.678,
				Threshold:    30,
			},
			wantDescriptor: "High Price",
			wantCurrent:    "45.68¢/kWh",
			wantMessage:    "exceeded your maximum threshold of 30.00¢/kWh",
		},
		{
			name: "low price",
			alert: notify.AlertPayload{
				Kind:         domain.AlertLowPrice,
				Email:        "jane@example.com",
				CurrentValue: 2.5,
				Threshold:    5,
			},
			wantDescriptor: "Low Price",
			wantCurrent:    "2.50¢/kWh",
			wantMessage:    "dropped below your minimum threshold of 5.00¢/kWh",
		},
		{
			name: "renewables rounds to whole percent",
			alert: notify.AlertPayload{
				Kind:         domain.AlertRenewables,
				Email:        "jane@example.com",
				CurrentValue: 81.6,
				Threshold:    75.2,
			},
			wantDescriptor: "High Renewables",
			wantCurrent:    "82%",
			wantMessage:    "percentage (82%) has exceeded your threshold of 75%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got capturedRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			n := notify.NewLoopsNotifier("key-1", "tmpl-1",
				notify.WithLoopsEndpoint(srv.URL),
				notify.WithLoopsRetryPolicy(fastRetry()),
			)

			require.NoError(t, n.SendAlert(context.Background(), tt.alert))

			assert.Equal(t, "tmpl-1", got.TransactionalID)
			assert.Equal(t, "jane@example.com", got.Email)
			assert.Equal(t, "jane", got.DataVariables["first_name"])
			assert.Equal(t, tt.wantDescriptor, got.DataVariables["alert_descriptor"])
			assert.Equal(t, tt.wantCurrent, got.DataVariables["current_price"])
			assert.Contains(t, got.DataVariables["alert_message"], tt.wantMessage)
		})
	}
}

func TestLoopsNotifier_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.NewLoopsNotifier("key-1", "tmpl-1",
		notify.WithLoopsEndpoint(srv.URL),
		notify.WithLoopsRetryPolicy(fastRetry()),
	)

	err := n.SendAlert(context.Background(), notify.AlertPayload{
		Kind:  domain.AlertHighPrice,
		Email: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoopsNotifier_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := notify.NewLoopsNotifier("key-1", "tmpl-1",
		notify.WithLoopsEndpoint(srv.URL),
		notify.WithLoopsRetryPolicy(fastRetry()),
	)

	err := n.SendAlert(context.Background(), notify.AlertPayload{
		Kind:  domain.AlertLowPrice,
		Email: "jane@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loops returned 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoopsNotifier_UnknownKind(t *testing.T) {
	t.Parallel()

	n := notify.NewLoopsNotifier("key-1", "tmpl-1")

	err := n.SendAlert(context.Background(), notify.AlertPayload{
		Kind:  domain.AlertKind("bogus"),
		Email: "jane@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown alert kind")
}
