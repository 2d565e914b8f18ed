package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
	"github.com/o6elisk/amber-scan-simple/pkg/retry"
)

const defaultLoopsURL = "https://app.loops.so/api/v1/transactional"

// LoopsNotifier implements Notifier via the Loops transactional email API.
// One template is shared by all three alert kinds; the per-kind wording
// is carried in the template data variables.
type LoopsNotifier struct {
	apiKey     string
	templateID string
	endpoint   string
	client     *http.Client
	retry      retry.Policy
}

// LoopsOption configures a LoopsNotifier.
type LoopsOption func(*LoopsNotifier)

// WithLoopsEndpoint overrides the default Loops API endpoint.
func WithLoopsEndpoint(u string) LoopsOption {
	return func(l *LoopsNotifier) {
		l.endpoint = u
	}
}

// WithLoopsHTTPClient sets a custom HTTP client.
func WithLoopsHTTPClient(c *http.Client) LoopsOption {
	return func(l *LoopsNotifier) {
		l.client = c
	}
}

// WithLoopsRetryPolicy overrides the default outbound retry policy.
func WithLoopsRetryPolicy(p retry.Policy) LoopsOption {
	return func(l *LoopsNotifier) {
		l.retry = p
	}
}

// NewLoopsNotifier creates a new LoopsNotifier.
func NewLoopsNotifier(apiKey, templateID string, opts ...LoopsOption) *LoopsNotifier {
	l := &LoopsNotifier{
		apiKey:     apiKey,
		templateID: templateID,
		endpoint:   defaultLoopsURL,
		client:     &http.Client{Timeout: 30 * time.Second},
		retry:      retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// loopsRequest is the Loops transactional-send JSON structure.
type loopsRequest struct {
	TransactionalID string            `json:"transactionalId"`
	Email           string            `json:"email"`
	DataVariables   map[string]string `json:"dataVariables"`
}

// SendAlert sends a single alert email through the Loops template.
func (l *LoopsNotifier) SendAlert(ctx context.Context, alert AlertPayload) error {
	vars, err := templateVariables(alert)
	if err != nil {
		return err
	}

	payload := loopsRequest{
		TransactionalID: l.templateID,
		Email:           alert.Email,
		DataVariables:   vars,
	}

	return l.retry.Do(ctx, func() error {
		return l.post(ctx, payload)
	})
}

// templateVariables builds the per-kind template wording. Prices render
// with two decimal places in ¢/kWh; renewables render as a whole percent.
func templateVariables(alert AlertPayload) (map[string]string, error) {
	vars := map[string]string{
		"first_name": firstName(alert.Email),
	}

	switch alert.Kind {
	case domain.AlertHighPrice:
		vars["alert_descriptor"] = "High Price"
		vars["threshold_descriptor"] = "maximum price threshold"
		vars["current_price"] = fmt.Sprintf("%.2f¢/kWh", alert.CurrentValue)
		vars["alert_message"] = fmt.Sprintf(
			"The current electricity price (%.2f¢/kWh) has exceeded your maximum threshold of %.2f¢/kWh.",
			alert.CurrentValue, alert.Threshold,
		)
	case domain.AlertLowPrice:
		vars["alert_descriptor"] = "Low Price"
		vars["threshold_descriptor"] = "minimum price threshold"
		vars["current_price"] = fmt.Sprintf("%.2f¢/kWh", alert.CurrentValue)
		vars["alert_message"] = fmt.Sprintf(
			"The current electricity price (%.2f¢/kWh) has dropped below your minimum threshold of %.2f¢/kWh.",
			alert.CurrentValue, alert.Threshold,
		)
	case domain.AlertRenewables:
		vars["alert_descriptor"] = "High Renewables"
		vars["threshold_descriptor"] = "renewables threshold"
		vars["current_price"] = fmt.Sprintf("%d%%", int(math.Round(alert.CurrentValue)))
		vars["alert_message"] = fmt.Sprintf(
			"The current renewable energy percentage (%d%%) has exceeded your threshold of %d%%.",
			int(math.Round(alert.CurrentValue)), int(math.Round(alert.Threshold)),
		)
	default:
		return nil, fmt.Errorf("unknown alert kind %q", alert.Kind)
	}

	return vars, nil
}

func firstName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func (l *LoopsNotifier) post(ctx context.Context, payload loopsRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return retry.Permanent(fmt.Errorf("marshaling loops payload: %w", err))
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, l.endpoint, bytes.NewReader(body),
	)
	if err != nil {
		return retry.Permanent(fmt.Errorf("creating loops request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending loops request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		respBody = []byte("(body unreadable)")
	}

	// 429s and server errors are worth another attempt; everything else is not.
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return fmt.Errorf("loops returned %d: %s", resp.StatusCode, respBody)
	}

	return retry.Permanent(fmt.Errorf("loops returned %d: %s", resp.StatusCode, respBody))
}
