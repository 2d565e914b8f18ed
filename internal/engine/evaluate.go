package engine

import (
	"time"

	"github.com/o6elisk/amber-scan-simple/internal/metrics"
	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// Evaluate applies all three alert thresholds to a single price reading
// and returns the alerts that should fire now. The kinds are independent;
// a user may receive zero, one, two, or three alerts from one reading.
func Evaluate(
	p *domain.UserProfile,
	reading *domain.PriceReading,
	cooldown time.Duration,
	now time.Time,
) []domain.AlertEvent {
	var events []domain.AlertEvent

	for _, kind := range domain.Kinds() {
		cfg := p.Config(kind)
		if !cfg.Enabled || cfg.Threshold == nil {
			continue
		}

		current, ok := exceeded(kind, reading, *cfg.Threshold)
		if !ok {
			continue
		}

		if !canFire(cfg.LastAlertAt, cooldown, now) {
			metrics.CooldownSuppressedTotal.WithLabelValues(string(kind)).Inc()
			continue
		}

		events = append(events, domain.AlertEvent{
			Kind:         kind,
			CurrentValue: current,
			Threshold:    *cfg.Threshold,
		})
	}

	return events
}

// exceeded returns the value compared for this kind and whether it
// crossed the threshold.
func exceeded(kind domain.AlertKind, r *domain.PriceReading, threshold float64) (float64, bool) {
	switch kind {
	case domain.AlertHighPrice:
		return r.Price, r.Price > threshold
	case domain.AlertLowPrice:
		return r.Price, r.Price < threshold
	case domain.AlertRenewables:
		return r.RenewablesPercent, r.RenewablesPercent > threshold
	default:
		return 0, false
	}
}
