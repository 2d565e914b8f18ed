package engine

import "time"

// canFire reports whether the per-kind cooldown permits another alert.
// A nil lastAlertAt never suppresses. The inequality is strict: an alert
// exactly at the cooldown boundary is still suppressed.
func canFire(lastAlertAt *time.Time, cooldown time.Duration, now time.Time) bool {
	if lastAlertAt == nil {
		return true
	}
	return now.Sub(*lastAlertAt) > cooldown
}
