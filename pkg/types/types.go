// Package domain defines the core business types for amber-scan.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// AlertKind identifies one of the three independent alert thresholds.
type AlertKind string

// Alert kind constants.
const (
	AlertHighPrice  AlertKind = "high_price"
	AlertLowPrice   AlertKind = "low_price"
	AlertRenewables AlertKind = "renewables"
)

// Kinds lists every alert kind in evaluation order.
func Kinds() []AlertKind {
	return []AlertKind{AlertHighPrice, AlertLowPrice, AlertRenewables}
}

// ThresholdConfig holds one alert threshold and its firing state.
// A nil Threshold means the kind is never evaluated.
type ThresholdConfig struct {
	Threshold   *float64   `json:"threshold"`
	Enabled     bool       `json:"enabled"`
	LastAlertAt *time.Time `json:"last_alert_at,omitempty"`
}

// QuietWindow is a recurring daily local-time window during which no
// alerts are sent. Start and End are wall-clock "HH:MM" strings,
// re-anchored to the current date on every evaluation.
type QuietWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UserProfile holds one registrant's alert settings, keyed by their
// Amber API token.
type UserProfile struct {
	APIToken string `json:"api_token"`
	Email    string `json:"email"`

	// SiteID is resolved lazily from the Amber API on first use and
	// cached afterward.
	SiteID string `json:"site_id,omitempty"`

	HighPrice  ThresholdConfig `json:"high_price"`
	LowPrice   ThresholdConfig `json:"low_price"`
	Renewables ThresholdConfig `json:"renewables"`

	QuietHours        []QuietWindow `json:"quiet_hours"`
	QuietHoursEnabled bool          `json:"quiet_hours_enabled"`

	EmailNotifications bool   `json:"email_notifications"`
	Timezone           string `json:"timezone"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Config returns the threshold config for the given kind. Unknown kinds
// return nil.
func (p *UserProfile) Config(kind AlertKind) *ThresholdConfig {
	switch kind {
	case AlertHighPrice:
		return &p.HighPrice
	case AlertLowPrice:
		return &p.LowPrice
	case AlertRenewables:
		return &p.Renewables
	default:
		return nil
	}
}

// Location loads the profile's IANA timezone. Invalid or empty timezones
// fall back to UTC rather than failing the evaluation.
func (p *UserProfile) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ErrInvalidProfile is the base error for profile validation failures.
var ErrInvalidProfile = errors.New("invalid profile")

// Validate checks the fields that must be rejected at write time.
// Quiet-hour strings are deliberately not validated here; malformed
// windows degrade to defaults during evaluation instead.
func (p *UserProfile) Validate() error {
	if p.APIToken == "" {
		return fmt.Errorf("%w: api_token is required", ErrInvalidProfile)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidProfile)
	}
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidProfile, p.Timezone)
		}
	}
	return nil
}

// PriceReading is a normalized price observation for one pricing
// interval. Derived from the raw Amber records; never persisted.
type PriceReading struct {
	Price             float64   `json:"price"`
	RenewablesPercent float64   `json:"renewables"`
	ObservedAt        time.Time `json:"observed_at"`
}

// AlertEvent is one alert that should fire for a user in the current
// evaluation cycle.
type AlertEvent struct {
	Kind         AlertKind `json:"kind"`
	CurrentValue float64   `json:"current_value"`
	Threshold    float64   `json:"threshold"`
}
