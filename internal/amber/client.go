// Package amber provides an Amber Electric API client abstracted behind
// an interface for testability.
package amber

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the Amber API error taxonomy.
var (
	// ErrUnauthorized means the user's API token was rejected.
	ErrUnauthorized = errors.New("amber: invalid API token")
	// ErrNotFound means the requested site does not exist for this token.
	ErrNotFound = errors.New("amber: site not found")
	// ErrNoSites means the account has no sites to resolve.
	ErrNoSites = errors.New("amber: no sites available for this account")
)

// Site is one electricity site attached to an Amber account.
type Site struct {
	ID     string `json:"id"`
	NMI    string `json:"nmi"`
	Status string `json:"status"`
}

// IntervalReading is one raw price record as returned by the Amber
// prices endpoint. Nullable provider fields are pointers.
type IntervalReading struct {
	Type        string     `json:"type"`
	ChannelType string     `json:"channelType"`
	PerKwh      *float64   `json:"perKwh"`
	SpotPerKwh  *float64   `json:"spotPerKwh"`
	Renewables  *float64   `json:"renewables"`
	SpikeStatus string     `json:"spikeStatus"`
	Estimate    bool       `json:"estimate"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	NemTime     *time.Time `json:"nemTime"`
}

// Client defines the interface for interacting with the Amber API.
// Calls authenticate with the per-user API token.
type Client interface {
	Sites(ctx context.Context, apiToken string) ([]Site, error)
	CurrentPrices(ctx context.Context, apiToken, siteID string) ([]IntervalReading, error)
}
