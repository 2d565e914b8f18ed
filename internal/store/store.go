// Package store defines the settings-store abstraction for amber-scan.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running
// database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// ErrProfileNotFound is returned when no profile exists for a credential.
var ErrProfileNotFound = errors.New("profile not found")

// Store defines all data access operations for amber-scan.
type Store interface {
	// Profiles
	GetProfile(ctx context.Context, apiToken string) (*domain.UserProfile, error)
	GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	UpsertProfile(ctx context.Context, p *domain.UserProfile) error

	// ListSubscribed returns only profiles with email notifications enabled.
	ListSubscribed(ctx context.Context) ([]domain.UserProfile, error)

	// UpdateLastAlert records a successful alert dispatch for one kind.
	UpdateLastAlert(ctx context.Context, apiToken string, kind domain.AlertKind, t time.Time) error

	// SetSiteID caches a lazily resolved site ID on the profile.
	SetSiteID(ctx context.Context, apiToken, siteID string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
