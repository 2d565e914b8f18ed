//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/o6elisk/amber-scan-simple/internal/store"
	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("amberscan_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func floatPtr(f float64) *float64 { return &f }

func testProfile(token string) *domain.UserProfile {
	return &domain.UserProfile{
		APIToken:   token,
		Email:      token + "@example.com",
		HighPrice:  domain.ThresholdConfig{Threshold: floatPtr(30), Enabled: true},
		LowPrice:   domain.ThresholdConfig{Threshold: floatPtr(5), Enabled: true},
		Renewables: domain.ThresholdConfig{Threshold: floatPtr(75), Enabled: false},
		QuietHours: []domain.QuietWindow{
			{Start: "22:00", End: "07:00"},
			{Start: "12:30", End: "13:30"},
		},
		QuietHoursEnabled:  true,
		EmailNotifications: true,
		Timezone:           "Australia/Sydney",
	}
}

func TestPostgresStore_ProfileRoundTrip(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	in := testProfile("tok-1")
	require.NoError(t, s.UpsertProfile(ctx, in))
	assert.False(t, in.CreatedAt.IsZero())

	got, err := s.GetProfile(ctx, "tok-1")
	require.NoError(t, err)

	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, 30.0, *got.HighPrice.Threshold)
	assert.Equal(t, 5.0, *got.LowPrice.Threshold)
	assert.Equal(t, 75.0, *got.Renewables.Threshold)
	assert.True(t, got.HighPrice.Enabled)
	assert.False(t, got.Renewables.Enabled)
	assert.Equal(t, "Australia/Sydney", got.Timezone)
	assert.Nil(t, got.HighPrice.LastAlertAt)

	// Quiet-hour windows come back in the order they were written.
	assert.Equal(t, in.QuietHours, got.QuietHours)
}

func TestPostgresStore_UpsertUpdatesExisting(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := testProfile("tok-1")
	require.NoError(t, s.UpsertProfile(ctx, p))

	p.HighPrice.Threshold = floatPtr(45)
	p.EmailNotifications = false
	require.NoError(t, s.UpsertProfile(ctx, p))

	got, err := s.GetProfile(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 45.0, *got.HighPrice.Threshold)
	assert.False(t, got.EmailNotifications)
}

func TestPostgresStore_GetProfile_NotFound(t *testing.T) {
	s := setupPostgres(t)

	_, err := s.GetProfile(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestPostgresStore_GetProfileByEmail(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProfile(ctx, testProfile("tok-1")))

	got, err := s.GetProfileByEmail(ctx, "tok-1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.APIToken)

	_, err = s.GetProfileByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestPostgresStore_ListSubscribed(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	subscribed := testProfile("tok-1")
	unsubscribed := testProfile("tok-2")
	unsubscribed.EmailNotifications = false

	require.NoError(t, s.UpsertProfile(ctx, subscribed))
	require.NoError(t, s.UpsertProfile(ctx, unsubscribed))

	got, err := s.ListSubscribed(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tok-1", got[0].APIToken)
}

func TestPostgresStore_UpdateLastAlert(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProfile(ctx, testProfile("tok-1")))

	now := time.Now().Truncate(time.Microsecond)
	require.NoError(t, s.UpdateLastAlert(ctx, "tok-1", domain.AlertHighPrice, now))

	got, err := s.GetProfile(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got.HighPrice.LastAlertAt)
	assert.True(t, got.HighPrice.LastAlertAt.Equal(now))
	assert.Nil(t, got.LowPrice.LastAlertAt)
	assert.Nil(t, got.Renewables.LastAlertAt)

	// Timestamps never move backward.
	earlier := now.Add(-time.Hour)
	require.NoError(t, s.UpdateLastAlert(ctx, "tok-1", domain.AlertHighPrice, earlier))

	got, err = s.GetProfile(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, got.HighPrice.LastAlertAt.Equal(now))
}

func TestPostgresStore_UpdateLastAlert_Errors(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	err := s.UpdateLastAlert(ctx, "missing", domain.AlertHighPrice, time.Now())
	require.ErrorIs(t, err, store.ErrProfileNotFound)

	require.NoError(t, s.UpsertProfile(ctx, testProfile("tok-1")))
	err = s.UpdateLastAlert(ctx, "tok-1", domain.AlertKind("bogus"), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown alert kind")
}

func TestPostgresStore_SetSiteID(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProfile(ctx, testProfile("tok-1")))
	require.NoError(t, s.SetSiteID(ctx, "tok-1", "site-42"))

	got, err := s.GetProfile(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "site-42", got.SiteID)

	require.ErrorIs(t,
		s.SetSiteID(ctx, "missing", "site-42"),
		store.ErrProfileNotFound,
	)
}
