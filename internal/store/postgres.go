package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProfile inserts or updates a profile by api_token.
// Last-alert timestamps are never written here; they belong to
// UpdateLastAlert only.
func (s *PostgresStore) UpsertProfile(ctx context.Context, p *domain.UserProfile) error {
	quietJSON, err := json.Marshal(p.QuietHours)
	if err != nil {
		return fmt.Errorf("marshaling quiet hours: %w", err)
	}

	timezone := p.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	args := pgx.NamedArgs{
		"api_token":           p.APIToken,
		"email":               p.Email,
		"site_id":             nullableString(p.SiteID),
		"high_price":          p.HighPrice.Threshold,
		"low_price":           p.LowPrice.Threshold,
		"renewables":          p.Renewables.Threshold,
		"high_price_enabled":  p.HighPrice.Enabled,
		"low_price_enabled":   p.LowPrice.Enabled,
		"renewables_enabled":  p.Renewables.Enabled,
		"quiet_hours":         quietJSON,
		"quiet_hours_enabled": p.QuietHoursEnabled,
		"email_notifications": p.EmailNotifications,
		"timezone":            timezone,
	}

	return s.pool.QueryRow(ctx, queryUpsertProfile, args).Scan(
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// GetProfile retrieves a profile by its API token.
func (s *PostgresStore) GetProfile(
	ctx context.Context,
	apiToken string,
) (*domain.UserProfile, error) {
	return s.scanProfileRow(s.pool.QueryRow(ctx, queryGetProfileByToken, apiToken))
}

// GetProfileByEmail retrieves a profile by its notification address.
func (s *PostgresStore) GetProfileByEmail(
	ctx context.Context,
	email string,
) (*domain.UserProfile, error) {
	return s.scanProfileRow(s.pool.QueryRow(ctx, queryGetProfileByEmail, email))
}

// ListSubscribed returns all profiles with email notifications enabled.
func (s *PostgresStore) ListSubscribed(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := s.pool.Query(ctx, queryListSubscribed)
	if err != nil {
		return nil, fmt.Errorf("querying subscribed profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.UserProfile
	for rows.Next() {
		var p domain.UserProfile
		if err := scanProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	return profiles, nil
}

// UpdateLastAlert records a successful alert dispatch for one kind.
func (s *PostgresStore) UpdateLastAlert(
	ctx context.Context,
	apiToken string,
	kind domain.AlertKind,
	t time.Time,
) error {
	var query string
	switch kind {
	case domain.AlertHighPrice:
		query = queryUpdateLastHighAlert
	case domain.AlertLowPrice:
		query = queryUpdateLastLowAlert
	case domain.AlertRenewables:
		query = queryUpdateLastRenewablesAlert
	default:
		return fmt.Errorf("unknown alert kind %q", kind)
	}

	tag, err := s.pool.Exec(ctx, query, apiToken, t)
	if err != nil {
		return fmt.Errorf("updating last alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetSiteID caches a resolved site ID on the profile.
func (s *PostgresStore) SetSiteID(ctx context.Context, apiToken, siteID string) error {
	tag, err := s.pool.Exec(ctx, querySetSiteID, apiToken, siteID)
	if err != nil {
		return fmt.Errorf("setting site id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *PostgresStore) scanProfileRow(row pgx.Row) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	if err := scanProfile(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProfile(row rowScanner, p *domain.UserProfile) error {
	var quietJSON []byte

	err := row.Scan(
		&p.APIToken, &p.Email, &p.SiteID,
		&p.HighPrice.Threshold, &p.LowPrice.Threshold, &p.Renewables.Threshold,
		&p.HighPrice.Enabled, &p.LowPrice.Enabled, &p.Renewables.Enabled,
		&quietJSON, &p.QuietHoursEnabled,
		&p.EmailNotifications, &p.Timezone,
		&p.HighPrice.LastAlertAt, &p.LowPrice.LastAlertAt, &p.Renewables.LastAlertAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	// Malformed stored quiet hours degrade to "no windows" rather than
	// failing the whole evaluation cycle.
	if len(quietJSON) > 0 {
		if err := json.Unmarshal(quietJSON, &p.QuietHours); err != nil {
			p.QuietHours = nil
		}
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
