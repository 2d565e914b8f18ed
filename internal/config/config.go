// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Amber         AmberConfig         `yaml:"amber"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// AmberConfig defines Amber Electric API settings. Per-user API tokens
// live in the settings store, not here.
type AmberConfig struct {
	BaseURL   string          `yaml:"base_url"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Amber API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	CycleInterval time.Duration `yaml:"cycle_interval"`
}

// AlertsConfig defines alert dispatch behavior.
type AlertsConfig struct {
	Cooldown    time.Duration `yaml:"cooldown"`    // default: 1h
	Concurrency int           `yaml:"concurrency"` // users checked in parallel
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Loops LoopsConfig `yaml:"loops"`
}

// LoopsConfig defines Loops transactional email settings.
type LoopsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	APIKey     string `yaml:"api_key"`
	TemplateID string `yaml:"template_id"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyAmberDefaults(&cfg.Amber)
	applyScheduleDefaults(&cfg.Schedule)
	applyAlertsDefaults(&cfg.Alerts)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAmberDefaults(a *AmberConfig) {
	if a.BaseURL == "" {
		a.BaseURL = "https://api.amber.com.au/v1"
	}
	if a.Timeout == 0 {
		a.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&a.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CycleInterval == 0 {
		s.CycleInterval = 30 * time.Minute
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.Cooldown == 0 {
		a.Cooldown = time.Hour
	}
	if a.Concurrency == 0 {
		a.Concurrency = 4
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Notifications.Loops.Enabled {
		if cfg.Notifications.Loops.APIKey == "" {
			errs = append(
				errs,
				fmt.Errorf("notifications.loops.api_key is required when loops is enabled"),
			)
		}
		if cfg.Notifications.Loops.TemplateID == "" {
			errs = append(
				errs,
				fmt.Errorf("notifications.loops.template_id is required when loops is enabled"),
			)
		}
	}

	if cfg.Alerts.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("alerts.cooldown must not be negative"))
	}
	if cfg.Schedule.CycleInterval < time.Minute {
		errs = append(
			errs,
			fmt.Errorf("schedule.cycle_interval must be at least one minute"),
		)
	}

	return errors.Join(errs...)
}
