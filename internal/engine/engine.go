// Package engine implements the alert evaluation cycle: for every
// subscribed user, fetch the current price, apply quiet hours and
// thresholds, and dispatch alerts subject to the cooldown.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/o6elisk/amber-scan-simple/internal/amber"
	"github.com/o6elisk/amber-scan-simple/internal/metrics"
	"github.com/o6elisk/amber-scan-simple/internal/notify"
	"github.com/o6elisk/amber-scan-simple/internal/store"
	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

const (
	defaultCooldown    = time.Hour
	defaultConcurrency = 4
)

// Engine orchestrates price evaluation and alert dispatch.
type Engine struct {
	store    store.Store
	amber    amber.Client
	notifier notify.Notifier
	log      *slog.Logger

	cooldown    time.Duration
	concurrency int
	nowFunc     func() time.Time

	// Serializes cycles; an overlapping trigger is skipped, not queued.
	runMu sync.Mutex
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	c amber.Client,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		amber:       c,
		notifier:    n,
		log:         slog.Default(),
		cooldown:    defaultCooldown,
		concurrency: defaultConcurrency,
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithCooldown sets the minimum time between two alerts of the same
// kind for the same user.
func WithCooldown(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.cooldown = d
	}
}

// WithConcurrency sets how many users are evaluated in parallel.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithNowFunc overrides the clock, for tests.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// RunCycle evaluates every subscribed user once. Per-user failures are
// logged and counted but never abort the cycle for remaining users. If
// a previous cycle is still running the trigger is skipped.
func (eng *Engine) RunCycle(ctx context.Context) error {
	if !eng.runMu.TryLock() {
		eng.log.Warn("previous cycle still running, skipping trigger")
		metrics.CycleSkipsTotal.Inc()
		return nil
	}
	defer eng.runMu.Unlock()

	start := time.Now()
	defer func() {
		metrics.CycleDuration.Observe(time.Since(start).Seconds())
	}()

	profiles, err := eng.store.ListSubscribed(ctx)
	if err != nil {
		return fmt.Errorf("listing subscribed profiles: %w", err)
	}

	eng.log.Info("evaluation cycle starting", "users", len(profiles))

	g := new(errgroup.Group)
	g.SetLimit(eng.concurrency)

	for i := range profiles {
		p := &profiles[i]
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			metrics.UsersCheckedTotal.Inc()
			if checkErr := eng.checkUser(ctx, p); checkErr != nil {
				eng.log.Error("user evaluation failed",
					"email", p.Email,
					"error", checkErr,
				)
				metrics.UserErrorsTotal.Inc()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func (eng *Engine) checkUser(ctx context.Context, p *domain.UserProfile) error {
	now := eng.nowFunc()

	if p.QuietHoursEnabled && IsQuiet(now, p.Location(), p.QuietHours) {
		eng.log.Debug("inside quiet hours, skipping", "email", p.Email)
		metrics.QuietHoursSkipsTotal.Inc()
		return nil
	}

	siteID := p.SiteID
	if siteID == "" {
		resolved, err := eng.resolveSiteID(ctx, p)
		if err != nil {
			return fmt.Errorf("resolving site: %w", err)
		}
		siteID = resolved
	}

	readings, err := eng.amber.CurrentPrices(ctx, p.APIToken, siteID)
	if err != nil {
		return fmt.Errorf("fetching current prices: %w", err)
	}

	reading, err := amber.ToPriceReading(readings)
	if err != nil {
		return fmt.Errorf("normalizing prices: %w", err)
	}

	events := Evaluate(p, reading, eng.cooldown, now)
	for _, ev := range events {
		eng.dispatch(ctx, p, ev)
	}

	return nil
}

// resolveSiteID looks up the account's first site and caches it on the
// profile. A cache write failure is logged, not fatal; the resolved ID
// is still used for this cycle.
func (eng *Engine) resolveSiteID(ctx context.Context, p *domain.UserProfile) (string, error) {
	sites, err := eng.amber.Sites(ctx, p.APIToken)
	if err != nil {
		return "", err
	}
	if len(sites) == 0 {
		return "", amber.ErrNoSites
	}

	siteID := sites[0].ID
	if err := eng.store.SetSiteID(ctx, p.APIToken, siteID); err != nil {
		eng.log.Warn("caching site id failed", "email", p.Email, "error", err)
	}

	eng.log.Info("resolved site id", "email", p.Email, "site_id", siteID)
	return siteID, nil
}

// dispatch sends one alert and records the send time. The cooldown
// starts only on a successful send; a failed send stays eligible for
// retry next cycle.
func (eng *Engine) dispatch(ctx context.Context, p *domain.UserProfile, ev domain.AlertEvent) {
	payload := notify.AlertPayload{
		Kind:         ev.Kind,
		Email:        p.Email,
		CurrentValue: ev.CurrentValue,
		Threshold:    ev.Threshold,
	}

	if err := eng.notifier.SendAlert(ctx, payload); err != nil {
		eng.log.Error("alert send failed",
			"email", p.Email,
			"kind", ev.Kind,
			"error", err,
		)
		metrics.NotificationFailuresTotal.Inc()
		return
	}

	metrics.AlertsFiredTotal.WithLabelValues(string(ev.Kind)).Inc()
	eng.log.Info("alert sent",
		"email", p.Email,
		"kind", ev.Kind,
		"current", ev.CurrentValue,
		"threshold", ev.Threshold,
	)

	if err := eng.store.UpdateLastAlert(ctx, p.APIToken, ev.Kind, eng.nowFunc()); err != nil {
		eng.log.Error("recording last alert failed",
			"email", p.Email,
			"kind", ev.Kind,
			"error", err,
		)
	}
}
