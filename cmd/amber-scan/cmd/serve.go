package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/o6elisk/amber-scan-simple/internal/amber"
	"github.com/o6elisk/amber-scan-simple/internal/api/handlers"
	"github.com/o6elisk/amber-scan-simple/internal/api/middleware"
	"github.com/o6elisk/amber-scan-simple/internal/config"
	"github.com/o6elisk/amber-scan-simple/internal/engine"
	"github.com/o6elisk/amber-scan-simple/internal/notify"
	"github.com/o6elisk/amber-scan-simple/internal/store"
	"github.com/o6elisk/amber-scan-simple/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and evaluation scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	amberClient := newAmberClient(cfg)
	notifier := newNotifier(cfg, log)

	eng := engine.NewEngine(st, amberClient, notifier,
		engine.WithLogger(log),
		engine.WithCooldown(cfg.Alerts.Cooldown),
		engine.WithConcurrency(cfg.Alerts.Concurrency),
	)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.CycleInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newRouter(cfg, log, st, amberClient)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"cycle_interval", cfg.Schedule.CycleInterval,
		"cooldown", cfg.Alerts.Cooldown,
	)

	sched.Start()

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	// Let any in-flight evaluation cycle finish before closing the store.
	<-sched.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newAmberClient(cfg *config.Config) *amber.APIClient {
	limiter := amber.NewRateLimiter(
		cfg.Amber.RateLimit.PerSecond,
		cfg.Amber.RateLimit.Burst,
		cfg.Amber.RateLimit.DailyLimit,
	)

	return amber.NewAPIClient(
		amber.WithBaseURL(cfg.Amber.BaseURL),
		amber.WithAPIHTTPClient(&http.Client{Timeout: cfg.Amber.Timeout}),
		amber.WithAPIRateLimiter(limiter),
	)
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Loops.Enabled {
		return notify.NewLoopsNotifier(
			cfg.Notifications.Loops.APIKey,
			cfg.Notifications.Loops.TemplateID,
		)
	}
	log.Warn("loops notifications disabled, alerts will be logged and discarded")
	return notify.NewNoOpNotifier(log)
}

func newRouter(
	cfg *config.Config,
	log *slog.Logger,
	st store.Store,
	amberClient amber.Client,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	settings := handlers.NewSettingsHandler(st, amberClient, log)
	price := handlers.NewPriceHandler(st, amberClient, log)

	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.GET("/settings/:token", settings.Get)
	v1.GET("/settings/by-email/:email", settings.GetByEmail)
	v1.POST("/settings", settings.Upsert)
	v1.GET("/site-id", settings.SiteID)
	v1.GET("/current-price", price.Current)

	return e
}
