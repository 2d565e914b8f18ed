package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/o6elisk/amber-scan-simple/internal/config"
	"github.com/o6elisk/amber-scan-simple/internal/engine"
	"github.com/o6elisk/amber-scan-simple/internal/store"
	"github.com/o6elisk/amber-scan-simple/pkg/logger"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single evaluation cycle and exit",
	Long: `Check fetches current prices for every subscribed user, evaluates
their alert thresholds and sends any due notifications, then exits.
Useful for cron-driven deployments and for verifying configuration.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().DurationVar(
		&checkTimeout,
		"timeout",
		5*time.Minute,
		"maximum time for the cycle to complete",
	)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	eng := engine.NewEngine(st, newAmberClient(cfg), newNotifier(cfg, log),
		engine.WithLogger(log),
		engine.WithCooldown(cfg.Alerts.Cooldown),
		engine.WithConcurrency(cfg.Alerts.Concurrency),
	)

	start := time.Now()
	if err := eng.RunCycle(ctx); err != nil {
		return fmt.Errorf("evaluation cycle failed: %w", err)
	}

	log.Info("evaluation cycle complete", "duration", time.Since(start))
	return nil
}
