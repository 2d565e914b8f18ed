package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/o6elisk/amber-scan-simple/internal/api/client"
	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

func settingsCmd() *cobra.Command {
	settingsRoot := &cobra.Command{
		Use:   "settings",
		Short: "Manage alert settings on a running server",
		Long: "Manage per-user alert settings through the amber-scan API:\n" +
			"thresholds, quiet hours, timezone, and site resolution.",
	}

	settingsRoot.AddCommand(
		settingsGetCmd(),
		settingsGetByEmailCmd(),
		settingsSetCmd(),
		settingsResolveSiteCmd(),
	)

	return settingsRoot
}

func settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <api-token>",
		Short: "Show settings for an API token",
		Example: `  amber-scan settings get psk_abc123
  amber-scan settings get psk_abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetSettings(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProfileDetail(p)
		},
	}
}

func settingsGetByEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get-by-email <email>",
		Short:   "Show settings for an email address",
		Example: `  amber-scan settings get-by-email user@example.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetSettingsByEmail(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProfileDetail(p)
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		token      string
		email      string
		timezone   string
		highPrice  float64
		lowPrice   float64
		renewables float64
		quietArgs  []string
		quietOn    bool
		emailsOn   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update alert settings",
		Long: "Create or update the alert settings for an Amber API token. Threshold\n" +
			"flags that are omitted leave the corresponding alert disabled. The\n" +
			"server resolves the Amber site ID on save when it can.",
		Example: `  # Alert above 45 c/kWh and when renewables exceed 80%
  amber-scan settings set --token psk_abc123 --email user@example.com \
    --timezone Australia/Sydney --high 45 --renewables 80

  # Add overnight quiet hours
  amber-scan settings set --token psk_abc123 --email user@example.com \
    --high 45 --quiet 22:00-07:00 --quiet-enabled`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token == "" || email == "" {
				return fmt.Errorf("--token and --email are required")
			}
			quiet, err := parseQuietWindows(quietArgs)
			if err != nil {
				return err
			}
			p := &domain.UserProfile{
				APIToken:           token,
				Email:              email,
				Timezone:           timezone,
				QuietHours:         quiet,
				QuietHoursEnabled:  quietOn,
				EmailNotifications: emailsOn,
			}
			if cmd.Flags().Changed("high") {
				p.HighPrice = domain.ThresholdConfig{Threshold: &highPrice, Enabled: true}
			}
			if cmd.Flags().Changed("low") {
				p.LowPrice = domain.ThresholdConfig{Threshold: &lowPrice, Enabled: true}
			}
			if cmd.Flags().Changed("renewables") {
				p.Renewables = domain.ThresholdConfig{Threshold: &renewables, Enabled: true}
			}

			c := newClient()
			saved, err := c.SaveSettings(context.Background(), p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(saved)
			}
			fmt.Printf("Settings saved for %s\n", saved.Email)
			return printProfileDetail(saved)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Amber API token")
	cmd.Flags().StringVar(&email, "email", "", "alert recipient email")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone (e.g. Australia/Sydney)")
	cmd.Flags().Float64Var(&highPrice, "high", 0, "high price threshold in c/kWh")
	cmd.Flags().Float64Var(&lowPrice, "low", 0, "low price threshold in c/kWh")
	cmd.Flags().Float64Var(&renewables, "renewables", 0, "renewables threshold in percent")
	cmd.Flags().StringArrayVar(&quietArgs, "quiet", nil, "quiet window (HH:MM-HH:MM)")
	cmd.Flags().BoolVar(&quietOn, "quiet-enabled", false, "enable quiet hours")
	cmd.Flags().BoolVar(&emailsOn, "email-notifications", true, "enable email notifications")

	return cmd
}

func settingsResolveSiteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve-site <api-token>",
		Short:   "Resolve and cache the Amber site ID for a token",
		Example: `  amber-scan settings resolve-site psk_abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			siteID, err := c.ResolveSiteID(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]string{"site_id": siteID})
			}
			fmt.Println(siteID)
			return nil
		},
	}
}

func parseQuietWindows(args []string) ([]domain.QuietWindow, error) {
	windows := make([]domain.QuietWindow, 0, len(args))
	for _, a := range args {
		start, end, ok := strings.Cut(a, "-")
		if !ok {
			return nil, fmt.Errorf("invalid quiet window %q, want HH:MM-HH:MM", a)
		}
		windows = append(windows, domain.QuietWindow{Start: start, End: end})
	}
	return windows, nil
}

func newClient() *apiclient.Client {
	return apiclient.New(apiURL)
}
