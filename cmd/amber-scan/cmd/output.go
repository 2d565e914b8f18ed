package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProfileDetail(p *domain.UserProfile) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Email:\t%s\n", p.Email)
	tw.writef("Site ID:\t%s\n", orDash(p.SiteID))
	tw.writef("Timezone:\t%s\n", orDash(p.Timezone))
	tw.writef("High price:\t%s\n", formatThreshold(&p.HighPrice, "c/kWh"))
	tw.writef("Low price:\t%s\n", formatThreshold(&p.LowPrice, "c/kWh"))
	tw.writef("Renewables:\t%s\n", formatThreshold(&p.Renewables, "%"))
	tw.writef("Quiet hours:\t%s\n", formatQuietHours(p))
	tw.writef("Email notifications:\t%v\n", p.EmailNotifications)
	return tw.finish()
}

func printPriceDetail(r *domain.PriceReading) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Price:\t%.2f c/kWh\n", r.Price)
	tw.writef("Renewables:\t%.1f%%\n", r.RenewablesPercent)
	tw.writef("Observed:\t%s\n", r.ObservedAt.Format("2006-01-02 15:04:05 MST"))
	return tw.finish()
}

func formatThreshold(tc *domain.ThresholdConfig, unit string) string {
	if tc.Threshold == nil {
		return "not set"
	}
	state := "enabled"
	if !tc.Enabled {
		state = "disabled"
	}
	return fmt.Sprintf("%.1f %s (%s)", *tc.Threshold, unit, state)
}

func formatQuietHours(p *domain.UserProfile) string {
	if !p.QuietHoursEnabled || len(p.QuietHours) == 0 {
		return "off"
	}
	s := ""
	for i, w := range p.QuietHours {
		if i > 0 {
			s += ", "
		}
		s += w.Start + "-" + w.End
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func jsonOutput() bool {
	return outputFormat == "json"
}
