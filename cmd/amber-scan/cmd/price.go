package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price <api-token>",
		Short: "Show the current price for an API token",
		Example: `  amber-scan price psk_abc123
  amber-scan price psk_abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			r, err := c.CurrentPrice(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(r)
			}
			return printPriceDetail(r)
		},
	}
}
