package client

import (
	"context"
	"net/url"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// CurrentPrice fetches the current normalized price for an API token.
func (c *Client) CurrentPrice(ctx context.Context, apiToken string) (*domain.PriceReading, error) {
	var r domain.PriceReading
	if err := c.get(ctx, "/api/v1/current-price?token="+url.QueryEscape(apiToken), &r); err != nil {
		return nil, err
	}
	return &r, nil
}
