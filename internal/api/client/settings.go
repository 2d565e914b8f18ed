package client

import (
	"context"
	"net/url"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// GetSettings fetches the alert profile for an API token.
func (c *Client) GetSettings(ctx context.Context, apiToken string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := c.get(ctx, "/api/v1/settings/"+url.PathEscape(apiToken), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetSettingsByEmail fetches the alert profile for an email address.
func (c *Client) GetSettingsByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := c.get(ctx, "/api/v1/settings/by-email/"+url.PathEscape(email), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveSettings creates or updates an alert profile and returns the
// stored version, including any server-resolved site ID.
func (c *Client) SaveSettings(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	var saved domain.UserProfile
	if err := c.post(ctx, "/api/v1/settings", p, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ResolveSiteID resolves and caches the site ID for an API token.
func (c *Client) ResolveSiteID(ctx context.Context, apiToken string) (string, error) {
	var resp struct {
		SiteID string `json:"site_id"`
	}
	if err := c.get(ctx, "/api/v1/site-id?token="+url.QueryEscape(apiToken), &resp); err != nil {
		return "", err
	}
	return resp.SiteID, nil
}
