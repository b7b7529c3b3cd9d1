package api

import (
	"context"
	"net/http"
)

// Stats returns the admin dashboard's aggregate counts (admin only).
func (c *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// PatreonCampaign returns the tiered-campaign read model. The backend serves
// a null campaign when no Patreon account is wired up.
func (c *Client) PatreonCampaign(ctx context.Context) (*CampaignData, error) {
	var data CampaignData
	if err := c.do(ctx, http.MethodGet, "/api/v1/patreon/campaign", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
