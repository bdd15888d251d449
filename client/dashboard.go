package client

import "context"

// Statistics fetches the recomputed dashboard counters.
func (c *Client) Statistics(ctx context.Context) (*StatistikData, error) {
	var data StatistikData
	if err := c.getJSON(ctx, "/admin/dashboard/statistik", nil, true, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// RecentRequests returns the newest submissions for the dashboard.
func (c *Client) RecentRequests(ctx context.Context) ([]PermohonanData, error) {
	var data []PermohonanData
	if err := c.getJSON(ctx, "/admin/dashboard/recent", nil, true, &data); err != nil {
		return nil, err
	}
	return data, nil
}
