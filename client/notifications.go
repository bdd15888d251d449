package client

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) ([]NotifikasiData, error) {
	query := url.Values{}
	if unreadOnly {
		query.Set("unread_only", "true")
	}

	var data []NotifikasiData
	if err := c.getJSON(ctx, "/admin/notifikasi", query, true, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) CountUnreadNotifications(ctx context.Context) (int64, error) {
	var data struct {
		Count int64 `json:"count"`
	}
	if err := c.getJSON(ctx, "/admin/notifikasi/count", nil, true, &data); err != nil {
		return 0, err
	}
	return data.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := c.sendJSON(ctx, http.MethodPatch, "/admin/notifikasi/"+url.PathEscape(id)+"/read", nil, true, nil)
	return err
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := c.sendJSON(ctx, http.MethodPatch, "/admin/notifikasi/read-all", nil, true, nil)
	return err
}
