package client

import (
	"context"
	"net/http"
	"net/url"
)

type AdminInput struct {
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Email       string `json:"email"`
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role"`
}

type AdminUpdate struct {
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	NamaLengkap string `json:"nama_lengkap,omitempty"`
	Role        string `json:"role,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (c *Client) ListAdmins(ctx context.Context) ([]AdminData, error) {
	var data []AdminData
	if err := c.getJSON(ctx, "/admin/admins", nil, true, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) GetAdmin(ctx context.Context, id string) (*AdminData, error) {
	var data AdminData
	if err := c.getJSON(ctx, "/admin/admins/"+url.PathEscape(id), nil, true, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) CreateAdmin(ctx context.Context, input AdminInput) (*AdminData, error) {
	var data AdminData
	_, err := c.sendJSON(ctx, http.MethodPost, "/admin/admins", input, true, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) UpdateAdmin(ctx context.Context, id string, input AdminUpdate) (*AdminData, error) {
	var data AdminData
	_, err := c.sendJSON(ctx, http.MethodPut, "/admin/admins/"+url.PathEscape(id), input, true, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, "/admin/admins/"+url.PathEscape(id), nil, true, nil)
	return err
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (c *Client) ResetAdminPassword(ctx context.Context, id, newPassword string) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/admin/admins/"+url.PathEscape(id)+"/reset-password",
		resetPasswordRequest{NewPassword: newPassword}, true, nil)
	return err
}
