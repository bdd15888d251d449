package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates and begins the session with the returned token and
// identity.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginData, error) {
	var data LoginData
	_, err := c.sendJSON(ctx, http.MethodPost, "/auth/login", loginRequest{
		Username: username,
		Password: password,
	}, false, &data)
	if err != nil {
		return nil, err
	}

	c.session.Begin(data.Token, Identity{
		ID:          data.Admin.ID,
		Username:    data.Admin.Username,
		Email:       data.Admin.Email,
		NamaLengkap: data.Admin.NamaLengkap,
		Role:        data.Admin.Role,
	})
	return &data, nil
}

// GetProfile fetches the caller's identity. The console uses it as the
// session-validity probe.
func (c *Client) GetProfile(ctx context.Context) (*AdminData, error) {
	var data AdminData
	if err := c.getJSON(ctx, "/auth/profile", nil, true, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/auth/change-password", changePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}, true, nil)
	return err
}

// Logout tears the session down locally. The backend keeps no server-side
// session state to invalidate.
func (c *Client) Logout() {
	c.session.Clear()
}
