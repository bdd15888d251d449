package client

import (
	"context"
	"net/http"
	"net/url"
)

type PermitTypeInput struct {
	Nama        string   `json:"nama"`
	Deskripsi   string   `json:"deskripsi"`
	Persyaratan []string `json:"persyaratan"`
	Aktif       bool     `json:"aktif"`
}

type PermitTypeUpdate struct {
	Nama        string   `json:"nama,omitempty"`
	Deskripsi   string   `json:"deskripsi,omitempty"`
	Persyaratan []string `json:"persyaratan,omitempty"`
	Aktif       *bool    `json:"aktif,omitempty"`
}

// ListPermitTypes fetches the catalog. The public form passes
// activeOnly=true and needs no session.
func (c *Client) ListPermitTypes(ctx context.Context, activeOnly bool) ([]JenisPerizinanData, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("aktif_only", "true")
	}

	var data []JenisPerizinanData
	if err := c.getJSON(ctx, "/jenis-perizinan", query, false, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) GetPermitType(ctx context.Context, id string) (*JenisPerizinanData, error) {
	var data JenisPerizinanData
	if err := c.getJSON(ctx, "/jenis-perizinan/"+url.PathEscape(id), nil, false, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) CreatePermitType(ctx context.Context, input PermitTypeInput) (*JenisPerizinanData, error) {
	var data JenisPerizinanData
	_, err := c.sendJSON(ctx, http.MethodPost, "/admin/jenis-perizinan", input, true, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) UpdatePermitType(ctx context.Context, id string, input PermitTypeUpdate) (*JenisPerizinanData, error) {
	var data JenisPerizinanData
	_, err := c.sendJSON(ctx, http.MethodPut, "/admin/jenis-perizinan/"+url.PathEscape(id), input, true, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) DeletePermitType(ctx context.Context, id string) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, "/admin/jenis-perizinan/"+url.PathEscape(id), nil, true, nil)
	return err
}
