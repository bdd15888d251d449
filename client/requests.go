package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FileUpload is one file carried in a multipart call.
type FileUpload struct {
	Name    string
	Content io.Reader
}

// SubmissionInput is the public application form. Validated locally before
// any network call is made.
type SubmissionInput struct {
	NamaLengkap      string `validate:"required"`
	NomorTelepon     string `validate:"required"`
	Email            string `validate:"required,email"`
	Alamat           string `validate:"required"`
	JenisPerizinanID string `validate:"required"`
	Catatan          string
	Files            []FileUpload
}

// DecisionInput carries the approve/reject outcome with the reply mail
// body. The body is required; an empty one never reaches the wire.
type DecisionInput struct {
	Status       string `validate:"required,oneof=disetujui ditolak"`
	BalasanEmail string `validate:"required"`
	CatatanAdmin string
	Lampiran     *FileUpload
}

// ListParams filters the admin request list.
type ListParams struct {
	Page    int
	PerPage int
	Status  string
	Search  string
}

func buildMultipart(fields map[string]string, files map[string][]FileUpload) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for field, uploads := range files {
		for _, upload := range uploads {
			part, err := writer.CreateFormFile(field, upload.Name)
			if err != nil {
				return nil, "", err
			}
			if _, err := io.Copy(part, upload.Content); err != nil {
				return nil, "", err
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

// SubmitRequest files a new application through the public endpoint.
func (c *Client) SubmitRequest(ctx context.Context, input SubmissionInput) (*PermohonanData, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("data permohonan tidak lengkap: %w", err)
	}

	body, contentType, err := buildMultipart(map[string]string{
		"nama_lengkap":       input.NamaLengkap,
		"nomor_telepon":      input.NomorTelepon,
		"email":              input.Email,
		"alamat":             input.Alamat,
		"jenis_perizinan_id": input.JenisPerizinanID,
		"catatan":            input.Catatan,
	}, map[string][]FileUpload{"berkas": input.Files})
	if err != nil {
		return nil, err
	}

	var data PermohonanData
	if _, err := c.do(ctx, http.MethodPost, "/permohonan", nil, body, contentType, false, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListRequests pages through the admin request list.
func (c *Client) ListRequests(ctx context.Context, params ListParams) (*PermohonanListData, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var data PermohonanListData
	if err := c.getJSON(ctx, "/admin/permohonan", query, true, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) GetRequest(ctx context.Context, id string) (*PermohonanData, error) {
	var data PermohonanData
	if err := c.getJSON(ctx, "/admin/permohonan/"+url.PathEscape(id), nil, true, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) RequestsByStatus(ctx context.Context, status string) ([]PermohonanData, error) {
	var data []PermohonanData
	if err := c.getJSON(ctx, "/admin/permohonan/status/"+url.PathEscape(status), nil, true, &data); err != nil {
		return nil, err
	}
	return data, nil
}

type advanceRequest struct {
	Status       string `json:"status"`
	CatatanAdmin string `json:"catatan_admin,omitempty"`
}

// AdvanceRequest moves a request into review (status diproses). The backend
// rejects the call if the request is not in status baru.
func (c *Client) AdvanceRequest(ctx context.Context, id string) (string, error) {
	return c.sendJSON(ctx, http.MethodPatch, "/admin/permohonan/"+url.PathEscape(id)+"/status",
		advanceRequest{Status: "diproses"}, true, nil)
}

// SubmitDecision closes a request with the given outcome (multipart: text
// fields plus the optional decision letter).
func (c *Client) SubmitDecision(ctx context.Context, id string, input DecisionInput) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", fmt.Errorf("data balasan tidak lengkap: %w", err)
	}

	files := map[string][]FileUpload{}
	if input.Lampiran != nil {
		files["lampiran"] = []FileUpload{*input.Lampiran}
	}

	body, contentType, err := buildMultipart(map[string]string{
		"balasan_email": input.BalasanEmail,
		"status":        input.Status,
		"catatan_admin": input.CatatanAdmin,
	}, files)
	if err != nil {
		return "", err
	}

	return c.do(ctx, http.MethodPost, "/admin/permohonan/"+url.PathEscape(id)+"/balasan",
		nil, body, contentType, true, nil)
}
