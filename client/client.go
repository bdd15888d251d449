// Package client is the typed gateway to the permit service REST API. It is
// the sole boundary the admin console and the public form talk through:
// every call returns either decoded data, an *APIError carrying the server's
// own message, or a connectivity error wrapping ErrConnectivity.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrConnectivity marks transport-level failures: the server was never
// reached or answered garbage. Distinguishable from an application-level
// rejection, which surfaces as *APIError.
var ErrConnectivity = errors.New("could not reach server")

// APIError is an authoritative rejection from the backend
// (success:false). Message is meant for display to the operator.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected with status %d", e.StatusCode)
}

// envelope is the uniform response shape of every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client issues HTTP calls against the permit service. Authenticated calls
// attach the bearer token held by the Session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	session    *Session
}

// New builds a gateway rooted at baseURL, e.g.
// "http://localhost:8080/api/v1". The session may start empty; Login fills
// it.
func New(baseURL string, session *Session) *Client {
	if session == nil {
		session = NewSession()
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
}

// Session returns the session object this client attaches tokens from.
func (c *Client) Session() *Session {
	return c.session
}

// do performs one request/response cycle and decodes the envelope. The
// returned message is the envelope's display message on success.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, authed bool, out interface{}) (string, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return "", err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("%w: invalid response: %v", ErrConnectivity, err)
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = env.Error
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("%w: malformed payload: %v", ErrConnectivity, err)
		}
	}

	return env.Message, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, authed bool, out interface{}) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, "", authed, out)
	return err
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload interface{}, authed bool, out interface{}) (string, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return "", err
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, nil, body, "application/json", authed, out)
}

// DownloadURL builds the named-download link for a stored attachment.
func (c *Client) DownloadURL(storedName, originalName string) string {
	base := strings.TrimSuffix(c.BaseURL, "/api/v1")
	return fmt.Sprintf("%s/download/%s?name=%s", base, url.PathEscape(storedName), url.QueryEscape(originalName))
}
