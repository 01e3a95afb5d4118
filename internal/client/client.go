// Package client is the HTTP client for the share2solve API, used by the
// submission and admin CLIs. Admin operations take the credential as an
// explicit argument on every call; the client never caches it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/share2solve/backend/internal/model"
)

// Client talks to a share2solve API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL (e.g. "http://localhost:8080/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// ListFilters are the query parameters of the list endpoint.
type ListFilters struct {
	Search string
	Status string
	SortBy string
	Limit  int
}

// do sends one JSON request and decodes the response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Problems fetches the problem list with the given filters.
func (c *Client) Problems(ctx context.Context, f ListFilters) ([]*model.Problem, error) {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.SortBy != "" {
		params.Set("sortBy", f.SortBy)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}

	path := "/problems"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	var problems []*model.Problem
	if err := c.do(ctx, http.MethodGet, path, nil, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

// Submit creates a new problem. A zero timestamp lets the server assign one.
func (c *Client) Submit(ctx context.Context, email, problem string, timestamp time.Time) (*model.Problem, error) {
	body := map[string]any{
		"email":   email,
		"problem": problem,
	}
	if !timestamp.IsZero() {
		body["timestamp"] = timestamp.UTC().Format(time.RFC3339)
	}

	var created model.Problem
	if err := c.do(ctx, http.MethodPost, "/problems", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// VerifyAdmin checks the credential against the login endpoint.
func (c *Client) VerifyAdmin(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/admin/login", map[string]string{"password": password}, nil)
}

// UpdateStatus sets a problem's status using the given credential.
func (c *Client) UpdateStatus(ctx context.Context, id, status, adminPassword string) (*model.Problem, error) {
	body := map[string]string{"status": status, "adminPassword": adminPassword}

	var updated model.Problem
	if err := c.do(ctx, http.MethodPatch, "/problems/"+url.PathEscape(id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a problem and returns its prior content for undo.
func (c *Client) Delete(ctx context.Context, id, adminPassword string) (*model.Problem, error) {
	body := map[string]string{"adminPassword": adminPassword}

	var resp struct {
		Message string         `json:"message"`
		Problem *model.Problem `json:"problem"`
	}
	if err := c.do(ctx, http.MethodDelete, "/problems/"+url.PathEscape(id), body, &resp); err != nil {
		return nil, err
	}
	return resp.Problem, nil
}
