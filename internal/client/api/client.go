// Package api implements the HTTP client for the task store. It translates
// API status codes back into the shared error taxonomy so callers can match
// outcomes with errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/common"
)

// Client talks to the task store over HTTP/JSON. Every call takes a context
// and is additionally bounded by the configured per-request timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type updateRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// List fetches the full task list, newest first.
func (c *Client) List(ctx context.Context) ([]models.Task, error) {
	var list []models.Task
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create adds a task and returns the persisted record.
func (c *Client) Create(ctx context.Context, text string) (*models.Task, error) {
	var task models.Task
	body := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, "/api/todos", body, http.StatusCreated, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update merges the supplied fields into the task with the given id.
func (c *Client) Update(ctx context.Context, id int64, text *string, completed *bool) (*models.Task, error) {
	var task models.Task
	body := updateRequest{Text: text, Completed: completed}
	if err := c.do(ctx, http.MethodPut, "/api/todos/"+strconv.FormatInt(id, 10), body, http.StatusOK, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes the task with the given id. A missing id surfaces as
// common.ErrNotFound.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/todos/"+strconv.FormatInt(id, 10), nil, http.StatusNoContent, nil)
}

// Ping probes server reachability via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, http.StatusOK, nil)
}

// do sends one request and decodes the response into out when the status
// matches wantStatus. Any other status is mapped through apiError.
func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError converts an unexpected response into a sentinel-wrapped error.
func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload)
	msg := payload.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
	}
}
