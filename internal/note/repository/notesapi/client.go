package notesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the remote notes REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new notes API client. A nil limiter disables
// outbound throttling.
func NewClient(baseURL string, timeout time.Duration, limiter *rate.Limiter) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("notes API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// ListNotes fetches one page via GET /notes?skip=&limit=.
func (c *Client) ListNotes(ctx context.Context, skip, limit int) ([]Note, error) {
	q := url.Values{}
	q.Set("skip", fmt.Sprint(skip))
	q.Set("limit", fmt.Sprint(limit))

	var notes []Note
	if err := c.do(ctx, "list", http.MethodGet, "/notes?"+q.Encode(), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// ListRecent fetches the most recent notes via GET /notes/recent?limit=.
func (c *Client) ListRecent(ctx context.Context, limit int) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, "recent", http.MethodGet, fmt.Sprintf("/notes/recent?limit=%d", limit), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote fetches a single note by its ID.
func (c *Client) GetNote(ctx context.Context, id int64) (*Note, error) {
	var n Note
	if err := c.do(ctx, "get", http.MethodGet, fmt.Sprintf("/notes/%d", id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// SearchNotes runs a server-side search over titles and contents.
func (c *Client) SearchNotes(ctx context.Context, query string) ([]Note, error) {
	var notes []Note
	path := "/notes/search/?query=" + url.QueryEscape(query)
	if err := c.do(ctx, "search", http.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote creates a note via POST /notes/.
func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	var n Note
	if err := c.do(ctx, "create", http.MethodPost, "/notes/", req, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateNote replaces a note via PUT /notes/{id}.
func (c *Client) UpdateNote(ctx context.Context, id int64, req UpdateNoteRequest) (*Note, error) {
	var n Note
	if err := c.do(ctx, "update", http.MethodPut, fmt.Sprintf("/notes/%d", id), req, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// DeleteNote removes a note via DELETE /notes/{id}. The response body is ignored.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("notes API %s: rate limiter: %w", op, err)
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notes %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode notes %s response: %w", op, err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// Note is the notes API note object.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNoteRequest is the body for POST /notes/.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the body for PUT /notes/{id}.
type UpdateNoteRequest struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
