package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"caltui/pkg/utils"
)

// DefaultBaseURL is the event API endpoint used when none is configured.
const DefaultBaseURL = "http://localhost:3000"

// RequestError reports a non-2xx response from the event API.
type RequestError struct {
	Op     string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("event api: %s: unexpected status %d", e.Op, e.Status)
}

// Client performs event CRUD against the remote event API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a client for the given base URL. A zero timeout
// disables the request deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// List fetches every event held by the remote API.
func (c *Client) List(ctx context.Context) ([]Event, error) {
	body, err := c.do(ctx, "list", http.MethodGet, "/event", nil)
	if err != nil {
		return nil, err
	}

	var records []eventRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("event api: list: decoding response: %w", err)
	}

	events := make([]Event, 0, len(records))
	for _, r := range records {
		ev, err := r.toEvent()
		if err != nil {
			return nil, fmt.Errorf("event api: list: parsing event %q: %w", r.ID, err)
		}
		events = append(events, ev)
	}

	utils.Log("Listed %d events from API", len(events))
	return events, nil
}

// Create persists a new event and returns the record with its assigned id.
func (c *Client) Create(ctx context.Context, draft Draft) (Event, error) {
	return c.send(ctx, "create", http.MethodPost, "/event/create", draft)
}

// Update replaces the event identified by id with the draft's fields.
func (c *Client) Update(ctx context.Context, id string, draft Draft) (Event, error) {
	return c.send(ctx, "update", http.MethodPatch, "/event/update/"+id, draft)
}

// Remove deletes the event identified by id.
func (c *Client) Remove(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, "/event/delete/"+id, nil)
	if err == nil {
		utils.Log("Deleted event: %s", id)
	}
	return err
}

func (c *Client) send(ctx context.Context, op, method, path string, draft Draft) (Event, error) {
	payload, err := json.Marshal(payloadFromDraft(draft))
	if err != nil {
		return Event{}, fmt.Errorf("event api: %s: encoding draft: %w", op, err)
	}

	body, err := c.do(ctx, op, method, path, payload)
	if err != nil {
		return Event{}, err
	}

	var record eventRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return Event{}, fmt.Errorf("event api: %s: decoding response: %w", op, err)
	}

	ev, err := record.toEvent()
	if err != nil {
		return Event{}, fmt.Errorf("event api: %s: parsing event: %w", op, err)
	}

	utils.Log("%s event: %s (%s)", op, ev.Title, ev.ID)
	return ev, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("event api: %s: building request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("event api: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Op: op, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("event api: %s: reading response: %w", op, err)
	}
	return body, nil
}
