// Package remote talks to the spreadsheet-backed sync endpoint: one GET returning every sheet
// and one POST per mutation kind.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"workload_survey/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Action string

const (
	ActionAddResponse     Action = "addResponse"
	ActionUpdatePersonnel Action = "updatePersonnel"
	ActionUpdateConfig    Action = "updateConfig"
	ActionUpdateWeights   Action = "updateWeights"
)

var ErrNotConfigured = errors.New("remote sync url not configured")

const maxBodyBytes = 32 << 20

type Client struct {
	url  string
	http *http.Client
}

// NewClient returns a client for url. An empty url gives a client whose calls all fail with
// ErrNotConfigured, so the engine runs offline.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{url: url, http: httpClient}
}

func (c *Client) Enabled() bool { return c.url != "" }

type envelope struct {
	Action Action      `json:"action"`
	Data   interface{} `json:"data"`
}

// Fetch retrieves and validates the full remote state. Deadlines come from ctx.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	ctx, span := tracing.Start(ctx, "remote.fetch")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch remote data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch remote data: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read remote data: %w", err)
	}
	snap, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode remote data: %w", err)
	}
	return snap, nil
}

// Push sends one mutation. The endpoint gives no meaningful answer, so only transport
// errors and non-2xx statuses are reported.
func (c *Client) Push(ctx context.Context, action Action, data interface{}) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}
	ctx, span := tracing.Start(ctx, "remote.push", attribute.String("action", string(action)))
	defer span.End()

	payload, err := json.Marshal(envelope{Action: action, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s: %w", action, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("push %s: %w", action, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push %s: unexpected status %d", action, resp.StatusCode)
	}
	return nil
}
