// Package karaoke drives the external video-to-karaoke processor: it
// submits creation jobs, polls them until a terminal status and reconciles
// completed results into the song library.
package karaoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mexemexe02/joia-karaoke/models"
)

// RejectionError means the processor answered the create request with a
// non-success status. No job exists in this case.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("karaoke processor rejected the request: status %d, body: %s", e.StatusCode, e.Body)
}

// Client talks to the processor's REST API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the processor at baseURL. A trailing
// slash on the configured URL is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Submit posts a creation request and returns the initial job snapshot,
// normally in the pending status.
func (c *Client) Submit(ctx context.Context, request models.CreateKaraokeRequest) (*models.JobSnapshot, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encoding create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/create-karaoke", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &RejectionError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var snapshot models.JobSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decoding create response: %w", err)
	}

	return &snapshot, nil
}

// Status fetches the current snapshot for an existing job.
func (c *Client) Status(ctx context.Context, jobID string) (*models.JobSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/job/"+jobID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("job status request failed: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var snapshot models.JobSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decoding status response: %w", err)
	}

	return &snapshot, nil
}
