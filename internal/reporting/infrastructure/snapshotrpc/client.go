package snapshotrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	fees "campus-cloud/internal/fees/domain"
)

// Client calls the remote monthly-snapshot service.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient constructs a snapshot RPC client.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("snapshotrpc: empty base url")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type computeRequest struct {
	SchoolID   string `json:"school_id"`
	MonthStart string `json:"month_start"`
}

type computeResponse struct {
	Success            bool    `json:"success"`
	CollectedThisMonth float64 `json:"collected_this_month"`
	StillOutstanding   float64 `json:"still_outstanding"`
	DueThisMonth       float64 `json:"due_this_month"`
	Error              string  `json:"error"`
}

// ComputeMonthlySnapshot runs the remote pre-aggregation for a school
// and month. Any transport or remote failure is an error the caller
// degrades on; this client never invents figures.
func (c *Client) ComputeMonthlySnapshot(ctx context.Context, schoolID string, monthStart time.Time) (*fees.MonthlySnapshot, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("snapshotrpc: nil client")
	}
	if schoolID == "" {
		return nil, errors.New("snapshotrpc: empty school id")
	}
	if monthStart.IsZero() {
		return nil, errors.New("snapshotrpc: invalid month start")
	}

	payload, err := json.Marshal(computeRequest{
		SchoolID:   schoolID,
		MonthStart: monthStart.UTC().Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/snapshots/monthly/compute", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshotrpc: status %d", resp.StatusCode)
	}

	var decoded computeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("snapshotrpc: decode response: %w", err)
	}
	if !decoded.Success {
		if decoded.Error == "" {
			decoded.Error = "remote compute failed"
		}
		return nil, fmt.Errorf("snapshotrpc: %s", decoded.Error)
	}

	return &fees.MonthlySnapshot{
		SchoolID:           schoolID,
		MonthStart:         monthStart.UTC(),
		CollectedThisMonth: decoded.CollectedThisMonth,
		StillOutstanding:   decoded.StillOutstanding,
		DueThisMonth:       decoded.DueThisMonth,
	}, nil
}
