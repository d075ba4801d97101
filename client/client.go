// Package client is the presentation-side collaborator for the report feed:
// an HTTP client plus a local cache that is reconciled from aggregation
// snapshots on a fixed interval and optimistically patched when a mutation
// succeeds.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/techwatch/communitywatch/models"
)

type Client struct {
	BaseURL  string
	ViewerID string
	HTTP     *http.Client
}

func New(baseURL, viewerID string) *Client {
	return &Client{
		BaseURL:  baseURL,
		ViewerID: viewerID,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  string          `json:"errors"`
	Status  string          `json:"status"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ViewerID != "" {
		req.Header.Set("X-Viewer-ID", c.ViewerID)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed: %s (%s)", env.Errors, resp.Status)
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// GetReports fetches the aggregation snapshot for this viewer.
func (c *Client) GetReports(ctx context.Context) ([]models.ReportView, error) {
	var data struct {
		Reports []models.ReportView `json:"reports"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/reports", nil, &data); err != nil {
		return nil, err
	}
	return data.Reports, nil
}

// ToggleLike flips this viewer's like on the report and returns the like
// state after the call.
func (c *Client) ToggleLike(ctx context.Context, reportID string) (bool, error) {
	var data struct {
		Liked bool `json:"liked"`
	}
	path := fmt.Sprintf("/api/v1/reports/%s/like", reportID)
	if err := c.do(ctx, http.MethodPut, path, nil, &data); err != nil {
		return false, err
	}
	return data.Liked, nil
}

// AddComment appends a comment to the report as this viewer.
func (c *Client) AddComment(ctx context.Context, reportID, content string) (*models.Comment, error) {
	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	path := fmt.Sprintf("/api/v1/reports/%s/comments", reportID)
	if err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetReportComments fetches a report's comments oldest first.
func (c *Client) GetReportComments(ctx context.Context, reportID string) ([]models.Comment, error) {
	var comments []models.Comment
	path := fmt.Sprintf("/api/v1/reports/%s/comments", reportID)
	if err := c.do(ctx, http.MethodGet, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetUserLikes fetches the report ids this viewer has liked.
func (c *Client) GetUserLikes(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.do(ctx, http.MethodGet, "/api/v1/likes", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
