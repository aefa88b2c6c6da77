package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiBase = "/api/v3"

// restClient is the HTTP plumbing shared by both services. Authentication
// uses the X-Api-Key header as the v3 API expects.
type restClient struct {
	baseURL    string
	apiKey     string
	backend    string // catalog name, used in error messages
	httpClient *http.Client
}

// Option configures a service client.
type Option func(*restClient)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *restClient) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *restClient) {
		c.httpClient.Timeout = d
	}
}

func newRestClient(baseURL, apiKey, backend string, opts ...Option) *restClient {
	c := &restClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		backend: backend,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *restClient) get(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *restClient) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

func (c *restClient) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiBase+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnavailableError{Backend: c.backend, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UnavailableError{
			Backend: c.backend,
			Status:  resp.StatusCode,
			Message: backendMessage(resp.Body),
		}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &UnavailableError{Backend: c.backend, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// backendMessage extracts a human-readable error from a failed response.
// The v3 API returns either {"message": "..."} or a validation array of
// {"errorMessage": "..."} objects.
func backendMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return ""
	}

	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &obj) == nil && obj.Message != "" {
		return obj.Message
	}

	var list []struct {
		ErrorMessage string `json:"errorMessage"`
	}
	if json.Unmarshal(body, &list) == nil && len(list) > 0 && list[0].ErrorMessage != "" {
		return list[0].ErrorMessage
	}
	return ""
}

// queuePayload is the wire shape of the paginated queue endpoint. Records
// carry movieId or seriesId depending on the backend.
type queuePayload struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	Records      []struct {
		MovieID  int64   `json:"movieId"`
		SeriesID int64   `json:"seriesId"`
		Title    string  `json:"title"`
		Status   string  `json:"status"`
		Size     float64 `json:"size"`
		SizeLeft float64 `json:"sizeleft"`
		TimeLeft string  `json:"timeleft"`
	} `json:"records"`
}

func (c *restClient) queuePage(ctx context.Context, page, pageSize int, catalog Catalog) (*QueuePage, error) {
	var payload queuePayload
	path := fmt.Sprintf("/queue?page=%d&pageSize=%d", page, pageSize)
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	result := &QueuePage{
		Page:         payload.Page,
		PageSize:     payload.PageSize,
		TotalRecords: payload.TotalRecords,
		Records:      make([]QueueEntry, 0, len(payload.Records)),
	}
	for _, rec := range payload.Records {
		mediaID := rec.MovieID
		if catalog == CatalogSeries {
			mediaID = rec.SeriesID
		}
		result.Records = append(result.Records, QueueEntry{
			MediaID:  mediaID,
			Title:    rec.Title,
			Status:   rec.Status,
			Size:     rec.Size,
			SizeLeft: rec.SizeLeft,
			TimeLeft: rec.TimeLeft,
		})
	}
	return result, nil
}
