package recsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ramblinrecs/internal/models"
)

// Client talks to the Ramblin Recs recommendation backend. Every call is a
// single attempt against the configured base URL; non-2xx responses surface
// as *StatusError and the caller decides how to present them.
type Client struct {
	baseURL string
	http    *http.Client
}

type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

func New(baseURL string, timeout time.Duration) *Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout, Transport: tr},
	}
}

func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) DeleteJSON(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	const op = "recsapi.do"

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	return nil
}

func (c *Client) Bootstrap(ctx context.Context, email, displayName string, interests []string) (*models.User, error) {
	const op = "recsapi.Bootstrap"

	body := map[string]any{
		"email":        email,
		"display_name": displayName,
		"interests":    interests,
	}

	var user models.User
	if err := c.PostJSON(ctx, "/users/bootstrap", body, &user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "recsapi.GetUser"

	var user models.User
	if err := c.GetJSON(ctx, "/users/"+id, nil, &user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

// Feed fetches a page of recommended events. The backend has shipped two
// response shapes for this endpoint, an {events, pagination} envelope and a
// bare event array; both decode into a FeedPage (bare arrays carry no
// pagination).
func (c *Client) Feed(ctx context.Context, userID string, limit, page int) (*models.FeedPage, error) {
	const op = "recsapi.Feed"

	query := url.Values{}
	if userID != "" {
		query.Set("user_id", userID)
	}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))

	var raw json.RawMessage
	if err := c.GetJSON(ctx, "/events/feed", query, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	feed, err := decodeFeed(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return feed, nil
}

func decodeFeed(raw json.RawMessage) (*models.FeedPage, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var events []models.Event
		if err := json.Unmarshal(raw, &events); err != nil {
			return nil, fmt.Errorf("decode bare feed: %w", err)
		}
		return &models.FeedPage{Events: events}, nil
	}

	var feed models.FeedPage
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, fmt.Errorf("decode feed envelope: %w", err)
	}

	return &feed, nil
}

func (c *Client) Search(ctx context.Context, q string, limit int, userID string) ([]models.Event, error) {
	const op = "recsapi.Search"

	query := url.Values{}
	query.Set("q", q)
	query.Set("limit", strconv.Itoa(limit))
	if userID != "" {
		query.Set("user_id", userID)
	}

	var events []models.Event
	if err := c.GetJSON(ctx, "/events/search", query, &events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (c *Client) SendFeedback(ctx context.Context, fb models.Feedback) error {
	const op = "recsapi.SendFeedback"

	if err := c.PostJSON(ctx, "/feedback", fb, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) IngestGatechEvents(ctx context.Context) (*models.IngestResult, error) {
	const op = "recsapi.IngestGatechEvents"

	var result models.IngestResult
	if err := c.PostJSON(ctx, "/ingestion/gatech-events", map[string]any{}, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &result, nil
}

func (c *Client) Metrics(ctx context.Context) (*models.Metrics, error) {
	const op = "recsapi.Metrics"

	var m models.Metrics
	if err := c.GetJSON(ctx, "/admin/metrics", nil, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &m, nil
}
