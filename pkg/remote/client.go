package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Sentinel errors for common HTTP error classes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Client talks to the remote row store's REST surface. The table is
// `habits`; rows are scoped per user and access is enforced server-side
// by the bearer token.
type Client struct {
	BaseURL string
	AnonKey string
	HTTP    *http.Client
}

// NewClient creates a client for the row store at baseURL.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		AnonKey: anonKey,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Row is the remote projection of one habit. Completion history and the
// creation time travel in the data document; sort_order encodes list
// position at save time.
type Row struct {
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	Color       string  `json:"color"`
	SortOrder   int     `json:"sort_order"`
	Data        RowData `json:"data"`
}

// RowData is the JSON document column.
type RowData struct {
	CompletedDates []string `json:"completedDates"`
	CreatedAt      string   `json:"createdAt"`
}

// SelectHabits fetches all rows visible to the token, ordered by
// sort_order ascending.
func (c *Client) SelectHabits(ctx context.Context, token string) ([]Row, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "sort_order.asc")

	var rows []Row
	if err := c.do(ctx, http.MethodGet, "/rest/v1/habits?"+params.Encode(), token, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteHabits removes every row owned by userID.
func (c *Client) DeleteHabits(ctx context.Context, token, userID string) error {
	params := url.Values{}
	params.Set("user_id", "eq."+userID)
	return c.do(ctx, http.MethodDelete, "/rest/v1/habits?"+params.Encode(), token, nil, nil)
}

// InsertHabits bulk-inserts rows.
func (c *Client) InsertHabits(ctx context.Context, token string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	return c.do(ctx, http.MethodPost, "/rest/v1/habits", token, rows, nil)
}

// apiError is the standard error body from the row store.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func (c *Client) do(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}
	if c.AnonKey != "" {
		req.Header.Set("apikey", c.AnonKey)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && (apiErr.Code != "" || apiErr.Message != "") {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
			case http.StatusForbidden:
				return fmt.Errorf("%w: %s", ErrForbidden, apiErr.Message)
			case http.StatusNotFound:
				return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
			default:
				return &apiErr
			}
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
