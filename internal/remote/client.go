// Package remote is the JSON HTTP client for the checklist backend. The
// store it talks to is a thin CRUD collaborator; all derived state stays on
// this side of the wire.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
)

// ErrUnavailable marks connection-level failures, as opposed to an error
// response from a reachable server.
var ErrUnavailable = errors.New("backend unavailable")

// APIError is a non-2xx response decoded from the server's JSON error body.
type APIError struct {
	Status  int
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend returned status %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// TaskPatch is the partial merge body for task updates. Nil fields are
// omitted and leave the stored value untouched.
type TaskPatch struct {
	InputValue   *string            `json:"inputValue,omitempty"`
	IsNA         *bool              `json:"isNA,omitempty"`
	BudgetAmount *float64           `json:"budgetAmount,omitempty"`
	VoucherFile  *string            `json:"voucherFile,omitempty"`
	Status       *domain.TaskStatus `json:"status,omitempty"`
}

// Client talks to the trek checklist backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListTreks(ctx context.Context) ([]domain.Trek, error) {
	var out []domain.Trek
	err := c.do(ctx, http.MethodGet, "/treks", nil, &out)
	return out, err
}

func (c *Client) GetTrek(ctx context.Context, id string) (*domain.Trek, error) {
	var out domain.Trek
	if err := c.do(ctx, http.MethodGet, "/treks/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTrek(ctx context.Context, trek domain.Trek) (*domain.Trek, error) {
	var out domain.Trek
	if err := c.do(ctx, http.MethodPost, "/treks", trek, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTrek(ctx context.Context, trek domain.Trek) (*domain.Trek, error) {
	var out domain.Trek
	if err := c.do(ctx, http.MethodPut, "/treks/"+url.PathEscape(trek.ID), trek, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTrek removes a trek; the server cascade-deletes its tasks.
func (c *Client) DeleteTrek(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/treks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context, trekID string) ([]domain.Task, error) {
	var out []domain.Task
	err := c.do(ctx, http.MethodGet, "/treks/"+url.PathEscape(trekID)+"/tasks", nil, &out)
	return out, err
}

// UpdateTask sends a partial merge update; the server overlays only the
// fields the patch carries.
func (c *Client) UpdateTask(ctx context.Context, trekID, taskID string, patch TaskPatch) (*domain.Task, error) {
	var out domain.Task
	path := "/treks/" + url.PathEscape(trekID) + "/tasks/" + url.PathEscape(taskID)
	if err := c.do(ctx, http.MethodPut, path, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpsertTasks writes a batch of complete task records in one call.
func (c *Client) BulkUpsertTasks(ctx context.Context, trekID string, tasks []domain.Task) error {
	return c.do(ctx, http.MethodPost, "/treks/"+url.PathEscape(trekID)+"/tasks/bulk", tasks, nil)
}

// GetStaff fetches the staff directory; the server seeds a default when
// none exists yet.
func (c *Client) GetStaff(ctx context.Context) (*domain.StaffDirectory, error) {
	var out domain.StaffDirectory
	if err := c.do(ctx, http.MethodGet, "/staff", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PutStaff(ctx context.Context, staff domain.StaffDirectory) error {
	return c.do(ctx, http.MethodPut, "/staff", staff, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(respBody, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = string(respBody)
		}
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
