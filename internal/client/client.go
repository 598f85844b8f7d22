package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/models"
)

// Client talks to the task store over its HTTP contract. Every call takes a
// context and is additionally bounded by the configured timeout, so a hung
// server surfaces as an error instead of a view stuck in loading.
type Client struct {
	baseURL string
	http    *http.Client
}

// APIError is a structured failure returned by the server, as opposed to a
// transport failure (connection refused, timeout), which comes back as a
// plain wrapped error.
type APIError struct {
	StatusCode int
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// TaskDraft is the client-side form state for a create or update.
type TaskDraft struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	DueDate     models.Date   `json:"due_date"`
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tasks", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var tasks []models.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, draft TaskDraft) (*models.Task, error) {
	return c.write(ctx, http.MethodPost, draft, 0)
}

func (c *Client) UpdateTask(ctx context.Context, id int64, draft TaskDraft) (*models.Task, error) {
	return c.write(ctx, http.MethodPut, draft, id)
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	url := c.baseURL + "/api/tasks?id=" + strconv.FormatInt(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

// writeResponse is the envelope the server wraps write acknowledgments in.
type writeResponse struct {
	Message string      `json:"message"`
	Task    models.Task `json:"task"`
}

func (c *Client) write(ctx context.Context, method string, draft TaskDraft, id int64) (*models.Task, error) {
	var body any = draft
	if method == http.MethodPut {
		body = struct {
			ID int64 `json:"id"`
			TaskDraft
		}{ID: id, TaskDraft: draft}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/tasks", bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var ack writeResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &ack.Task, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "UNKNOWN"
		apiErr.Message = resp.Status
	}
	return apiErr
}
