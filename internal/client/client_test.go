package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/client"
	"taskboard/internal/models"
)

func TestListTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":2,"title":"newer","description":"","status":"pending","due_date":"2025-06-02","created_at":"2025-05-02T10:00:00Z"},
			{"id":1,"title":"older","description":"d","status":"completed","due_date":"2025-06-01","created_at":"2025-05-01T10:00:00Z"}]`))
	}))
	defer server.Close()

	api := client.New(server.URL, time.Second)
	tasks, err := api.ListTasks(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(2), tasks[0].ID)
	assert.Equal(t, "2025-06-02", tasks[0].DueDate.String())
	assert.Equal(t, models.StatusCompleted, tasks[1].Status)
}

func TestCreateTaskSendsDraftAndDecodesRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Write spec", body["title"])
		assert.Equal(t, "2025-06-01", body["due_date"])
		assert.NotContains(t, body, "id", "create must not send an id")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Task created successfully","task":{"id":7,"title":"Write spec","description":"","status":"pending","due_date":"2025-06-01","created_at":"2025-05-01T10:00:00Z"}}`))
	}))
	defer server.Close()

	api := client.New(server.URL, time.Second)
	task, err := api.CreateTask(context.Background(), client.TaskDraft{
		Title:   "Write spec",
		Status:  models.StatusPending,
		DueDate: models.NewDate(2025, time.June, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), task.ID)
}

func TestUpdateTaskSendsID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(7), body["id"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Task updated successfully","task":{"id":7,"title":"Write spec","description":"","status":"completed","due_date":"2025-06-01","created_at":"2025-05-01T10:00:00Z"}}`))
	}))
	defer server.Close()

	api := client.New(server.URL, time.Second)
	task, err := api.UpdateTask(context.Background(), 7, client.TaskDraft{
		Title:   "Write spec",
		Status:  models.StatusCompleted,
		DueDate: models.NewDate(2025, time.June, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, task.Status)
}

func TestDeleteTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Task deleted successfully"}`))
	}))
	defer server.Close()

	api := client.New(server.URL, time.Second)
	assert.NoError(t, api.DeleteTask(context.Background(), 7))
}

func TestAPIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"NOT_FOUND","message":"task 7 not found"}`))
	}))
	defer server.Close()

	api := client.New(server.URL, time.Second)
	err := api.DeleteTask(context.Background(), 7)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "task 7 not found", apiErr.Message)
}

func TestAPIErrorFallbackOnGarbageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	api := client.New(server.URL, time.Second)
	_, err := api.ListTasks(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNKNOWN", apiErr.Code)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

// A server that never answers must surface a transport error, not hang the
// caller past its timeout.
func TestTransportTimeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	api := client.New(server.URL, 50*time.Millisecond)
	_, err := api.ListTasks(context.Background())

	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "a timeout is a transport error, not an API error")
}
