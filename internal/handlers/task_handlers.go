package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/logger"
)

// TaskHandler exposes the task collection as one resource path. Each HTTP
// method is bound to its own well-typed handler by the router; there is no
// method switch inside.
type TaskHandler struct {
	service Service
}

func NewTaskHandler(service Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks returns the whole table, newest first. Never paginated: the
// client slices locally.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	tasks, err := h.service.ListTasks(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: tasks listed",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: wrong content type",
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))
		respondError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
		return
	}

	var request CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: malformed request body",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	task, err := h.service.CreateTask(r.Context(), request.Title, request.Description, request.Status, request.DueDate)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: task created",
		zap.Int64("task_id", task.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	respondWith(w, http.StatusCreated,
		kv("message", "Task created successfully"),
		kv("task", task),
	)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: wrong content type",
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))
		respondError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
		return
	}

	var request UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: malformed request body",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	task, err := h.service.UpdateTask(r.Context(), request.ID, request.Title, request.Description, request.Status, request.DueDate)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: task updated",
		zap.Int64("task_id", task.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	respondWith(w, http.StatusOK,
		kv("message", "Task updated successfully"),
		kv("task", task),
	)
}

// DeleteTask removes a task permanently. The id arrives as a query
// parameter and is validated as a positive integer before any query runs.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		logger.Warn("HTTP: missing id parameter", zap.String("client_ip", r.RemoteAddr))
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "query parameter 'id' is required")
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("HTTP: malformed id parameter",
			zap.String("id", idParam),
			zap.String("client_ip", r.RemoteAddr))
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "query parameter 'id' must be a positive integer")
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: task deleted",
		zap.Int64("task_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	respondWith(w, http.StatusOK,
		kv("message", "Task deleted successfully"),
	)
}

func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.HealthCheck(r.Context()); err != nil {
		logger.Error("HTTP: health check failed", err)
		respondWith(w, http.StatusServiceUnavailable, kv("status", "unhealthy"))
		return
	}
	respondWith(w, http.StatusOK, kv("status", "ok"))
}
