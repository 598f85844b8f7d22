package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/repository"
)

// TaskService validates writes before they reach the repository and maps
// storage errors to business errors.
type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, title, description string, status models.Status, dueDate models.Date) (*models.Task, error) {
	if status == "" {
		status = models.StatusPending
	}
	if err := validate(title, status, dueDate); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, NewPersistenceError(err)
	}

	logger.Info("Service: task created", zap.Int64("task_id", task.ID))
	return task, nil
}

// UpdateTask replaces every mutable field of the task with the given id.
// Full-record semantics: the caller supplies the complete new state, not a
// patch.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, title, description string, status models.Status, dueDate models.Date) (*models.Task, error) {
	if id <= 0 {
		return nil, NewValidationError("id", "must be a positive integer")
	}
	if err := validate(title, status, dueDate); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	}

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: task not found", zap.Int64("task_id", id))
			return nil, NewNotFound(id)
		}
		return nil, NewPersistenceError(err)
	}

	logger.Info("Service: task updated", zap.Int64("task_id", id))
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewValidationError("id", "must be a positive integer")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: task not found", zap.Int64("task_id", id))
			return NewNotFound(id)
		}
		return NewPersistenceError(err)
	}

	logger.Info("Service: task deleted", zap.Int64("task_id", id))
	return nil
}

func validate(title string, status models.Status, dueDate models.Date) *BusinessError {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "must not be empty")
	}
	if !status.Valid() {
		return NewValidationError("status", "must be one of pending, in_progress, completed")
	}
	if dueDate.IsZero() {
		return NewValidationError("due_date", "must be a calendar date in YYYY-MM-DD form")
	}
	return nil
}
