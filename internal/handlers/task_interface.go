package handlers

import (
	"context"

	"taskboard/internal/models"
)

type Service interface {
	ListTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, title, description string, status models.Status, dueDate models.Date) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, title, description string, status models.Status, dueDate models.Date) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	HealthCheck(ctx context.Context) error
}
