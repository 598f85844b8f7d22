package repository

import (
	"context"

	"taskboard/internal/models"
)

// TaskRepository is the persistence contract for the task table. Create
// fills in the server-assigned ID and CreatedAt; Update and Delete return
// ErrNotFound when no row matches the id.
type TaskRepository interface {
	List(ctx context.Context) ([]*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
	HealthCheck(ctx context.Context) error
}
