package handlers

import "taskboard/internal/models"

type CreateTaskRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	DueDate     models.Date   `json:"due_date"`
}

// UpdateTaskRequest carries the full replacement record. The id selects the
// row; everything else overwrites it.
type UpdateTaskRequest struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	DueDate     models.Date   `json:"due_date"`
}
