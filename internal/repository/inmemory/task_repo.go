package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repository"
)

// TaskStorage is a map-backed TaskRepository used by tests and demo runs.
// IDs are assigned from a serial counter, matching the SQL schema.
type TaskStorage struct {
	mtx     sync.RWMutex
	storage map[int64]*models.Task
	nextID  int64
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[int64]*models.Task),
		nextID:  1,
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *TaskStorage) Create(ctx context.Context, task *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	task.ID = s.nextID
	s.nextID++
	task.CreatedAt = time.Now()

	stored := *task
	s.storage[task.ID] = &stored
	return nil
}

func (s *TaskStorage) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stored, ok := s.storage[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	task := *stored
	return &task, nil
}

func (s *TaskStorage) Update(ctx context.Context, task *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, ok := s.storage[task.ID]
	if !ok {
		return repository.ErrNotFound
	}

	// id and created_at stay as stored.
	stored.Title = task.Title
	stored.Description = task.Description
	stored.Status = task.Status
	stored.DueDate = task.DueDate
	task.CreatedAt = stored.CreatedAt
	return nil
}

func (s *TaskStorage) Delete(ctx context.Context, id int64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.storage, id)
	return nil
}

// List returns copies of every task, newest first with higher ids winning
// ties, same as the SQL ordering.
func (s *TaskStorage) List(ctx context.Context) ([]*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	tasks := make([]*models.Task, 0, len(s.storage))
	for _, stored := range s.storage {
		task := *stored
		tasks = append(tasks, &task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})
	return tasks, nil
}
