package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/repository"
)

type Options struct {
	MaxConns    int32
	MinConns    int32
	IdleTimeout time.Duration
}

type Storage struct {
	pool       *pgxpool.Pool
	connString string
}

func New(ctx context.Context, connString string, opts Options) (*Storage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: failed to parse connection string", err)
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		config.MinConns = opts.MinConns
	}
	if opts.IdleTimeout > 0 {
		config.MaxConnIdleTime = opts.IdleTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: failed to create pool", err)
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Repository: ping failed", err)
		return nil, fmt.Errorf("ping: %w", err)
	}

	logger.Info("Repository: connected to PostgreSQL")
	return &Storage{pool: pool, connString: connString}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Repository: closed all PostgreSQL connections")
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Repository: ping failed", err)
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// List returns every task, newest first. The collection is small by contract
// (the client always pulls the whole table), so there is no server-side
// paging here.
func (s *Storage) List(ctx context.Context) ([]*models.Task, error) {
	start := time.Now()

	query := `SELECT id, title, description, status, due_date, created_at
				FROM tasks
				ORDER BY created_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		logger.Error("Repository: failed to list tasks", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.DueDate,
			&task.CreatedAt,
		)
		if err != nil {
			logger.Error("Repository: row scan failed", err)
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		logger.Error("Repository: row iteration failed", err)
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: slow query", zap.String("op", "list"), zap.Duration("ms", time.Since(start)))
	}
	return tasks, nil
}

func (s *Storage) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	start := time.Now()

	query := `SELECT id, title, description, status, due_date, created_at
				FROM tasks
				WHERE id = $1`

	task := &models.Task{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.DueDate,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		logger.Error("Repository: failed to get task", err, zap.Int64("task_id", id))
		return nil, fmt.Errorf("get task: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: slow query", zap.String("op", "get"), zap.Duration("ms", time.Since(start)))
	}
	return task, nil
}

func (s *Storage) Create(ctx context.Context, task *models.Task) error {
	start := time.Now()

	query := `INSERT INTO tasks (title, description, status, due_date)
				VALUES ($1, $2, $3, $4)
				RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		logger.Error("Repository: failed to create task", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("create task: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: slow query", zap.String("op", "create"), zap.Duration("ms", time.Since(start)))
	}
	return nil
}

// Update replaces every mutable field. id and created_at never change; the
// row's created_at is read back into the task.
func (s *Storage) Update(ctx context.Context, task *models.Task) error {
	start := time.Now()

	query := `UPDATE tasks
			SET title = $1,
				description = $2,
				status = $3,
				due_date = $4
			WHERE id = $5
			RETURNING created_at`

	err := s.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.ID,
	).Scan(&task.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		logger.Error("Repository: failed to update task", err, zap.Int64("task_id", task.ID))
		return fmt.Errorf("update task: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: slow query", zap.String("op", "update"), zap.Duration("ms", time.Since(start)))
	}
	return nil
}

// Delete removes the row permanently. A missing row is ErrNotFound so a
// repeated delete never reports success.
func (s *Storage) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	query := `DELETE FROM tasks WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Repository: failed to delete task", err, zap.Int64("task_id", id))
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: slow query", zap.String("op", "delete"), zap.Duration("ms", time.Since(start)))
	}
	return nil
}
