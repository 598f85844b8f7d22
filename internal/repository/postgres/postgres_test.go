package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"taskboard/internal/repository/postgres"
)

// PostgresTestSuite runs the repository against a real PostgreSQL in a
// container. Slow; skipped in -short mode.
type PostgresTestSuite struct {
	suite.Suite
	container  testcontainers.Container
	storage    *postgres.Storage
	connString string
	ctx        context.Context
}

func (s *PostgresTestSuite) SetupSuite() {
	s.ctx = context.Background()
	require.NoError(s.T(), logger.Init(false))

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(s.T(), err)
	s.container = container

	host, err := container.Host(s.ctx)
	require.NoError(s.T(), err)
	port, err := container.MappedPort(s.ctx, "5432")
	require.NoError(s.T(), err)

	s.connString = fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	s.storage, err = postgres.New(s.ctx, s.connString, postgres.Options{})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.storage.Migrate())
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.storage != nil {
		s.storage.Close()
	}
	if s.container != nil {
		s.container.Terminate(s.ctx)
	}
}

func (s *PostgresTestSuite) SetupTest() {
	conn, err := pgx.Connect(s.ctx, s.connString)
	require.NoError(s.T(), err)
	defer conn.Close(s.ctx)

	_, err = conn.Exec(s.ctx, "DELETE FROM tasks")
	require.NoError(s.T(), err)
}

func (s *PostgresTestSuite) newTask(title string) *models.Task {
	return &models.Task{
		Title:       title,
		Description: "integration test task",
		Status:      models.StatusPending,
		DueDate:     models.NewDate(2025, time.June, 1),
	}
}

func (s *PostgresTestSuite) TestCreateAndGet() {
	task := s.newTask("create me")
	require.NoError(s.T(), s.storage.Create(s.ctx, task))

	assert.NotZero(s.T(), task.ID)
	assert.False(s.T(), task.CreatedAt.IsZero())

	got, err := s.storage.GetByID(s.ctx, task.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), task.Title, got.Title)
	assert.Equal(s.T(), "2025-06-01", got.DueDate.String())
	assert.Equal(s.T(), models.StatusPending, got.Status)
}

func (s *PostgresTestSuite) TestGetMissing() {
	_, err := s.storage.GetByID(s.ctx, 123456)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestUpdateKeepsCreatedAt() {
	task := s.newTask("update me")
	require.NoError(s.T(), s.storage.Create(s.ctx, task))
	createdAt := task.CreatedAt

	task.Title = "updated"
	task.Status = models.StatusCompleted
	task.DueDate = models.NewDate(2025, time.July, 15)
	require.NoError(s.T(), s.storage.Update(s.ctx, task))

	got, err := s.storage.GetByID(s.ctx, task.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "updated", got.Title)
	assert.Equal(s.T(), models.StatusCompleted, got.Status)
	assert.Equal(s.T(), "2025-07-15", got.DueDate.String())
	assert.WithinDuration(s.T(), createdAt, got.CreatedAt, time.Second)
}

func (s *PostgresTestSuite) TestUpdateMissing() {
	task := s.newTask("ghost")
	task.ID = 123456
	assert.ErrorIs(s.T(), s.storage.Update(s.ctx, task), repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestDeleteTwice() {
	task := s.newTask("delete me")
	require.NoError(s.T(), s.storage.Create(s.ctx, task))

	require.NoError(s.T(), s.storage.Delete(s.ctx, task.ID))
	assert.ErrorIs(s.T(), s.storage.Delete(s.ctx, task.ID), repository.ErrNotFound)

	_, err := s.storage.GetByID(s.ctx, task.ID)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestListNewestFirst() {
	for _, title := range []string{"first", "second", "third"} {
		require.NoError(s.T(), s.storage.Create(s.ctx, s.newTask(title)))
	}

	tasks, err := s.storage.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), tasks, 3)

	// created_at may collide within a transaction tick; id breaks the tie.
	assert.Equal(s.T(), "third", tasks[0].Title)
	assert.Equal(s.T(), "first", tasks[2].Title)
}

func (s *PostgresTestSuite) TestStatusConstraint() {
	task := s.newTask("bad status")
	task.Status = "archived"
	err := s.storage.Create(s.ctx, task)
	assert.Error(s.T(), err, "the CHECK constraint must reject unknown statuses")
}

func TestPostgresTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(PostgresTestSuite))
}
