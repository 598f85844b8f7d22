package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"taskboard/internal/config"
	"taskboard/internal/handlers"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/repository/inmemory"
	"taskboard/internal/repository/postgres"
	"taskboard/internal/service"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	repo      repository.TaskRepository
	shutdowns []func()
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("App: flushing logs")
		logger.Sync()
	})

	if err := a.initRepository(ctx); err != nil {
		return err
	}

	taskService := service.NewTaskService(a.repo)
	taskHandler := handlers.NewTaskHandler(taskService)
	a.router = newRouter(a.config, taskHandler)

	a.server = &http.Server{
		Addr:    a.config.ServerAddr(),
		Handler: a.router,
	}

	return nil
}

func (a *App) initRepository(ctx context.Context) error {
	switch a.config.Repository.Type {
	case "inmemory":
		logger.Info("App: using in-memory repository")
		a.repo = inmemory.NewTaskStorage()
		return nil

	case "postgres", "":
		storage, err := postgres.New(ctx, a.config.Database.URL, postgres.Options{
			MaxConns:    int32(a.config.Database.MaxConnections),
			MinConns:    int32(a.config.Database.MinConnections),
			IdleTimeout: a.config.Database.IdleTimeout,
		})
		if err != nil {
			return fmt.Errorf("init postgres: %w", err)
		}
		if err := storage.Migrate(); err != nil {
			storage.Close()
			return fmt.Errorf("migrate: %w", err)
		}
		a.shutdowns = append(a.shutdowns, storage.Close)
		a.repo = storage
		return nil

	default:
		return fmt.Errorf("unknown repository type %q", a.config.Repository.Type)
	}
}

func newRouter(cfg *config.Config, taskHandler *handlers.TaskHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.RateLimit(cfg.Server.RateLimitRPM))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// One resource path, one method per command.
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)      // GET    /api/tasks
		r.Post("/", taskHandler.CreateTask)    // POST   /api/tasks
		r.Put("/", taskHandler.UpdateTask)     // PUT    /api/tasks
		r.Delete("/", taskHandler.DeleteTask)  // DELETE /api/tasks?id=N
	})

	r.Get("/health", taskHandler.HealthCheck)

	return r
}

// Run serves until SIGINT/SIGTERM, then shuts down in reverse init order.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("App: server started", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.shutdown()
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		logger.Info("App: shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("App: forced shutdown", err)
	}
	a.shutdown()
	return nil
}

func (a *App) shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
