// Package server initializes and runs the task store application: it wires
// the storage backend, runs schema migrations, handles graceful shutdown,
// and starts the HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/httpapi"
	"github.com/dmitrijs2005/taskboard/internal/server/shared/db"
	"github.com/dmitrijs2005/taskboard/internal/server/tasks"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     db.RepositoryManager
	taskService *tasks.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var (
		manager db.RepositoryManager
		err     error
	)
	if c.DatabaseDSN == "" {
		manager = db.NewMemoryRepositoryManager()
	} else {
		manager, err = db.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	ts := tasks.NewService(manager.Tasks())

	return &App{config: c, logger: logger, manager: manager, taskService: ts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.taskService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "error closing storage", "error", err.Error())
	}
}
