// Package httpapi exposes the task store as an HTTP/JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/tasks"
)

type Server struct {
	address string
	service *tasks.Service
	logger  logging.Logger
	router  *mux.Router
}

func NewServer(address string, l logging.Logger, service *tasks.Service) *Server {
	s := &Server{
		address: address,
		service: service,
		logger:  l.With("module", "httpapi"),
	}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Methods(http.MethodGet).Path("/healthz").HandlerFunc(s.handleHealth)
	r.Methods(http.MethodGet).Path("/api/todos").HandlerFunc(s.handleList)
	r.Methods(http.MethodPost).Path("/api/todos").HandlerFunc(s.handleCreate)
	r.Methods(http.MethodPut).Path("/api/todos/{id}").HandlerFunc(s.handleUpdate)
	r.Methods(http.MethodDelete).Path("/api/todos/{id}").HandlerFunc(s.handleDelete)

	s.router = r
	return s
}

// ServeHTTP makes the server usable directly with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
