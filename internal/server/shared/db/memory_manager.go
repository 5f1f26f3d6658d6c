package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskboard/internal/server/tasks"
)

// MemoryRepositoryManager backs the server with the in-memory task
// repository. Used by tests and for running without a database.
type MemoryRepositoryManager struct {
	tasks tasks.Repository
}

func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{tasks: tasks.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Conn() *sql.DB { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }

func (m *MemoryRepositoryManager) Tasks() tasks.Repository { return m.tasks }
