// Package db wires repositories to their storage backend. The manager owns
// the connection and hands out ready-to-use repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskboard/internal/server/tasks"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Tasks() tasks.Repository
}
