// Package tasks provides storage and validation for task records. The
// PostgreSQL repository is the production implementation; an in-memory
// repository backs tests and local runs without a database.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/dbx"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// now returns the current UTC time truncated to microseconds, the precision
// of a timestamptz column, so values survive a round trip unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// List returns all tasks, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT id, text, completed, created_at, updated_at FROM tasks
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(&item.ID, &item.Text, &item.Completed, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new task with completed=false and both timestamps set to
// the same instant, returning the full persisted record.
func (r *PostgresRepository) Create(ctx context.Context, text string) (*models.Task, error) {
	query := `INSERT INTO tasks (text, completed, created_at, updated_at)
		VALUES ($1, FALSE, $2, $2)
		RETURNING id`

	task := &models.Task{Text: text, Completed: false}
	ts := now()
	task.CreatedAt = ts
	task.UpdatedAt = ts

	err := r.db.QueryRowContext(ctx, query, text, ts).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

// Update merges the supplied fields into an existing row and refreshes
// updated_at. Returns common.ErrNotFound when the id does not exist.
func (r *PostgresRepository) Update(ctx context.Context, id int64, text *string, completed *bool) (*models.Task, error) {
	query := `UPDATE tasks
		SET text = COALESCE($2, text),
		    completed = COALESCE($3, completed),
		    updated_at = $4
		WHERE id = $1
		RETURNING id, text, completed, created_at, updated_at`

	var task models.Task
	err := r.db.QueryRowContext(ctx, query, id, text, completed, now()).
		Scan(&task.ID, &task.Text, &task.Completed, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return &task, nil
}

// Delete removes the row if present and reports whether anything was removed.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
