package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// Repository is the storage boundary for tasks.
//
// Update merges only the supplied fields; nil pointers leave the stored value
// unchanged. Delete is idempotent: a missing id yields (false, nil), never an
// error.
type Repository interface {
	List(ctx context.Context) ([]*models.Task, error)
	Create(ctx context.Context, text string) (*models.Task, error)
	Update(ctx context.Context, id int64, text *string, completed *bool) (*models.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
