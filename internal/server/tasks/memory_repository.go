package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// MemoryRepository is a mutex-guarded in-memory implementation of Repository.
// IDs are monotonic and never reused, matching the behavior of the
// PostgreSQL sequence.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*models.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, items: make(map[int64]*models.Task)}
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Task, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		result = append(result, &cp)
	}
	// newest first, id as tiebreaker
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) Create(_ context.Context, text string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := time.Now().UTC().Truncate(time.Microsecond)
	task := &models.Task{
		ID:        r.nextID,
		Text:      text,
		Completed: false,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	r.nextID++
	r.items[task.ID] = task

	cp := *task
	return &cp, nil
}

func (r *MemoryRepository) Update(_ context.Context, id int64, text *string, completed *bool) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if text != nil {
		task.Text = *text
	}
	if completed != nil {
		task.Completed = *completed
	}
	task.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	cp := *task
	return &cp, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
