package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryRepository())
}

func TestCreate_AssignsIDAndDefaults(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	task, err := s.Create(ctx, "Buy milk")
	require.NoError(t, err)

	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	task2, err := s.Create(ctx, "Buy bread")
	require.NoError(t, err)
	assert.NotEqual(t, task.ID, task2.ID)
}

func TestCreate_TrimsText(t *testing.T) {
	s := newTestService(t)

	task, err := s.Create(context.Background(), "  walk the dog \n")
	require.NoError(t, err)
	assert.Equal(t, "walk the dog", task.Text)
}

func TestCreate_RejectsEmptyText(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := s.Create(ctx, text)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrValidation)
	}

	// nothing persisted
	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_ChangesOnlySuppliedFields(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "Buy milk")
	require.NoError(t, err)

	completed := true
	updated, err := s.Update(ctx, created.ID, nil, &completed)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Buy milk", updated.Text)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	text := "Buy oat milk"
	updated2, err := s.Update(ctx, created.ID, &text, nil)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated2.Text)
	assert.True(t, updated2.Completed, "completed must survive a text-only update")
	assert.Equal(t, created.CreatedAt, updated2.CreatedAt)
}

func TestUpdate_ValidatesText(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "Buy milk")
	require.NoError(t, err)

	empty := "   "
	_, err = s.Update(ctx, created.ID, &empty, nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	// record untouched
	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Buy milk", list[0].Text)
}

func TestUpdate_RequiresAtLeastOneField(t *testing.T) {
	s := newTestService(t)

	created, err := s.Create(context.Background(), "Buy milk")
	require.NoError(t, err)

	_, err = s.Update(context.Background(), created.ID, nil, nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdate_NotFound(t *testing.T) {
	s := newTestService(t)

	completed := true
	_, err := s.Update(context.Background(), 42, nil, &completed)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_IsIdempotent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "Buy milk")
	require.NoError(t, err)

	removed, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	removed, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed, "second delete must report nothing removed")
}

func TestList_NewestFirst(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first, err := s.Create(ctx, "first")
	require.NoError(t, err)
	second, err := s.Create(ctx, "second")
	require.NoError(t, err)
	third, err := s.Create(ctx, "third")
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, first.ID, list[2].ID)
}
