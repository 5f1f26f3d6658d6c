package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/client/view"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/httpapi"
	"github.com/dmitrijs2005/taskboard/internal/server/tasks"
)

// newE2EApp wires the real view, the real API client and the real HTTP
// handler stack backed by the in-memory repository.
func newE2EApp(t *testing.T) *App {
	t.Helper()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httpapi.NewServer(":0", logger, tasks.NewService(tasks.NewMemoryRepository()))
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerBaseURL = ts.URL

	return &App{
		config: cfg,
		api:    api.NewClient(ts.URL, 2*time.Second),
		state:  view.NewState(),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    io.Discard,
	}
}

func (a *App) feed(input string) {
	a.reader = bufio.NewReader(strings.NewReader(input))
}

func TestEndToEnd_TaskLifecycle(t *testing.T) {
	buf := captureOutput(t)
	app := newE2EApp(t)
	ctx := context.Background()

	app.Refresh(ctx)
	require.True(t, app.state.Loaded)

	// create
	app.Add(ctx, []string{"Buy", "milk"})
	total, completed, pending := app.state.Counts()
	require.Equal(t, 1, total)
	assert.Equal(t, 0, completed)
	assert.Equal(t, 1, pending)

	task := app.state.Tasks[0]
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	createdAt := task.CreatedAt

	// toggle
	app.Toggle(ctx, []string{strconv.FormatInt(task.ID, 10)})
	_, completed, pending = app.state.Counts()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, pending)

	// edit
	app.feed("Buy oat milk\n")
	app.Edit(ctx, []string{strconv.FormatInt(task.ID, 10)})
	edited, found := app.state.Task(task.ID)
	require.True(t, found)
	assert.Equal(t, "Buy oat milk", edited.Text)
	assert.Equal(t, createdAt, edited.CreatedAt, "createdAt is immutable")
	assert.False(t, edited.UpdatedAt.Before(createdAt), "updatedAt must advance")

	// delete (confirmed)
	app.feed("y\n")
	app.Delete(ctx, []string{strconv.FormatInt(task.ID, 10)})
	total, _, _ = app.state.Counts()
	assert.Equal(t, 0, total)

	// every filter shows its empty message
	buf.Reset()
	app.SetFilter(ctx, []string{"all"})
	app.SetFilter(ctx, []string{"active"})
	app.SetFilter(ctx, []string{"completed"})
	out := buf.String()
	assert.Contains(t, out, "no tasks yet")
	assert.Contains(t, out, "no active tasks")
	assert.Contains(t, out, "no completed tasks")
}

func TestEndToEnd_ClearCompleted(t *testing.T) {
	captureOutput(t)
	app := newE2EApp(t)
	ctx := context.Background()

	app.Refresh(ctx)

	app.Add(ctx, []string{"one"})
	app.Add(ctx, []string{"two"})
	app.Add(ctx, []string{"three"})
	require.Len(t, app.state.Tasks, 3)

	// complete two of three
	app.Toggle(ctx, []string{strconv.FormatInt(app.state.Tasks[0].ID, 10)})
	app.Toggle(ctx, []string{strconv.FormatInt(app.state.Tasks[1].ID, 10)})

	_, completed, _ := app.state.Counts()
	require.Equal(t, 2, completed)

	app.feed("y\n")
	app.ClearCompleted(ctx)

	total, completed, pending := app.state.Counts()
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, completed)
	assert.Equal(t, 1, pending)
}

func TestEndToEnd_DeleteIsConfirmedAgainstServerState(t *testing.T) {
	captureOutput(t)
	app := newE2EApp(t)
	ctx := context.Background()

	app.Refresh(ctx)
	app.Add(ctx, []string{"only"})
	id := app.state.Tasks[0].ID

	// deleting an id that is already gone reports a failure, list unchanged
	app.feed("y\n")
	app.Delete(ctx, []string{strconv.FormatInt(id+100, 10)})
	assert.Len(t, app.state.Tasks, 1)
}
