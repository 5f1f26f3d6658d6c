package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/client/view"
)

// notifyFailure prints the transient notification for a failed mutation. It
// names the attempted action but never leaks internal error detail; the
// previously fetched list stays displayed.
func (a *App) notifyFailure(action string) {
	printfFn("could not %s task\n", action)
}

// refresh refetches the full list from the store, replacing the cached view
// state. Reports whether it succeeded.
func (a *App) refresh(ctx context.Context) bool {
	list, err := a.api.List(ctx)
	if err != nil {
		if !a.state.Loaded {
			printfFn("could not load tasks from the server; type 'refresh' to retry\n")
		} else {
			printfFn("could not refresh tasks\n")
		}
		return false
	}
	a.state.SetTasks(list)
	return true
}

// render prints the filtered subset with counts, or the filter-specific
// empty message. Before the first successful fetch only a placeholder is
// shown.
func (a *App) render() {
	if !a.state.Loaded {
		printfFn("tasks not loaded yet; type 'refresh' to retry\n")
		return
	}

	total, completed, pending := a.state.Counts()
	printfFn("%s tasks: %d total, %d completed, %d pending\n", a.state.Filter, total, completed, pending)

	filtered := a.state.Filtered()
	if len(filtered) == 0 {
		printfFn("%s\n", a.state.EmptyMessage())
		return
	}

	for _, task := range filtered {
		marker := " "
		if task.Completed {
			marker = "x"
		}
		printfFn("[%s] %d\t%s\n", marker, task.ID, task.Text)
	}
}

// List renders the cached list; 'refresh' refetches it.
func (a *App) List(_ context.Context) {
	a.render()
}

// Refresh refetches the list and re-renders.
func (a *App) Refresh(ctx context.Context) {
	if a.refresh(ctx) {
		a.render()
	}
}

// Add creates a task from the command arguments, prompting for a draft when
// none are given. On failure the draft is preserved for the next attempt.
func (a *App) Add(ctx context.Context, args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		prompt := "New task text"
		if a.state.Draft != "" {
			prompt = fmt.Sprintf("New task text (draft: %q)", a.state.Draft)
		}
		input, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			a.notifyFailure("add")
			return
		}
		if input == "" {
			input = a.state.Draft
		}
		text = input
	}
	if text == "" {
		printfFn("nothing to add\n")
		return
	}

	a.state.Draft = text

	if _, err := a.api.Create(ctx, text); err != nil {
		a.notifyFailure("add")
		return
	}

	a.state.Draft = ""
	a.Refresh(ctx)
}

// Toggle flips completion on the task with the given id, sending only the
// completed field.
func (a *App) Toggle(ctx context.Context, args []string) {
	id, ok := a.parseIDArg(args, "toggle <id>")
	if !ok {
		return
	}

	task, found := a.state.Task(id)
	if !found {
		printfFn("no task with id %d\n", id)
		return
	}

	completed := !task.Completed
	if _, err := a.api.Update(ctx, id, nil, &completed); err != nil {
		a.notifyFailure("update")
		return
	}

	a.Refresh(ctx)
}

// Edit captures the task's current text as the editable draft, prompts for
// the replacement, and confirms the edit with the store. Empty input after
// trimming cancels without calling the store. On failure the edit stays in
// progress so the draft is not lost.
func (a *App) Edit(ctx context.Context, args []string) {
	id, ok := a.parseIDArg(args, "edit <id>")
	if !ok {
		return
	}

	if err := a.state.BeginEdit(id); err != nil {
		printfFn("no task with id %d\n", id)
		return
	}

	input, err := GetSimpleText(a.reader,
		fmt.Sprintf("Edit task %d (current: %q), empty input cancels", id, a.state.EditDraft), a.out)
	if err != nil || strings.TrimSpace(input) == "" {
		a.state.CancelEdit()
		printfFn("edit cancelled\n")
		return
	}

	a.state.EditDraft = strings.TrimSpace(input)

	text := a.state.EditDraft
	if _, err := a.api.Update(ctx, id, &text, nil); err != nil {
		a.notifyFailure("update")
		return
	}

	a.state.CancelEdit()
	a.Refresh(ctx)
}

// Delete removes a task after an explicit confirmation.
func (a *App) Delete(ctx context.Context, args []string) {
	id, ok := a.parseIDArg(args, "delete <id>")
	if !ok {
		return
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete task %d?", id), a.out) {
		printfFn("delete cancelled\n")
		return
	}

	if err := a.api.Delete(ctx, id); err != nil {
		a.notifyFailure("delete")
		return
	}

	a.Refresh(ctx)
}

// ClearCompleted deletes every completed task after one confirmation naming
// the count. Deletes run concurrently with no ordering assumption; each
// failure is reported independently and the next refresh shows whatever
// state the store ended up in.
func (a *App) ClearCompleted(ctx context.Context) {
	ids := a.state.CompletedIDs()
	if len(ids) == 0 {
		printfFn("no completed tasks\n")
		return
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete %d completed task(s)?", len(ids)), a.out) {
		printfFn("clear cancelled\n")
		return
	}

	var wg sync.WaitGroup
	failed := make(chan int64, len(ids))

	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if err := a.api.Delete(ctx, id); err != nil {
				failed <- id
			}
		}(id)
	}

	wg.Wait()
	close(failed)

	for id := range failed {
		printfFn("could not delete task %d\n", id)
	}

	a.Refresh(ctx)
}

// SetFilter switches the display filter and re-renders.
func (a *App) SetFilter(_ context.Context, args []string) {
	if len(args) != 1 {
		printfFn("usage: filter all|active|completed\n")
		return
	}

	filter, err := view.ParseFilter(args[0])
	if err != nil {
		printfFn("usage: filter all|active|completed\n")
		return
	}

	a.state.Filter = filter
	a.render()
}

func (a *App) parseIDArg(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		printfFn("usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		printfFn("usage: %s\n", usage)
		return 0, false
	}
	return id, true
}
