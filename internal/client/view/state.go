// Package view holds the client-side presentation state: the last fetched
// task list, the new-task draft, the active display filter, and the single
// edit-in-progress. Everything shown to the user is derived from this
// structure, never stored separately, so filtered lists and counts can be
// unit-tested without any transport.
package view

import (
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/common"
)

// Filter selects which subset of tasks is displayed.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter validates a user-supplied filter name.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterActive, FilterCompleted:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("%w: filter must be all, active or completed", common.ErrValidation)
	}
}

// State is the serializable view state. Tasks is a cache of the last list
// fetched from the store, never locally authoritative: it is replaced
// wholesale on every refresh. EditingID == 0 means no edit in progress.
type State struct {
	Tasks     []models.Task `json:"tasks"`
	Draft     string        `json:"draft"`
	Filter    Filter        `json:"filter"`
	EditingID int64         `json:"editingId"`
	EditDraft string        `json:"editDraft"`
	Loaded    bool          `json:"loaded"`
}

func NewState() *State {
	return &State{Filter: FilterAll}
}

// SetTasks replaces the cached list after a refresh and marks the initial
// load as done.
func (s *State) SetTasks(tasks []models.Task) {
	s.Tasks = tasks
	s.Loaded = true
}

// Task looks up a cached task by id.
func (s *State) Task(id int64) (models.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Filtered returns the subset of the cached list selected by the active
// filter, preserving order. For FilterAll it equals the full list.
func (s *State) Filtered() []models.Task {
	if s.Filter == FilterAll {
		return s.Tasks
	}

	wantCompleted := s.Filter == FilterCompleted
	result := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.Completed == wantCompleted {
			result = append(result, t)
		}
	}
	return result
}

// Counts recomputes the display counters from the cached list.
// pending == total - completed always holds.
func (s *State) Counts() (total, completed, pending int) {
	total = len(s.Tasks)
	for _, t := range s.Tasks {
		if t.Completed {
			completed++
		}
	}
	pending = total - completed
	return total, completed, pending
}

// CompletedIDs returns the ids of all completed tasks, the targets of a
// "clear completed" action.
func (s *State) CompletedIDs() []int64 {
	ids := make([]int64, 0)
	for _, t := range s.Tasks {
		if t.Completed {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// BeginEdit captures the task's current text as the editable draft. Entering
// edit on a different task abandons any unsaved edit in progress.
func (s *State) BeginEdit(id int64) error {
	task, ok := s.Task(id)
	if !ok {
		return fmt.Errorf("%w: no task with id %d", common.ErrNotFound, id)
	}
	s.EditingID = task.ID
	s.EditDraft = task.Text
	return nil
}

// CancelEdit discards the edit draft without touching the store.
func (s *State) CancelEdit() {
	s.EditingID = 0
	s.EditDraft = ""
}

// Editing reports whether an edit is in progress.
func (s *State) Editing() bool {
	return s.EditingID != 0
}

// EmptyMessage is the placeholder shown when the filtered subset is empty,
// specific to the active filter.
func (s *State) EmptyMessage() string {
	switch s.Filter {
	case FilterActive:
		return "no active tasks"
	case FilterCompleted:
		return "no completed tasks"
	default:
		return "no tasks yet"
	}
}
