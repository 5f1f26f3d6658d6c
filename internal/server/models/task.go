// Package models contains the persistence-facing entities of the task store.
package models

import "time"

// Task is a single to-do item. IDs are assigned by the store on creation and
// never reused. CreatedAt is immutable; UpdatedAt is refreshed on every
// successful update, so CreatedAt <= UpdatedAt always holds.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
