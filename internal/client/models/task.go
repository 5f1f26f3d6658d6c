// Package models contains the client-side representation of task records as
// they travel over the wire.
package models

import "time"

// Task mirrors the JSON shape served by the task store.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
