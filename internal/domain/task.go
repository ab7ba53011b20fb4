// Package domain contains core business entities and interfaces.
package domain

import "time"

// CreatedAtLayout is the display layout of Task.CreatedAt.
const CreatedAtLayout = "02/01/2006 15:04"

// Task represents one to-do item.
// The field order is the key order of the persisted JSON object.
type Task struct {
	ID          string   `json:"id" yaml:"id" toml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" toml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Priority    Priority `json:"priority" yaml:"priority" toml:"priority" validate:"required,oneof=high medium low"`
	Completed   bool     `json:"completed" yaml:"completed" toml:"completed"`
	CreatedAt   string   `json:"created_at" yaml:"created_at" toml:"created_at"`
}

// NewTask creates a pending task.
// An empty priority becomes DefaultPriority.
func NewTask(id, title, description string, priority Priority, created time.Time) *Task {
	if priority == "" {
		priority = DefaultPriority
	}
	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   created.Format(CreatedAtLayout),
	}
}

// Complete marks the task as completed.
// It reports whether the task was pending before the call.
func (t *Task) Complete() bool {
	if t.Completed {
		return false
	}
	t.Completed = true
	return true
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
