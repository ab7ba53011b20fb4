package tui

import "github.com/runoshun/todo/internal/usecase"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the repository.
// Err is set when re-reading the task file failed and the list fell back to empty.
type MsgTasksLoaded struct {
	Err     error
	Entries []usecase.TaskEntry
	Total   int
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	Title    string
	Position int
}

func (MsgTaskCreated) sealed() {}

// MsgTaskCompleted is sent when a task is marked completed.
type MsgTaskCompleted struct {
	Title            string
	Position         int
	AlreadyCompleted bool
}

func (MsgTaskCompleted) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	Title    string
	Position int
}

func (MsgTaskDeleted) sealed() {}

// MsgFileChanged is sent when the task file changed on disk.
type MsgFileChanged struct{}

func (MsgFileChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
