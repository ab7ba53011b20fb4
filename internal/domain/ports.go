package domain

import "time"

// TaskRepository is the ordered task store.
// Positions are 1-based indexes into the full sequence; out of range
// positions yield ErrInvalidPosition.
type TaskRepository interface {
	// List returns every task in insertion order.
	List() ([]*Task, error)
	// Get returns a copy of the task at position.
	Get(position int) (*Task, error)
	// Append adds a task at the end and returns its position.
	Append(task *Task) (int, error)
	// Update replaces the task at position.
	Update(position int, task *Task) error
	// Delete removes the task at position and returns it.
	// Later tasks move down by one position.
	Delete(position int) (*Task, error)
	// Reload re-reads the backing file, discarding the in-memory sequence.
	Reload() error
}

// IDGenerator produces task IDs unique within a process.
type IDGenerator interface {
	NewID() string
}

// ConfigLoader loads the merged configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)
	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetLocalConfigInfo() ConfigInfo
	InitGlobalConfig() error
	InitLocalConfig() error
}

// Logger writes application logs.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
