package domain

import "strings"

// Priority is the importance of a task. It only affects display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when no priority is given.
const DefaultPriority = PriorityMedium

// AllPriorities returns the valid priorities, highest first.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// priorityAliases maps accepted spellings to priorities.
// The Portuguese values are what older task files contain.
var priorityAliases = map[string]Priority{
	"high":   PriorityHigh,
	"h":      PriorityHigh,
	"alta":   PriorityHigh,
	"medium": PriorityMedium,
	"m":      PriorityMedium,
	"média":  PriorityMedium,
	"media":  PriorityMedium,
	"low":    PriorityLow,
	"l":      PriorityLow,
	"baixa":  PriorityLow,
}

// ParsePriority parses a user supplied priority.
// Empty input yields DefaultPriority.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPriority, nil
	}
	if p, ok := priorityAliases[s]; ok {
		return p, nil
	}
	return "", ErrInvalidPriority
}

// IsValid returns true if p is one of the canonical priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Normalize maps a stored value to its canonical priority.
// Unknown values are returned unchanged.
func (p Priority) Normalize() Priority {
	if n, ok := priorityAliases[strings.ToLower(string(p))]; ok {
		return n
	}
	return p
}

// Icon returns the marker shown next to a task.
func (p Priority) Icon() string {
	switch p.Normalize() {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	case PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}
