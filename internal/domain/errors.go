package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidPosition   = errors.New("invalid task number")
	ErrInvalidPriority   = errors.New("invalid priority (use high, medium or low)")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrConfigExists      = errors.New("config file already exists")
	ErrConfigDirUnknown  = errors.New("cannot determine config directory")
)
