package queue

import "errors"

var (
	// ErrInvalidInput indicates an unusable queue configuration.
	ErrInvalidInput = errors.New("invalid queue config")
)
