package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the requested hit does not exist
var ErrNotFound = errors.New("hit not found")

// errMissingEndpoint rejects updates that would store a hit without an endpoint
var errMissingEndpoint = errors.New("endpoint must not be null")

// ValidationError reports a request payload that cannot be used to build a hit
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

// PersistenceError wraps a failed insert, update or delete.
// The transaction has already been rolled back when it is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
