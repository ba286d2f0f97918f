package cache

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a model has no footprint in the cache.
var ErrNotFound = errors.New("model not found in cache")

// MalformedEntryError reports a directory under the cache root that does
// not follow the models--org--name naming convention.
type MalformedEntryError struct {
	Dir    string
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("not a model directory: %s (%s)", e.Dir, e.Reason)
}

// DeletionError aggregates per-file removal failures. Removal keeps going
// past individual failures, so one error can carry several causes.
type DeletionError struct {
	Errs []error
}

func (e *DeletionError) Error() string {
	if len(e.Errs) == 1 {
		return fmt.Sprintf("failed to remove: %v", e.Errs[0])
	}
	return fmt.Sprintf("failed to remove %d files", len(e.Errs))
}

func (e *DeletionError) Unwrap() []error {
	return e.Errs
}
