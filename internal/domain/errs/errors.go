// Package errs defines the error kinds shared across the domain packages.
package errs

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// NotFound builds a NotFoundError for the given resource name and id.
func NotFound(resource string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: id.String()}
}

// NotFoundKey builds a NotFoundError for a non-uuid lookup key.
func NotFoundKey(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
