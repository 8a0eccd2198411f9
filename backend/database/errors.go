package database

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned by writes when no database connection
// was ever established. Reads never return it: they degrade to empty results.
var ErrStorageUnavailable = errors.New("storage unavailable: no database connection")

// StorageError wraps a failure from the underlying store once an operation
// was actually attempted (rejected insert, dropped connection).
type StorageError struct {
	Op   string
	Kind string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for kind %q: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
