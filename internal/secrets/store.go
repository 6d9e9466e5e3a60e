package secrets

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no value exists for a key.
var ErrNotFound = errors.New("secret not found")

// Change reports that the value under Key was added, replaced, or removed
// in the shared store, possibly by another process.
type Change struct {
	Key string
}

// Store is a durable key/value string store shared across all processes of
// the same user, with change notifications.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Watch() <-chan Change
	Close() error
}

// StoreError wraps a secret store fault with the operation and key that
// caused it.
type StoreError struct {
	Op    string
	Key   string
	Cause error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("secret store %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("secret store %s failed for %q: %v", e.Op, e.Key, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
