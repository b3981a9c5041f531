package discovery

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	// ErrStoreUnavailable is matched by every failure of the underlying store,
	// including cancellation and deadlines.
	ErrStoreUnavailable = errors.New("job store unavailable")
	ErrNotFound         = errors.New("job posting not found")
)

type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrStoreUnavailable, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.Err}
}

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
