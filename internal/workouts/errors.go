package workouts

import (
	"errors"
	"fmt"
)

var (
	ErrSourceMissing = errors.New("source does not exist")
	ErrSourceInvalid = errors.New("source content invalid")
	ErrQueryFault    = errors.New("query fault")
)

// SourceError is returned by Load when one of the named sources
// cannot be read or decoded.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source [%s]: %s", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// QueryError wraps an unexpected fault hit while running an engine operation.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("unexpected error in %s: %s", e.Op, e.Err)
}

func (e *QueryError) Unwrap() []error {
	return []error{ErrQueryFault, e.Err}
}
