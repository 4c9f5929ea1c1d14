package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskWiring indicates the native-packaging task for a variant could not be resolved.
	ErrTaskWiring = errors.New("task wiring error")

	// ErrIO indicates a filesystem operation failed during reconciliation.
	ErrIO = errors.New("i/o error")
)

// TaskWiringError reports that a variant's upstream native-packaging task is
// missing or does not declare exactly one output directory.
type TaskWiringError struct {
	Variant string
	Task    string
	Reason  string
}

func (e *TaskWiringError) Error() string {
	if e.Task == "" {
		return fmt.Sprintf("%s: variant %q: %s", ErrTaskWiring, e.Variant, e.Reason)
	}
	return fmt.Sprintf("%s: variant %q task %q: %s", ErrTaskWiring, e.Variant, e.Task, e.Reason)
}

func (e *TaskWiringError) Unwrap() error {
	return ErrTaskWiring
}

// IOError wraps a filesystem failure with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
