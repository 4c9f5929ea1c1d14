package strategy

import (
	"errors"
	"fmt"
)

// ErrInvalidStrategy matches any InvalidStrategyError via errors.Is.
var ErrInvalidStrategy = errors.New("invalid armeabi strategy")

// InvalidStrategyError reports a strategy value that is not an integer.
type InvalidStrategyError struct {
	Value string
	Err   error
}

func (e *InvalidStrategyError) Error() string {
	return fmt.Sprintf("%s %q: expected an integer between %d and %d", ErrInvalidStrategy, e.Value, int(None), int(Override))
}

func (e *InvalidStrategyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidStrategy}
	}
	return []error{ErrInvalidStrategy, e.Err}
}
