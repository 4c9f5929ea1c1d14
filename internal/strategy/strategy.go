// Package strategy decides how the legacy ABI directory is reconciled.
//
// Four named strategies are exposed to configuration. Internally each one is
// a Mode built from two independent switches: whether existing legacy files
// are overwritten, and whether the predecessor directory is removed afterwards.
package strategy

import (
	"fmt"
)

// Strategy is the configured reconciliation strategy. The numeric values are
// part of the configuration surface.
type Strategy int

const (
	// None leaves the output tree alone.
	None Strategy = iota
	// Copy adds missing legacy libraries and keeps the predecessor.
	Copy
	// Move adds missing legacy libraries and removes the predecessor.
	Move
	// Override replaces legacy libraries and removes the predecessor.
	Override
)

var names = [...]string{"none", "copy", "move", "override"}

func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return names[s]
}

func (s Strategy) valid() bool {
	return s >= None && s <= Override
}

// MarshalText lets strategies appear by name in JSON output.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Mode is the decomposed form of a Strategy.
type Mode struct {
	// Enabled is false only for None.
	Enabled bool
	// Overwrite replaces same-named legacy files.
	Overwrite bool
	// RemoveSource deletes the predecessor directory after copying.
	RemoveSource bool
}

// Mode returns the switches for s. Out-of-range values behave as None.
func (s Strategy) Mode() Mode {
	switch s {
	case Copy:
		return Mode{Enabled: true}
	case Move:
		return Mode{Enabled: true, RemoveSource: true}
	case Override:
		return Mode{Enabled: true, Overwrite: true, RemoveSource: true}
	default:
		return Mode{}
	}
}

// Clamp collapses any value outside the defined strategies to None.
func Clamp(v int) Strategy {
	s := Strategy(v)
	if !s.valid() {
		return None
	}
	return s
}
