package strategy

import (
	"strconv"
	"strings"
)

// Flags are the raw configuration inputs to Select. Nil pointers mean the
// value was not configured.
type Flags struct {
	// SplitPerABI packages one artifact per ABI, which disables reconciliation.
	SplitPerABI bool

	// SupportArmeabi is the developer convenience property, unparsed.
	SupportArmeabi *string

	// Extension is the project-level supportArmeabi value. It wins over
	// SupportArmeabi when both are set.
	Extension *int
}

// Select derives the active strategy from flags.
func Select(flags Flags) (Strategy, error) {
	if flags.SplitPerABI {
		return None, nil
	}

	candidate := int(None)
	if flags.SupportArmeabi != nil {
		n, err := strconv.Atoi(strings.TrimSpace(*flags.SupportArmeabi))
		if err != nil {
			return None, &InvalidStrategyError{Value: *flags.SupportArmeabi, Err: err}
		}
		candidate = n
	}
	if flags.Extension != nil {
		candidate = *flags.Extension
	}

	return Clamp(candidate), nil
}
