package abi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPlatform matches any InvalidPlatformError via errors.Is.
var ErrInvalidPlatform = errors.New("invalid target platform")

// InvalidPlatformError reports a platform identifier missing from the platform table.
type InvalidPlatformError struct {
	Token string
}

func (e *InvalidPlatformError) Error() string {
	if strings.TrimSpace(e.Token) == "" {
		return fmt.Sprintf("%s: empty platform list", ErrInvalidPlatform)
	}
	return fmt.Sprintf("%s %q (valid: %s)", ErrInvalidPlatform, e.Token, joinPlatforms(KnownPlatforms()))
}

func (e *InvalidPlatformError) Unwrap() error {
	return ErrInvalidPlatform
}

func joinPlatforms(ps []Platform) string {
	return strings.Join(platformStrings(ps), ", ")
}
