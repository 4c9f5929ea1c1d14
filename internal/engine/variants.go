package engine

import (
	"errors"
	"sort"
)

// VariantSource lists build variants and resolves each to the output directory
// declared by its native-packaging task. It is supplied by whatever drives
// the build, so the engine never inspects the build system itself.
type VariantSource interface {
	// Variants returns the variant names in the order they should be processed.
	Variants() ([]string, error)

	// OutputDir returns the variant's native library output root. It returns a
	// *TaskWiringError when the native-packaging task cannot be resolved.
	OutputDir(variant string) (string, error)
}

// StaticVariants is a VariantSource backed by a fixed variant → directory map.
type StaticVariants map[string]string

// Variants returns the variant names sorted.
func (s StaticVariants) Variants() ([]string, error) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// OutputDir returns the configured directory for variant.
func (s StaticVariants) OutputDir(variant string) (string, error) {
	dir, ok := s[variant]
	if !ok || dir == "" {
		return "", &TaskWiringError{Variant: variant, Reason: "no native library output directory registered"}
	}
	return dir, nil
}

// resolveOutputDir asks source for the variant's directory, normalising any
// failure into a TaskWiringError.
func resolveOutputDir(source VariantSource, variant string) (string, error) {
	dir, err := source.OutputDir(variant)
	if err != nil {
		var wiring *TaskWiringError
		if errors.As(err, &wiring) {
			return "", err
		}
		return "", &TaskWiringError{Variant: variant, Reason: err.Error()}
	}
	if dir == "" {
		return "", &TaskWiringError{Variant: variant, Reason: "native-packaging task declares no output directory"}
	}
	return dir, nil
}
