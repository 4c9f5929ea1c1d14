// Package abi maps target platforms to the ABI directory names used in a
// packaged native-library tree.
//
// The platform table is fixed and read-only, so lookups are safe from any
// number of goroutines without synchronization.
package abi

import (
	"sort"
	"strings"
)

// Platform identifies a compilation target, e.g. "android-arm".
type Platform string

// Name identifies an ABI directory inside an output tree, e.g. "armeabi-v7a".
type Name string

// Known platforms.
const (
	AndroidArm   Platform = "android-arm"
	AndroidArm64 Platform = "android-arm64"
	AndroidX86   Platform = "android-x86"
	AndroidX64   Platform = "android-x64"
)

// Known ABI directory names.
const (
	ArmeabiV7a Name = "armeabi-v7a"
	Arm64V8a   Name = "arm64-v8a"
	X86        Name = "x86"
	X86_64     Name = "x86_64"

	// Armeabi is the legacy ABI. It is never compiled; reconciliation
	// populates it from Predecessor.
	Armeabi Name = "armeabi"
)

// Predecessor is the ABI directory whose libraries seed the legacy ABI.
const Predecessor = ArmeabiV7a

// LibrarySuffix identifies native library files inside an ABI directory.
const LibrarySuffix = ".so"

var platformArch = map[Platform]Name{
	AndroidArm:   ArmeabiV7a,
	AndroidArm64: Arm64V8a,
	AndroidX86:   X86,
	AndroidX64:   X86_64,
}

// DefaultPlatforms are built when no target platform is requested.
var DefaultPlatforms = []Platform{AndroidArm, AndroidArm64}

// ForPlatform returns the ABI a platform compiles to.
func ForPlatform(p Platform) (Name, bool) {
	name, ok := platformArch[p]
	return name, ok
}

// KnownPlatforms returns every valid platform, sorted.
func KnownPlatforms() []Platform {
	out := make([]Platform, 0, len(platformArch))
	for p := range platformArch {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Set is an unordered collection of unique ABI names.
type Set map[Name]struct{}

// NewSet builds a Set from names, collapsing duplicates.
func NewSet(names ...Name) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether n is in the set.
func (s Set) Contains(n Name) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []Name {
	out := make([]Name, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the sorted members as plain strings.
func (s Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, n := range sorted {
		out[i] = string(n)
	}
	return out
}

// Resolve turns a comma-separated platform list into an ABI set. When present
// is false the default platforms are used and list is ignored.
//
// Every token is validated before anything is returned, so a bad entry never
// leads to a partially resolved set.
func Resolve(list string, present bool) (Set, error) {
	if !present {
		return ResolvePlatforms(platformStrings(DefaultPlatforms))
	}

	var tokens []string
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil, &InvalidPlatformError{Token: list}
	}
	return ResolvePlatforms(tokens)
}

// ResolvePlatforms maps each platform identifier to its ABI. The first
// unknown identifier, in input order, is reported.
func ResolvePlatforms(platforms []string) (Set, error) {
	set := make(Set, len(platforms))
	for _, p := range platforms {
		name, ok := ForPlatform(Platform(p))
		if !ok {
			return nil, &InvalidPlatformError{Token: p}
		}
		set[name] = struct{}{}
	}
	if len(set) == 0 {
		return nil, &InvalidPlatformError{}
	}
	return set, nil
}

func platformStrings(ps []Platform) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}
