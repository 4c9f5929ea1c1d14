package engine

import (
	"github.com/xinfeng-tech/flutter-libs/internal/abi"
	"github.com/xinfeng-tech/flutter-libs/internal/strategy"
)

// ResolveSettings validates the platform list and selects the strategy.
// It performs no I/O, so configuration errors surface before any output
// tree is touched.
func ResolveSettings(in SettingsInput) (Settings, error) {
	list, present := "", false
	if in.TargetPlatform != nil {
		list, present = *in.TargetPlatform, true
	}

	abis, err := abi.Resolve(list, present)
	if err != nil {
		return Settings{}, err
	}

	s, err := strategy.Select(in.Flags)
	if err != nil {
		return Settings{}, err
	}

	return Settings{ABIs: abis, Strategy: s}, nil
}

// PackagedABIs returns the ABI directories the packaged artifact will carry:
// the compiled ABIs, plus the legacy ABI when reconciliation is enabled and
// its predecessor is being built.
func (s Settings) PackagedABIs() abi.Set {
	out := abi.NewSet()
	for n := range s.ABIs {
		out[n] = struct{}{}
	}
	if s.Strategy.Mode().Enabled && s.ABIs.Contains(abi.Predecessor) {
		out[abi.Armeabi] = struct{}{}
		if s.Strategy.Mode().RemoveSource {
			delete(out, abi.Predecessor)
		}
	}
	return out
}
