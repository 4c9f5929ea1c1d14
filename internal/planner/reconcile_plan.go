package planner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xinfeng-tech/flutter-libs/internal/abi"
	"github.com/xinfeng-tech/flutter-libs/internal/fsops"
	"github.com/xinfeng-tech/flutter-libs/internal/strategy"
)

// BuildReconcilePlan generates a deterministic plan to populate the legacy
// ABI directory under root from the predecessor ABI directory.
func BuildReconcilePlan(root string, s strategy.Strategy, fs fsops.FS) (*ReconcilePlan, error) {
	plan := NewReconcilePlan(root, s)

	mode := s.Mode()
	if !mode.Enabled {
		plan.SkipReason = SkipStrategyNone
		return plan, nil
	}

	predecessor := filepath.Join(root, string(abi.Predecessor))
	hasPredecessor, err := fs.IsDir(predecessor)
	if err != nil {
		return nil, fmt.Errorf("failed to check predecessor directory %s: %w", predecessor, err)
	}
	if !hasPredecessor {
		plan.SkipReason = SkipPredecessorMissing
		return plan, nil
	}

	legacy := filepath.Join(root, string(abi.Armeabi))
	legacyExists, err := fs.Exists(legacy)
	if err != nil {
		return nil, fmt.Errorf("failed to check legacy directory %s: %w", legacy, err)
	}
	if legacyExists {
		isDir, err := fs.IsDir(legacy)
		if err != nil {
			return nil, fmt.Errorf("failed to check legacy directory %s: %w", legacy, err)
		}
		if !isDir {
			return nil, fmt.Errorf("legacy path %s exists and is not a directory", legacy)
		}
	} else {
		plan.AddOperation(Operation{
			Type:     OpMkdir,
			DestPath: legacy,
			RelPath:  string(abi.Armeabi),
		})
	}

	libs, err := listLibraries(fs, predecessor)
	if err != nil {
		return nil, err
	}

	for _, name := range libs {
		src := filepath.Join(predecessor, name)
		dst := filepath.Join(legacy, name)
		op := Operation{
			Type:       OpCopy,
			SourcePath: src,
			DestPath:   dst,
			RelPath:    filepath.Join(string(abi.Armeabi), name),
		}

		// a fresh legacy directory cannot hold anything yet
		if legacyExists && !mode.Overwrite {
			exists, err := fs.Exists(dst)
			if err != nil {
				return nil, fmt.Errorf("failed to check legacy library %s: %w", dst, err)
			}
			if exists {
				op.Type = OpKeep
			}
		}
		plan.AddOperation(op)
	}

	if mode.RemoveSource {
		plan.AddOperation(Operation{
			Type:     OpRemove,
			DestPath: predecessor,
			RelPath:  string(abi.Predecessor),
		})
	}

	return plan, nil
}

// listLibraries returns the sorted names of native libraries directly inside dir.
func listLibraries(fs fsops.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list predecessor directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), abi.LibrarySuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
