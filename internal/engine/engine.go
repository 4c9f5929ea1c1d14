// Package engine provides the core reconciliation logic for abisync.
//
// The engine sits between the CLI and the lower-level packages. It resolves
// configuration into Settings once, asks the planner what a variant's output
// tree needs, and executes that plan through the injected filesystem.
//
// Key components:
//   - Engine: orchestrator holding the filesystem, hasher, clock and logger
//   - ResolveSettings: platform and strategy resolution, before any I/O
//   - Reconcile/ReconcileAll: per-variant legacy ABI materialization
//   - VariantSource: injected lookup of variants and their output trees
package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/xinfeng-tech/flutter-libs/internal/clock"
	"github.com/xinfeng-tech/flutter-libs/internal/fsops"
	"github.com/xinfeng-tech/flutter-libs/internal/hash"
	"github.com/xinfeng-tech/flutter-libs/internal/planner"
)

// Engine orchestrates reconciliation. It keeps no per-variant state, so a
// single Engine may reconcile disjoint output trees from several goroutines.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	logger zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, logger zerolog.Logger) *Engine {
	return &Engine{
		fs:     fs,
		hasher: hasher,
		clock:  clk,
		logger: logger,
	}
}

// executeOperation executes a single operation.
func (e *Engine) executeOperation(op planner.Operation) error {
	switch op.Type {
	case planner.OpMkdir:
		return e.fs.MkdirAll(op.DestPath, 0755)
	case planner.OpCopy:
		return e.fs.CopyFile(op.SourcePath, op.DestPath)
	case planner.OpKeep:
		return nil
	case planner.OpRemove:
		return e.fs.RemoveAll(op.DestPath)
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}
