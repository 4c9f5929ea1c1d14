package engine

import (
	"time"

	"github.com/xinfeng-tech/flutter-libs/internal/abi"
	"github.com/xinfeng-tech/flutter-libs/internal/planner"
	"github.com/xinfeng-tech/flutter-libs/internal/strategy"
)

// State is the lifecycle position of one variant's reconciliation.
type State string

const (
	StateUnresolved State = "unresolved"
	StateResolved   State = "resolved"
	StateReconciled State = "reconciled"
	StateSkipped    State = "skipped"
	StateFailed     State = "failed"
)

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateReconciled || s == StateSkipped || s == StateFailed
}

// SettingsInput holds the raw configuration values Settings are derived from.
type SettingsInput struct {
	// TargetPlatform is the comma-separated platform list; nil means not configured
	TargetPlatform *string

	// Flags feed the strategy selector
	Flags strategy.Flags
}

// Settings is the resolved, immutable configuration for a build. It is
// computed once before any variant is reconciled.
type Settings struct {
	ABIs     abi.Set
	Strategy strategy.Strategy
}

// ReconcileRequest represents a request to reconcile one variant's output tree.
type ReconcileRequest struct {
	// Variant is the build variant name (informational)
	Variant string

	// OutputDir is the variant's native library output root (absolute)
	OutputDir string

	// Settings are the resolved ABIs and strategy
	Settings Settings

	// DryRun performs planning only without making changes
	DryRun bool
}

// ReconcileAllRequest represents a request to reconcile several variants.
type ReconcileAllRequest struct {
	// Source resolves variants to output directories
	Source VariantSource

	// Variants limits the run to these names; empty means every variant in Source
	Variants []string

	// Settings are the resolved ABIs and strategy
	Settings Settings

	// DryRun performs planning only without making changes
	DryRun bool
}

// ReconcileResult represents the outcome of reconciling one variant.
type ReconcileResult struct {
	Variant   string
	OutputDir string
	State     State
	Strategy  strategy.Strategy

	// Plan is the generated plan (nil if planning failed)
	Plan *planner.ReconcilePlan `json:",omitempty"`

	// Applied is the list of operations that were executed (empty if DryRun)
	Applied []planner.Operation

	// Checksums maps each legacy library written, relative to OutputDir, to its SHA-256
	Checksums map[string]string `json:",omitempty"`

	// Error is the failure message when State is failed
	Error string `json:",omitempty"`

	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the reconciliation took.
func (r *ReconcileResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
