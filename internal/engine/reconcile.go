package engine

import (
	"context"
	"fmt"

	"github.com/xinfeng-tech/flutter-libs/internal/logging"
	"github.com/xinfeng-tech/flutter-libs/internal/planner"
)

// Reconcile populates the legacy ABI directory of one variant's output tree.
//
// Algorithm steps:
// 1. Build a plan (skipped when the strategy is none or the predecessor is missing)
// 2. Return the plan untouched if DryRun
// 3. Execute operations in order, recording a checksum per copied library
// 4. Stop at the first failure; files already copied are left in place
//
// The returned result is non-nil even when an error is returned.
func (e *Engine) Reconcile(ctx context.Context, req *ReconcileRequest) (*ReconcileResult, error) {
	result := &ReconcileResult{
		Variant:   req.Variant,
		OutputDir: req.OutputDir,
		State:     StateResolved,
		Strategy:  req.Settings.Strategy,
		Applied:   []planner.Operation{},
		StartedAt: e.clock.Now(),
	}
	logger := e.logger.With().
		Str("variant", req.Variant).
		Str("strategy", req.Settings.Strategy.String()).
		Logger()

	fail := func(err error) (*ReconcileResult, error) {
		result.State = StateFailed
		result.Error = err.Error()
		result.FinishedAt = e.clock.Now()
		logger.Error().Err(err).Msg("Reconciliation failed")
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	plan, err := planner.BuildReconcilePlan(req.OutputDir, req.Settings.Strategy, e.fs)
	if err != nil {
		return fail(&IOError{Op: "plan", Path: req.OutputDir, Err: err})
	}
	result.Plan = plan

	if plan.Skipped() {
		result.State = StateSkipped
		result.FinishedAt = e.clock.Now()
		logger.Info().Str("reason", plan.SkipReason).Msg("Reconciliation skipped")
		return result, nil
	}

	if req.DryRun {
		result.FinishedAt = e.clock.Now()
		logger.Debug().Int("operations", len(plan.Operations)).Msg("Dry run planned")
		return result, nil
	}

	for _, op := range plan.Operations {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		logger.Debug().Str("op", op.Type).Str("path", op.RelPath).Msg("Executing operation")
		if err := e.executeOperation(op); err != nil {
			return fail(&IOError{Op: op.Type, Path: op.DestPath, Err: err})
		}
		result.Applied = append(result.Applied, op)

		if op.Type == planner.OpCopy {
			sum, err := e.hasher.HashFile(op.DestPath)
			if err != nil {
				return fail(&IOError{Op: "hash", Path: op.DestPath, Err: err})
			}
			if result.Checksums == nil {
				result.Checksums = make(map[string]string)
			}
			result.Checksums[op.RelPath] = sum
		}
	}

	result.State = StateReconciled
	result.FinishedAt = e.clock.Now()
	logger.Info().
		Int("copied", plan.Count(planner.OpCopy)).
		Int("kept", plan.Count(planner.OpKeep)).
		Bool("removed_predecessor", plan.Count(planner.OpRemove) > 0).
		Msg("Reconciled legacy ABI")
	return result, nil
}

// ReconcileAll reconciles each variant in turn. Variants are independent, but
// the run stops at the first failure the way a build would; the results
// gathered so far, including the failed one, are returned with the error.
func (e *Engine) ReconcileAll(ctx context.Context, req *ReconcileAllRequest) ([]*ReconcileResult, error) {
	done := logging.LogOperationStart(e.logger, "reconcile_all")
	defer done()

	variants := req.Variants
	if len(variants) == 0 {
		listed, err := req.Source.Variants()
		if err != nil {
			return nil, fmt.Errorf("failed to list variants: %w", err)
		}
		variants = listed
	}

	results := make([]*ReconcileResult, 0, len(variants))
	for _, variant := range variants {
		dir, err := resolveOutputDir(req.Source, variant)
		if err != nil {
			now := e.clock.Now()
			results = append(results, &ReconcileResult{
				Variant:    variant,
				State:      StateFailed,
				Strategy:   req.Settings.Strategy,
				Applied:    []planner.Operation{},
				Error:      err.Error(),
				StartedAt:  now,
				FinishedAt: now,
			})
			return results, err
		}

		result, err := e.Reconcile(ctx, &ReconcileRequest{
			Variant:   variant,
			OutputDir: dir,
			Settings:  req.Settings,
			DryRun:    req.DryRun,
		})
		results = append(results, result)
		if err != nil {
			return results, fmt.Errorf("variant %s: %w", variant, err)
		}
	}

	return results, nil
}
