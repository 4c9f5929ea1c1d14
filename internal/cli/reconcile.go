package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xinfeng-tech/flutter-libs/internal/engine"
	"github.com/xinfeng-tech/flutter-libs/internal/planner"
)

var (
	reconcileDryRun    bool
	reconcileOutputDir string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [variant...]",
	Short: "Populate the legacy armeabi directory of one or more variants",
	Long: `Reconcile the native library tree of each named build variant, or of every
variant declared in the project manifest when none are named.

With --output-dir the tree is given directly and no manifest is needed; the
optional single argument then only labels the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := runReconcile(cmd.Context(), args, reconcileOutputDir, reconcileDryRun)
		if jsonOutput {
			if jerr := outputJSON(results); jerr != nil {
				return jerr
			}
			return err
		}

		for _, result := range results {
			printResult(result, reconcileDryRun)
		}
		return err
	},
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Show what would be done without touching the tree")
	reconcileCmd.Flags().StringVarP(&reconcileOutputDir, "output-dir", "o", "", "Native library output tree to reconcile instead of manifest variants")
}

// runReconcile resolves settings once and reconciles the selected variants.
func runReconcile(ctx context.Context, args []string, outputDir string, dryRun bool) ([]*engine.ReconcileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var label string
	if outputDir != "" {
		if len(args) > 1 {
			return nil, fmt.Errorf("--output-dir accepts at most one variant name, got %d", len(args))
		}
		if len(args) == 1 {
			label = args[0]
		}
	}

	s, err := loadSession(outputDir == "")
	if err != nil {
		return nil, err
	}

	source, err := s.variantSource(outputDir, label)
	if err != nil {
		return nil, err
	}

	req := &engine.ReconcileAllRequest{
		Source:   source,
		Settings: s.settings,
		DryRun:   dryRun,
	}
	if outputDir == "" {
		req.Variants = args
	}

	return newEngine().ReconcileAll(ctx, req)
}

// printResult renders one variant's outcome.
func printResult(result *engine.ReconcileResult, dryRun bool) {
	title := fmt.Sprintf("Variant %s", result.Variant)
	PrintSection(title)
	if result.OutputDir != "" {
		PrintLabelValue("Output", result.OutputDir)
	}
	PrintLabelValue("Strategy", result.Strategy.String())

	switch result.State {
	case engine.StateFailed:
		PrintError(result.Error)
		return
	case engine.StateSkipped:
		PrintWarning(fmt.Sprintf("Skipped: %s", result.Plan.SkipReason))
		return
	}

	if dryRun {
		PrintInfo(fmt.Sprintf("Would run %s", PrintCount(len(result.Plan.Operations), "operation", "operations")))
		if len(result.Plan.Operations) > 0 {
			PrintSubsection("Operations:")
			PrintList(describeOperations(result.Plan.Operations), 1)
		}
		return
	}

	PrintSuccess(fmt.Sprintf("Reconciled with %s in %s",
		PrintCount(len(result.Applied), "operation", "operations"), result.Duration().Round(time.Millisecond)))
	if len(result.Checksums) > 0 {
		rows := make([][]string, 0, len(result.Checksums))
		for _, op := range result.Applied {
			if sum, ok := result.Checksums[op.RelPath]; ok {
				rows = append(rows, []string{op.RelPath, sum})
			}
		}
		PrintTable([]string{"LIBRARY", "SHA-256"}, rows)
	}
}

// describeOperations renders plan operations one per line.
func describeOperations(ops []planner.Operation) []string {
	lines := make([]string, 0, len(ops))
	for _, op := range ops {
		var line string
		switch op.Type {
		case planner.OpMkdir:
			line = fmt.Sprintf("mkdir: %s", op.RelPath)
		case planner.OpCopy:
			line = fmt.Sprintf("copy: %s", op.RelPath)
		case planner.OpKeep:
			line = fmt.Sprintf("keep: %s (already present)", op.RelPath)
		case planner.OpRemove:
			line = fmt.Sprintf("remove: %s", op.RelPath)
		default:
			line = fmt.Sprintf("%s: %s", op.Type, op.RelPath)
		}
		lines = append(lines, line)
	}
	return lines
}
