package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xinfeng-tech/flutter-libs/internal/engine"
	"github.com/xinfeng-tech/flutter-libs/internal/logging"
	"github.com/xinfeng-tech/flutter-libs/internal/watch"
)

var (
	watchOutputDir string
	watchDebounce  time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [variant]",
	Short: "Reconcile a variant again whenever armeabi-v7a changes",
	Long: `Watch one variant's native library output tree and re-run reconciliation
after armeabi-v7a libraries are added, rewritten or removed. Runs until
interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var variant string
		if len(args) == 1 {
			variant = args[0]
		}
		if variant == "" && watchOutputDir == "" {
			return fmt.Errorf("watch needs a variant name or --output-dir")
		}

		s, err := loadSession(watchOutputDir == "")
		if err != nil {
			return err
		}
		source, err := s.variantSource(watchOutputDir, variant)
		if err != nil {
			return err
		}
		if variant == "" {
			variant = "default"
		}
		dir, err := source.OutputDir(variant)
		if err != nil {
			return err
		}

		w, err := watch.New(dir, logging.GetLogger("watch"))
		if err != nil {
			return err
		}
		w.Debounce = watchDebounce

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eng := newEngine()
		PrintInfo(fmt.Sprintf("Watching %s (%s)", dir, s.settings.Strategy))
		return w.Run(ctx, func(ctx context.Context) error {
			result, err := eng.Reconcile(ctx, &engine.ReconcileRequest{
				Variant:   variant,
				OutputDir: dir,
				Settings:  s.settings,
			})
			if jsonOutput {
				_ = outputJSON(result)
			} else {
				printResult(result, false)
			}
			return err
		})
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "Native library output tree to watch instead of a manifest variant")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period after a change before reconciling")
}
