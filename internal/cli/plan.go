package cli

import (
	"github.com/spf13/cobra"
)

var planOutputDir string

var planCmd = &cobra.Command{
	Use:   "plan [variant...]",
	Short: "Show the operations reconcile would perform",
	Long: `Plan reconciliation for each named variant (or every manifest variant)
without touching the output tree. Equivalent to 'reconcile --dry-run'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := runReconcile(cmd.Context(), args, planOutputDir, true)
		if jsonOutput {
			if jerr := outputJSON(results); jerr != nil {
				return jerr
			}
			return err
		}

		for _, result := range results {
			printResult(result, true)
		}
		return err
	},
}

func init() {
	planCmd.Flags().StringVarP(&planOutputDir, "output-dir", "o", "", "Native library output tree to plan instead of manifest variants")
}
