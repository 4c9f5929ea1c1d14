package cli

import (
	"github.com/spf13/cobra"
)

type variantEntry struct {
	Name         string `json:"name"`
	NativeTask   string `json:"nativeTask,omitempty"`
	FinalizeTask string `json:"finalizeTask,omitempty"`
	OutputDir    string `json:"outputDir,omitempty"`
	Error        string `json:"error,omitempty"`
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List manifest variants and their native library output trees",
	Long: `List the build variants declared in the project manifest, the task each
reconciliation runs after and before, and the output tree it resolves to.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(true)
		if err != nil {
			return err
		}

		names, err := s.project.Variants()
		if err != nil {
			return err
		}

		entries := make([]variantEntry, 0, len(names))
		for _, name := range names {
			v, _ := s.project.Variant(name)
			entry := variantEntry{
				Name:         name,
				NativeTask:   v.NativeTask,
				FinalizeTask: v.FinalizeTask,
			}
			if dir, err := s.project.OutputDir(name); err != nil {
				entry.Error = err.Error()
			} else {
				entry.OutputDir = dir
			}
			entries = append(entries, entry)
		}

		if jsonOutput {
			return outputJSON(entries)
		}

		PrintSection("Variants")
		if len(entries) == 0 {
			PrintEmptyState("No variants declared in " + s.project.Root())
			return nil
		}
		for _, e := range entries {
			PrintSubsection(e.Name)
			PrintLabelValue("After", orDash(e.NativeTask))
			PrintLabelValue("Before", orDash(e.FinalizeTask))
			if e.Error != "" {
				PrintLabelValueWithColor("Output", e.Error, errorColor)
			} else {
				PrintLabelValue("Output", e.OutputDir)
			}
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
