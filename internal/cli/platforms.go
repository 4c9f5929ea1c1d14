package cli

import (
	"github.com/spf13/cobra"

	"github.com/xinfeng-tech/flutter-libs/internal/abi"
)

type platformEntry struct {
	Platform string `json:"platform"`
	ABI      string `json:"abi"`
	Default  bool   `json:"default"`
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List known target platforms and their ABIs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := platformTable()

		if jsonOutput {
			return outputJSON(entries)
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			def := ""
			if e.Default {
				def = "yes"
			}
			rows = append(rows, []string{e.Platform, e.ABI, def})
		}
		PrintSection("Target Platforms")
		PrintTable([]string{"PLATFORM", "ABI", "DEFAULT"}, rows)
		PrintInfo("")
		PrintInfo("Legacy " + string(abi.Armeabi) + " is populated from " + string(abi.Predecessor) + " and never compiled.")
		return nil
	},
}

func platformTable() []platformEntry {
	defaults := make(map[abi.Platform]bool, len(abi.DefaultPlatforms))
	for _, p := range abi.DefaultPlatforms {
		defaults[p] = true
	}

	known := abi.KnownPlatforms()
	entries := make([]platformEntry, 0, len(known))
	for _, p := range known {
		name, _ := abi.ForPlatform(p)
		entries = append(entries, platformEntry{
			Platform: string(p),
			ABI:      string(name),
			Default:  defaults[p],
		})
	}
	return entries
}
