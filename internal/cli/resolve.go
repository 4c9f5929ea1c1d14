package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// resolveOutput is the JSON shape of the resolve command.
type resolveOutput struct {
	ABIs         []string `json:"abis"`
	PackagedABIs []string `json:"packagedAbis"`
	Strategy     string   `json:"strategy"`
	Enabled      bool     `json:"enabled"`
	Overwrite    bool     `json:"overwrite"`
	RemoveSource bool     `json:"removeSource"`
	Project      string   `json:"project,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the resolved ABIs and reconciliation strategy",
	Long: `Resolve the target platform list and reconciliation strategy from flags,
environment, config file and project manifest, without touching any output tree.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(false)
		if err != nil {
			return err
		}

		mode := s.settings.Strategy.Mode()
		out := resolveOutput{
			ABIs:         s.settings.ABIs.Strings(),
			PackagedABIs: s.settings.PackagedABIs().Strings(),
			Strategy:     s.settings.Strategy.String(),
			Enabled:      mode.Enabled,
			Overwrite:    mode.Overwrite,
			RemoveSource: mode.RemoveSource,
		}
		if s.project != nil {
			out.Project = s.project.Root()
		}

		if jsonOutput {
			return outputJSON(out)
		}

		PrintSection("Resolved Settings")
		PrintLabelValue("ABIs", strings.Join(out.ABIs, ", "))
		PrintLabelValue("Packaged ABIs", strings.Join(out.PackagedABIs, ", "))
		PrintLabelValue("Strategy", fmt.Sprintf("%s (%d)", out.Strategy, int(s.settings.Strategy)))
		PrintLabelValue("Overwrite", fmt.Sprintf("%v", out.Overwrite))
		PrintLabelValue("Remove source", fmt.Sprintf("%v", out.RemoveSource))
		if out.Project != "" {
			PrintLabelValue("Project", out.Project)
		}
		return nil
	},
}
