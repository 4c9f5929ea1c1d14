package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xinfeng-tech/flutter-libs/internal/config"
	"github.com/xinfeng-tech/flutter-libs/internal/logging"
)

var (
	// Global flags
	jsonOutput bool
	cfgFile    string

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// boundFlags maps persistent flags to the config keys they override.
var boundFlags = map[string]string{
	"target-platform": config.KeyTargetPlatform,
	"split-per-abi":   config.KeySplitPerABI,
	"support-armeabi": config.KeySupportArmeabi,
	"project":         config.KeyProject,
	"verbose":         config.KeyVerbose,
	"json":            config.KeyJSON,
}

// rootCmd is the root command for abisync.
var rootCmd = &cobra.Command{
	Use:     "abisync",
	Version: "dev",
	Short:   "Legacy armeabi reconciliation for Android native library trees",
	Long: `abisync keeps the legacy armeabi directory of an Android native library tree
in step with armeabi-v7a.

Run it after the native-packaging task of a build variant and before the
artifact is finalized. The reconciliation strategy comes from the
support_armeabi property or the supportArmeabi project setting.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion sets the version printed by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// initConfig layers flags over environment and config file, then sets up logging.
func initConfig(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()
	for name, key := range boundFlags {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	if err := config.Setup(cfgFile); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	logging.SetupLogger(viper.GetInt(config.KeyVerbose))
	jsonOutput = viper.GetBool(config.KeyJSON)
	return nil
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	pf.StringVar(&cfgFile, "config", "", "Config file (default .abisync.yaml)")
	pf.StringP("project", "p", "", "Project manifest or directory (default: search upwards for abisync.toml)")
	pf.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")

	// Build properties
	pf.String("target-platform", "", "Comma-separated target platforms (default android-arm,android-arm64)")
	pf.Bool("split-per-abi", false, "Build one artifact per ABI; disables reconciliation")
	pf.String("support-armeabi", "", "Reconciliation strategy: 0 none, 1 copy, 2 move, 3 override")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "reconciliation",
		Title: "Reconciliation:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspection",
		Title: "Inspection:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the abisync CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				target = cmd.Root()
			}
			_ = target.Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for abisync for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(os.Stdout, true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Reconciliation commands
	reconcileCmd.GroupID = "reconciliation"
	planCmd.GroupID = "reconciliation"
	watchCmd.GroupID = "reconciliation"
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(watchCmd)

	// Inspection commands
	resolveCmd.GroupID = "inspection"
	platformsCmd.GroupID = "inspection"
	variantsCmd.GroupID = "inspection"
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(variantsCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
