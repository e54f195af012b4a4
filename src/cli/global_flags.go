package cli

import (
	"github.com/spf13/cobra"

	"zfsbak/src/config"
	"zfsbak/src/safety"
)

// addGlobalFlags adds the persistent configuration and safety flags to the
// root command.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", config.DefaultPath, "Path to the agent configuration file")
	cmd.PersistentFlags().Bool("dry-run", false, "Show planned actions without making changes")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to prompts and run non-interactively")
}

// loadConfig reads the configuration named by --config.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(path)
}

// getSafetyOptions reads the global safety flags.
func getSafetyOptions(cmd *cobra.Command) safety.Options {
	dry, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	return safety.Options{DryRun: dry, Yes: yes}
}
