package cli

import (
	"io"

	"github.com/spf13/cobra"

	"zfsbak/src/agent"
)

func newListCmd(newClient ClientFactory, stdout io.Writer) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matching volumes and their backup snapshots",
		Long:  "Prints one line per volume whose name matches the configured pattern, as 'name [suffix1,suffix2]'. Output is sorted by volume and stable across runs for unchanged store state.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("pattern") {
				pattern = cfg.Pattern
			}
			req := agent.Request{Action: agent.ActionList, Pattern: pattern}
			return agent.Run(newClient(cfg), req, stdout, nil)
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", "", "Override the configured volume filter regexp")
	return cmd
}
