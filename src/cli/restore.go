package cli

import (
	"io"

	"github.com/spf13/cobra"

	"zfsbak/src/agent"
	"zfsbak/src/util/status"
)

func newRestoreCmd(newClient ClientFactory, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <volume> [legacy-base]",
		Short: "Apply a backup stream from stdin to a volume",
		Long:  "Reads a serialized snapshot stream from stdin and applies it to <volume>. With [legacy-base], the volume is first unmounted and rolled back to the full snapshot at that timestamp, clearing state a prior receive leaves behind.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			volume := args[0]
			legacyBase := ""
			if len(args) == 2 {
				legacyBase = args[1]
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if getSafetyOptions(cmd).DryRun {
				status.Stepf(stderr, "dry-run", "would receive stream into %s", volume)
				return nil
			}
			req := agent.Request{Action: agent.ActionRestore, Volume: volume, LegacyBase: legacyBase}
			return agent.Run(newClient(cfg), req, cmd.OutOrStdout(), stderr)
		},
	}
}
