package cli

import (
	"io"

	"github.com/spf13/cobra"

	"zfsbak/src/agent"
	"zfsbak/src/naming"
	"zfsbak/src/util/status"
)

func newFullCmd(newClient ClientFactory, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "full <volume> <timestamp>",
		Short: "Create a full-backup snapshot and stream it to stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			volume, timestamp := args[0], args[1]
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if getSafetyOptions(cmd).DryRun {
				status.Stepf(stderr, "dry-run", "would snapshot and send %s", naming.SnapshotName(volume, naming.FullSuffix(timestamp)))
				return nil
			}
			req := agent.Request{Action: agent.ActionFull, Volume: volume, Timestamp: timestamp}
			return agent.Run(newClient(cfg), req, cmd.OutOrStdout(), stderr)
		},
	}
}

func newIncrCmd(newClient ClientFactory, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "incr <volume> <base-timestamp>",
		Short: "Stream an incremental backup against an earlier full snapshot",
		Long:  "Replaces the volume's incremental marker snapshot and streams the delta from the full snapshot at <base-timestamp> to stdout. The base must have been created by a previous 'full' run.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			volume, base := args[0], args[1]
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if getSafetyOptions(cmd).DryRun {
				status.Stepf(stderr, "dry-run", "would send delta %s -> %s",
					naming.SnapshotName(volume, naming.FullSuffix(base)),
					naming.SnapshotName(volume, naming.IncrSuffix))
				return nil
			}
			req := agent.Request{Action: agent.ActionIncremental, Volume: volume, Timestamp: base}
			return agent.Run(newClient(cfg), req, cmd.OutOrStdout(), stderr)
		},
	}
}
