package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"zfsbak/src/agent"
	"zfsbak/src/naming"
	"zfsbak/src/safety"
	"zfsbak/src/util/status"
)

func newDestroyCmd(newClient ClientFactory, stdin io.Reader, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "destroy <volume> <suffix>",
		Short: "Destroy one agent-managed backup snapshot",
		Long:  "Destroys <volume>@<suffix>. The suffix must be the incremental marker or a well-formed full marker; anything else is rejected before the store is touched.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			volume, suffix := args[0], args[1]
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Reject unmanaged suffixes before prompting or planning.
			if !naming.IsManaged(suffix) {
				return &agent.ArgumentError{Reason: fmt.Sprintf("refusing to destroy unmanaged snapshot suffix %q", suffix)}
			}
			opts := getSafetyOptions(cmd)
			snap := naming.SnapshotName(volume, suffix)
			if opts.DryRun {
				status.Stepf(stderr, "dry-run", "would destroy %s", snap)
				return nil
			}
			ok, err := safety.Confirm(opts, stdin, stderr, "Destroy "+snap+"?")
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("aborted: %s not destroyed", snap)
			}
			req := agent.Request{Action: agent.ActionDelete, Volume: volume, Suffix: suffix}
			return agent.Run(newClient(cfg), req, cmd.OutOrStdout(), stderr)
		},
	}
}
