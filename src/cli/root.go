package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"zfsbak/src/config"
	"zfsbak/src/zfsapi"
)

// ClientFactory builds the storage client once the configuration is known.
// Tests substitute a fake.
type ClientFactory func(cfg config.Config) zfsapi.Client

// NewRootCmd returns the root cobra command for the zfsbak agent.
func NewRootCmd(newClient ClientFactory, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "zfsbak",
		Short:         "Snapshot-based full and incremental ZFS backup agent",
		Long:          "zfsbak performs exactly one backup, restore, list, or cleanup action per invocation, driven by an external orchestrator. Backup-chain state lives only in snapshot names on the storage system.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newListCmd(newClient, stdout))
	cmd.AddCommand(newFullCmd(newClient, stderr))
	cmd.AddCommand(newIncrCmd(newClient, stderr))
	cmd.AddCommand(newRestoreCmd(newClient, stderr))
	cmd.AddCommand(newDestroyCmd(newClient, stdin, stderr))
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// Execute runs the CLI with the process stdio and returns the exit code.
// A failed send/receive child propagates its own exit status; any other
// error exits 1.
func Execute() int {
	factory := func(cfg config.Config) zfsapi.Client {
		return zfsapi.NewReal(cfg.ZFSPath)
	}
	root := NewRootCmd(factory, os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}
