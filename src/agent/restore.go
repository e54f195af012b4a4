package agent

import (
	"io"

	"zfsbak/src/naming"
	"zfsbak/src/util/status"
	"zfsbak/src/zfsapi"
)

// Restore applies a stream from the agent's stdin to the volume. When
// legacyBase is set, the volume is unmounted and rolled back to the full
// snapshot at that timestamp first, in that order and to completion,
// before any input is consumed. That clears state a prior receive leaves
// behind that would otherwise block an incremental apply.
func Restore(client zfsapi.Client, volume, legacyBase string, statusOut io.Writer) error {
	if err := requireVolume(volume); err != nil {
		return err
	}
	if legacyBase != "" {
		if !naming.ValidTimestamp(legacyBase) {
			return argErrorf("legacy base must be one or more digits, got %q", legacyBase)
		}
		base := naming.SnapshotName(volume, naming.FullSuffix(legacyBase))
		status.Stepf(statusOut, "unmount", "%s", volume)
		if err := client.Unmount(volume); err != nil {
			return err
		}
		status.Stepf(statusOut, "rollback", "%s", base)
		if err := client.Rollback(base); err != nil {
			return err
		}
	}

	status.Stepf(statusOut, "recv", "%s", volume)
	return client.Receive(volume)
}
