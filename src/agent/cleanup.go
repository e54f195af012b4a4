package agent

import (
	"io"

	"zfsbak/src/naming"
	"zfsbak/src/util/status"
	"zfsbak/src/zfsapi"
)

// Delete destroys exactly one agent-managed snapshot. The suffix whitelist
// is the sole safety mechanism keeping user-created snapshots out of
// reach: anything outside the two marker grammars is rejected before the
// store sees a destroy.
func Delete(client zfsapi.Client, volume, suffix string, statusOut io.Writer) error {
	if err := requireVolume(volume); err != nil {
		return err
	}
	if !naming.IsManaged(suffix) {
		return argErrorf("refusing to destroy unmanaged snapshot suffix %q", suffix)
	}

	snap := naming.SnapshotName(volume, suffix)
	status.Stepf(statusOut, "destroy", "%s", snap)
	return client.DestroySnapshot(snap)
}
