package agent

import (
	"io"

	"zfsbak/src/naming"
	"zfsbak/src/util/status"
	"zfsbak/src/zfsapi"
)

// Full snapshots the volume at the given timestamp and streams that exact
// snapshot to the agent's stdout. The snapshot exists before the stream
// starts, so the bytes the orchestrator records are consistent with the
// name it recorded.
func Full(client zfsapi.Client, volume, timestamp string, statusOut io.Writer) error {
	if err := requireVolume(volume); err != nil {
		return err
	}
	if !naming.ValidTimestamp(timestamp) {
		return argErrorf("timestamp must be one or more digits, got %q", timestamp)
	}

	snap := naming.SnapshotName(volume, naming.FullSuffix(timestamp))
	status.Stepf(statusOut, "snapshot", "create %s", snap)
	// Creation failure is not checked here; it surfaces from the send.
	_ = client.CreateSnapshot(snap)

	status.Stepf(statusOut, "send", "%s", snap)
	return client.Send(snap)
}

// Incremental replaces the volume's incremental marker snapshot and
// streams the delta from the full snapshot at the base timestamp to the
// fresh marker. The base is not checked for existence: a missing base
// fails inside the store's send and propagates unmodified.
func Incremental(client zfsapi.Client, volume, baseTimestamp string, statusOut io.Writer) error {
	if err := requireVolume(volume); err != nil {
		return err
	}
	if !naming.ValidTimestamp(baseTimestamp) {
		return argErrorf("base timestamp must be one or more digits, got %q", baseTimestamp)
	}

	base := naming.SnapshotName(volume, naming.FullSuffix(baseTimestamp))
	marker := naming.SnapshotName(volume, naming.IncrSuffix)

	status.Stepf(statusOut, "snapshot", "replace %s", marker)
	// The marker may not exist yet; creation failure surfaces from the
	// send.
	_ = client.DestroySnapshot(marker)
	_ = client.CreateSnapshot(marker)

	status.Stepf(statusOut, "send", "-i %s %s", base, marker)
	return client.SendIncremental(base, marker)
}
