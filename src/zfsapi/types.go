package zfsapi

// Client is a narrow interface over the zfs command surface used by the
// agent. Keep it small and focused on what we actually need so it stays
// mockable.
//
// Metadata operations (list/create/destroy/unmount/rollback) run to
// completion and report errors directly. Transfer operations (Send,
// SendIncremental, Receive) hand the payload straight to the agent's own
// stdio; their errors carry the child process's exit status.
type Client interface {
	// ListSnapshots returns the store's flat listing: one row per
	// dataset ("tank/data") or snapshot ("tank/data@suffix"), in store
	// order.
	ListSnapshots() ([]string, error)

	CreateSnapshot(name string) error
	DestroySnapshot(name string) error
	Unmount(volume string) error
	Rollback(name string) error

	// Send streams the named snapshot to the agent's stdout.
	Send(snapshot string) error
	// SendIncremental streams the delta from base to target to the
	// agent's stdout.
	SendIncremental(base, target string) error
	// Receive applies a stream from the agent's stdin to the volume.
	Receive(volume string) error
}
