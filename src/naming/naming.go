// Package naming defines the snapshot-suffix grammar shared between the
// agent and its orchestrator. Snapshot names are the only state visible
// across invocations, so the grammar here is a wire format: change it and
// every existing backup chain becomes unreadable.
package naming

import "regexp"

const (
	// FullPrefix starts every full-backup snapshot suffix; the remainder
	// is a digit-string timestamp chosen by the orchestrator.
	FullPrefix = "zfsbak-full-"

	// IncrSuffix is the single, fixed suffix of the incremental marker
	// snapshot. It is replaced on every incremental cycle, never
	// accumulated.
	IncrSuffix = "zfsbak-incr"
)

var (
	timestampRe = regexp.MustCompile(`^[0-9]+$`)
	fullRe      = regexp.MustCompile(`^` + FullPrefix + `[0-9]+$`)
)

// ValidTimestamp reports whether s is one or more digits and nothing else.
func ValidTimestamp(s string) bool {
	return timestampRe.MatchString(s)
}

// FullSuffix returns the full-marker suffix for the given timestamp. The
// caller is expected to have validated the timestamp first.
func FullSuffix(timestamp string) string {
	return FullPrefix + timestamp
}

// IsManaged reports whether suffix belongs to this agent: either the
// incremental marker or a well-formed full marker. Everything else is a
// user-created snapshot the agent must never touch.
func IsManaged(suffix string) bool {
	return suffix == IncrSuffix || fullRe.MatchString(suffix)
}

// SnapshotName joins a volume and a suffix into the storage system's
// volume@suffix form.
func SnapshotName(volume, suffix string) string {
	return volume + "@" + suffix
}
