// Package agent implements the snapshot lifecycle controller: one action
// per invocation, no state beyond the snapshot names on the store itself.
package agent

import (
	"fmt"
	"io"

	"zfsbak/src/zfsapi"
)

// Action enumerates the agent's mutually exclusive operations.
type Action int

const (
	ActionList Action = iota
	ActionFull
	ActionIncremental
	ActionRestore
	ActionDelete
)

// Request is the closed variant dispatched by Run. Each action reads only
// its own fields:
//
//	List:        Pattern
//	Full:        Volume, Timestamp (new full timestamp)
//	Incremental: Volume, Timestamp (base full timestamp)
//	Restore:     Volume, LegacyBase (optional)
//	Delete:      Volume, Suffix
type Request struct {
	Action     Action
	Volume     string
	Timestamp  string
	LegacyBase string
	Suffix     string
	Pattern    string
}

// ArgumentError reports invalid caller input. It is always raised before
// any destructive call reaches the store.
type ArgumentError struct{ Reason string }

func (e *ArgumentError) Error() string { return e.Reason }

func argErrorf(format string, args ...any) error {
	return &ArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// Run executes exactly one action against the store and returns. Payload
// bytes go to stdout; human-readable operation feedback goes to statusOut.
func Run(client zfsapi.Client, req Request, stdout, statusOut io.Writer) error {
	switch req.Action {
	case ActionList:
		return List(client, req.Pattern, stdout)
	case ActionFull:
		return Full(client, req.Volume, req.Timestamp, statusOut)
	case ActionIncremental:
		return Incremental(client, req.Volume, req.Timestamp, statusOut)
	case ActionRestore:
		return Restore(client, req.Volume, req.LegacyBase, statusOut)
	case ActionDelete:
		return Delete(client, req.Volume, req.Suffix, statusOut)
	default:
		return argErrorf("unknown action %d", req.Action)
	}
}

func requireVolume(volume string) error {
	if volume == "" {
		return argErrorf("volume is required")
	}
	return nil
}
