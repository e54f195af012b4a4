package zfsapi

import "strings"

// FakeClient is an in-memory implementation for unit tests. It keeps the
// store's flat row listing and records every call in order so tests can
// assert sequencing.
type FakeClient struct {
	Rows  []string
	Calls []string

	// Errors maps an operation name ("snapshot", "destroy", "unmount",
	// "rollback", "send", "recv") to a canned error returned by that
	// operation.
	Errors map[string]error

	// Received collects the streams applied by Receive, newest last.
	Received []string
}

func NewFake(rows ...string) *FakeClient {
	return &FakeClient{Rows: rows, Errors: map[string]error{}}
}

func (f *FakeClient) record(parts ...string) {
	f.Calls = append(f.Calls, strings.Join(parts, " "))
}

func (f *FakeClient) ListSnapshots() ([]string, error) {
	f.record("list")
	if err := f.Errors["list"]; err != nil {
		return nil, err
	}
	return append([]string(nil), f.Rows...), nil
}

func (f *FakeClient) CreateSnapshot(name string) error {
	f.record("snapshot", name)
	if err := f.Errors["snapshot"]; err != nil {
		return err
	}
	f.Rows = append(f.Rows, name)
	return nil
}

func (f *FakeClient) DestroySnapshot(name string) error {
	f.record("destroy", name)
	if err := f.Errors["destroy"]; err != nil {
		return err
	}
	for i, row := range f.Rows {
		if row == name {
			f.Rows = append(f.Rows[:i], f.Rows[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Name: name}
}

func (f *FakeClient) Unmount(volume string) error {
	f.record("unmount", volume)
	return f.Errors["unmount"]
}

func (f *FakeClient) Rollback(name string) error {
	f.record("rollback", name)
	return f.Errors["rollback"]
}

func (f *FakeClient) Send(snapshot string) error {
	f.record("send", snapshot)
	return f.Errors["send"]
}

func (f *FakeClient) SendIncremental(base, target string) error {
	f.record("send", "-i", base, target)
	return f.Errors["send"]
}

func (f *FakeClient) Receive(volume string) error {
	f.record("recv", volume)
	if err := f.Errors["recv"]; err != nil {
		return err
	}
	f.Received = append(f.Received, volume)
	return nil
}

// NotFoundError mimics the store rejecting an operation on a missing
// snapshot.
type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string { return "snapshot not found: " + e.Name }
