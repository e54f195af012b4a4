package agent

import (
	"errors"
	"reflect"
	"testing"

	"zfsbak/src/zfsapi"
)

func TestRestoreWithLegacyBaseOrdersWorkaroundBeforeReceive(t *testing.T) {
	fake := zfsapi.NewFake("tank/data", "tank/data@zfsbak-full-100")
	if err := Restore(fake, "tank/data", "100", nil); err != nil {
		t.Fatalf("restore: %v", err)
	}
	want := []string{
		"unmount tank/data",
		"rollback tank/data@zfsbak-full-100",
		"recv tank/data",
	}
	if !reflect.DeepEqual(fake.Calls, want) {
		t.Fatalf("unexpected call sequence: %v", fake.Calls)
	}
}

func TestRestoreWithoutLegacyBaseReceivesOnly(t *testing.T) {
	fake := zfsapi.NewFake("tank/data")
	if err := Restore(fake, "tank/data", "", nil); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !reflect.DeepEqual(fake.Calls, []string{"recv tank/data"}) {
		t.Fatalf("unexpected call sequence: %v", fake.Calls)
	}
}

func TestRestoreUnmountFailureStopsBeforeReceive(t *testing.T) {
	fake := zfsapi.NewFake("tank/data")
	fake.Errors["unmount"] = errors.New("volume busy")
	if err := Restore(fake, "tank/data", "100", nil); err == nil {
		t.Fatal("expected unmount error")
	}
	if !reflect.DeepEqual(fake.Calls, []string{"unmount tank/data"}) {
		t.Fatalf("receive must not start after a failed unmount: %v", fake.Calls)
	}
}

func TestRestoreRollbackFailureStopsBeforeReceive(t *testing.T) {
	fake := zfsapi.NewFake("tank/data")
	fake.Errors["rollback"] = errors.New("no such snapshot")
	if err := Restore(fake, "tank/data", "100", nil); err == nil {
		t.Fatal("expected rollback error")
	}
	want := []string{"unmount tank/data", "rollback tank/data@zfsbak-full-100"}
	if !reflect.DeepEqual(fake.Calls, want) {
		t.Fatalf("receive must not start after a failed rollback: %v", fake.Calls)
	}
}

func TestRestoreRejectsBadLegacyBase(t *testing.T) {
	fake := zfsapi.NewFake()
	err := Restore(fake, "tank/data", "abc", nil)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if len(fake.Calls) != 0 {
		t.Fatalf("store touched before validation: %v", fake.Calls)
	}
}

func TestRestoreRejectsEmptyVolume(t *testing.T) {
	fake := zfsapi.NewFake()
	err := Restore(fake, "", "", nil)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
}
