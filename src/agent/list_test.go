package agent

import (
	"bytes"
	"errors"
	"testing"

	"zfsbak/src/zfsapi"
)

func TestListGroupsAndFilters(t *testing.T) {
	fake := zfsapi.NewFake("a@x", "a@y", "b")
	var out bytes.Buffer
	if err := List(fake, "a", &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.String() != "a [x,y]\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestListEmptyBracketsForSnapshotlessVolume(t *testing.T) {
	fake := zfsapi.NewFake("tank/plain")
	var out bytes.Buffer
	if err := List(fake, "tank", &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.String() != "tank/plain []\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestListSortsVolumesAndKeepsSuffixOrder(t *testing.T) {
	fake := zfsapi.NewFake(
		"tank/b@late",
		"tank/a@second",
		"tank/b@early",
		"tank/a",
		"tank/a@first",
	)
	var out bytes.Buffer
	if err := List(fake, "tank/", &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "tank/a [second,first]\ntank/b [late,early]\n"
	if out.String() != want {
		t.Fatalf("unexpected output: %q, want %q", out.String(), want)
	}
}

func TestListMatchesVolumeComponentOnly(t *testing.T) {
	// The suffix matches the pattern but the volume does not; the row
	// must be excluded.
	fake := zfsapi.NewFake("b@alpha", "alpha@x")
	var out bytes.Buffer
	if err := List(fake, "alpha", &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.String() != "alpha [x]\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestListUnanchoredMatch(t *testing.T) {
	fake := zfsapi.NewFake("tank/data@s1", "pool/other")
	var out bytes.Buffer
	if err := List(fake, "data", &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.String() != "tank/data [s1]\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestListEmptyPatternMatchesAll(t *testing.T) {
	fake := zfsapi.NewFake("b", "a@x")
	var out bytes.Buffer
	if err := List(fake, "", &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.String() != "a [x]\nb []\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestListIdempotent(t *testing.T) {
	fake := zfsapi.NewFake("tank/a@s2", "tank/a@s1", "tank/b")
	var first, second bytes.Buffer
	if err := List(fake, "tank", &first); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if err := List(fake, "tank", &second); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("output not stable: %q vs %q", first.String(), second.String())
	}
}

func TestListInvalidPattern(t *testing.T) {
	fake := zfsapi.NewFake()
	var out bytes.Buffer
	err := List(fake, "(", &out)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if len(fake.Calls) != 0 {
		t.Fatalf("store should not be queried for a bad pattern: %v", fake.Calls)
	}
}

func TestListPropagatesStoreError(t *testing.T) {
	fake := zfsapi.NewFake()
	fake.Errors["list"] = errors.New("pool busy")
	var out bytes.Buffer
	if err := List(fake, "", &out); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
