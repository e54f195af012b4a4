package zfsapi

import (
	"reflect"
	"testing"
)

// Argument vectors are the agent's injection boundary: every parameter must
// stay a discrete element.
func TestArgumentVectors(t *testing.T) {
	cases := []struct {
		got  []string
		want []string
	}{
		{listArgs(), []string{"list", "-H", "-o", "name", "-t", "filesystem,volume,snapshot"}},
		{snapshotArgs("tank/a@s"), []string{"snapshot", "tank/a@s"}},
		{destroyArgs("tank/a@s"), []string{"destroy", "tank/a@s"}},
		{unmountArgs("tank/a"), []string{"unmount", "tank/a"}},
		{rollbackArgs("tank/a@s"), []string{"rollback", "-r", "tank/a@s"}},
		{sendArgs("tank/a@s"), []string{"send", "tank/a@s"}},
		{sendIncrementalArgs("tank/a@base", "tank/a@incr"), []string{"send", "-i", "tank/a@base", "tank/a@incr"}},
		{receiveArgs("tank/a"), []string{"receive", "tank/a"}},
	}
	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("unexpected argv %v, want %v", tc.got, tc.want)
		}
	}
}

func TestArgumentVectorsKeepHostileNamesIntact(t *testing.T) {
	name := "tank/a b; rm -rf /@snap"
	args := snapshotArgs(name)
	if len(args) != 2 || args[1] != name {
		t.Fatalf("hostile name must stay one element: %v", args)
	}
}
