package state_test

import (
	"PoolLedger/internal/state"
	"testing"
)

func TestAppRegistry_AddAndGet(t *testing.T) {
	ar := state.NewAppRegistry()

	if err := ar.Add("app-a", "App A", "first app", tsUs); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	info := ar.Get("app-a")
	if info == nil {
		t.Fatal("expected info record")
	}
	if info.Name != "App A" || info.AddedAtUs != tsUs || !info.IsActive {
		t.Errorf("unexpected record: %+v", info)
	}
	if ar.Get("app-x") != nil {
		t.Error("unknown id must return nil")
	}
}

func TestAppRegistry_DuplicateAdd(t *testing.T) {
	ar := state.NewAppRegistry()

	if err := ar.Add("app-a", "App A", "", tsUs); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := ar.Add("app-a", "App A again", "", tsUs+1); err == nil {
		t.Fatal("expected duplicate error")
	}
	// Original record untouched
	if ar.Get("app-a").Name != "App A" {
		t.Error("duplicate add mutated the record")
	}
}

func TestAppRegistry_Remove(t *testing.T) {
	ar := state.NewAppRegistry()

	if err := ar.Remove("app-a"); err == nil {
		t.Fatal("expected error removing unknown app")
	}

	ar.Add("app-a", "App A", "", tsUs)
	if err := ar.Remove("app-a"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if ar.Exists("app-a") {
		t.Error("record must be gone after remove")
	}

	// Id can be re-registered after removal
	if err := ar.Add("app-a", "App A v2", "", tsUs+1); err != nil {
		t.Errorf("re-add after remove failed: %v", err)
	}
}

func TestAppRegistry_AllSorted(t *testing.T) {
	ar := state.NewAppRegistry()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		ar.Add(id, id, "", tsUs)
	}

	all := ar.All()
	want := []string{"alpha", "mid", "zeta"}
	if len(all) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(all))
	}
	for i, info := range all {
		if info.AppID != want[i] {
			t.Errorf("all[%d] = %s, want %s", i, info.AppID, want[i])
		}
	}
}
