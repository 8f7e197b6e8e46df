package state_test

import (
	"PoolLedger/internal/state"
	"reflect"
	"testing"
)

func TestWhitelist_CaseInsensitive(t *testing.T) {
	w := state.NewWhitelist()
	w.Seed("0xABCDEF", state.BootstrapAdminAddress)

	if !w.Contains("0xabcdef") {
		t.Error("lowercased lookup must match")
	}
	if !w.Contains("0xAbCdEf") {
		t.Error("mixed-case lookup must match")
	}
	if !w.Contains("0xA0916F957038344AFFF8C117B0A568562F73F0F2") {
		t.Error("bootstrap admin must match case-insensitively")
	}
	if w.Contains("0xother") {
		t.Error("unknown address must not match")
	}
}

func TestWhitelist_SeedSkipsEmpty(t *testing.T) {
	w := state.NewWhitelist()
	w.Seed("", "0xaaa")

	if w.Contains("") {
		t.Error("empty address must not be whitelisted")
	}
	if got := w.All(); !reflect.DeepEqual(got, []string{"0xaaa"}) {
		t.Errorf("members = %v, want [0xaaa]", got)
	}
}

func TestWhitelist_AllSorted(t *testing.T) {
	w := state.NewWhitelist()
	w.Seed("0xCCC", "0xaaa", "0xBBB")

	want := []string{"0xaaa", "0xbbb", "0xccc"}
	if got := w.All(); !reflect.DeepEqual(got, want) {
		t.Errorf("members = %v, want %v", got, want)
	}
}
