package state_test

import (
	"PoolLedger/internal/state"
	"testing"
)

const (
	dayUs   = int64(24) * 60 * 60 * 1_000_000
	weekUs  = 7 * dayUs
	monthUs = 30 * dayUs
)

func newScheduler(genesisUs int64) *state.ResetScheduler {
	rs := state.NewResetScheduler(dayUs, weekUs, monthUs)
	rs.Initialize(genesisUs)
	return rs
}

func TestResetScheduler_NothingDueEarly(t *testing.T) {
	rs := newScheduler(tsUs)

	if due := rs.DueWindows(tsUs + dayUs - 1); len(due) != 0 {
		t.Errorf("expected nothing due, got %v", due)
	}
}

func TestResetScheduler_WindowsFireIndependently(t *testing.T) {
	rs := newScheduler(tsUs)

	due := rs.DueWindows(tsUs + dayUs)
	if len(due) != 1 || due[0] != state.WindowDaily {
		t.Fatalf("expected [daily], got %v", due)
	}

	due = rs.DueWindows(tsUs + weekUs)
	want := []state.Window{state.WindowDaily, state.WindowWeekly}
	if len(due) != 2 || due[0] != want[0] || due[1] != want[1] {
		t.Fatalf("expected [daily weekly], got %v", due)
	}

	due = rs.DueWindows(tsUs + monthUs)
	if len(due) != 3 {
		t.Fatalf("expected all three windows due, got %v", due)
	}
}

func TestResetScheduler_MarkResetAdvancesOneRegister(t *testing.T) {
	rs := newScheduler(tsUs)
	nowUs := tsUs + weekUs

	rs.MarkReset(state.WindowDaily, nowUs)

	due := rs.DueWindows(nowUs)
	if len(due) != 1 || due[0] != state.WindowWeekly {
		t.Errorf("expected [weekly] after daily reset, got %v", due)
	}
	if got := rs.LastReset(state.WindowDaily); got != nowUs {
		t.Errorf("daily register = %d, want %d", got, nowUs)
	}
	if got := rs.LastReset(state.WindowWeekly); got != tsUs {
		t.Errorf("weekly register = %d, want %d", got, tsUs)
	}
}

func TestResetScheduler_RestoreLastReset(t *testing.T) {
	rs := state.NewResetScheduler(dayUs, weekUs, monthUs)
	rs.RestoreLastReset(state.WindowMonthly, tsUs)

	if got := rs.LastReset(state.WindowMonthly); got != tsUs {
		t.Errorf("restored register = %d, want %d", got, tsUs)
	}
}
