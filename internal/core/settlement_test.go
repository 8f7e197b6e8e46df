package core_test

import (
	"PoolLedger/internal/core"
	"PoolLedger/internal/state"
	"testing"
)

// ============================================================================
// Test: Settlement Gates
// ============================================================================

func TestSettle_NotWhitelistedRejected(t *testing.T) {
	c, persistCh, _ := newTestCore(t, 10_000)

	process(t, c, mustSettle("0xintruder", baseUs+70*secondUs, 0))

	out := lastOutput(t, persistCh)
	if out.Envelope.Accepted {
		t.Fatal("expected rejection")
	}
	if out.Envelope.RejectReason != string(core.RejectNotWhitelisted) {
		t.Errorf("expected not_whitelisted, got %s", out.Envelope.RejectReason)
	}
}

func TestSettle_RateLimited(t *testing.T) {
	c, persistCh, _ := newTestCore(t, 10_000)

	// Genesis set the last-settle register to baseUs; 30s is inside the window
	process(t, c, mustSettle(adminAddr, baseUs+30*secondUs, 0))

	out := lastOutput(t, persistCh)
	if out.Envelope.Accepted {
		t.Fatal("expected rejection")
	}
	if out.Envelope.RejectReason != string(core.RejectRateLimited) {
		t.Errorf("expected rate_limited, got %s", out.Envelope.RejectReason)
	}

	// One full window later the gate opens
	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 1))

	out = lastOutput(t, persistCh)
	if !out.Envelope.Accepted {
		t.Fatalf("expected accepted, got reject: %s", out.Envelope.RejectReason)
	}
	if got := c.GetLastSettleTime(); got != baseUs+70*secondUs {
		t.Errorf("expected last settle advanced, got %d", got)
	}
}

func TestSettle_EmptyPoolSkipsRateRegister(t *testing.T) {
	c, persistCh, _ := newTestCore(t, 0)

	// Empty pool: the pass stops early and does NOT advance the
	// rate-limit register, so back-to-back attempts stay legal.
	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 0))
	out := lastOutput(t, persistCh)
	if !out.Envelope.Accepted {
		t.Fatalf("expected accepted, got reject: %s", out.Envelope.RejectReason)
	}
	if got := c.GetLastSettleTime(); got != baseUs {
		t.Errorf("empty-pool settle must not advance last settle, got %d", got)
	}

	process(t, c, mustSettle(adminAddr, baseUs+75*secondUs, 1))
	out = lastOutput(t, persistCh)
	if !out.Envelope.Accepted {
		t.Fatalf("second attempt after empty pool should pass, got: %s", out.Envelope.RejectReason)
	}
}

// ============================================================================
// Test: Reward Distribution
// ============================================================================

func TestSettle_ProRataDistribution(t *testing.T) {
	c, _, _ := newTestCore(t, 0)

	process(t, c, mustAddApp(adminAddr, "app-a", 0))
	process(t, c, mustAddApp(adminAddr, "app-b", 1))

	// app-a: 2 bettors, total 40. app-b: 4 bettors of 90, total 360.
	process(t, c, mustStake("0xuser1", "app-a", 30, 0))
	process(t, c, mustStake("0xuser2", "app-a", 10, 0))
	for _, u := range []string{"0xb1", "0xb2", "0xb3", "0xb4"} {
		process(t, c, mustStake(u, "app-b", 90, 0))
	}

	if got := c.GetPoolAmount(); got != 400 {
		t.Fatalf("expected pool 400 before settle, got %d", got)
	}

	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 2))

	// distribution = 10% of (360 + 40) = 40
	//
	// rank 0 app-b, weight 15: base 6; bonuses 40 (supporters) + 20 (new)
	//   reward 6*160/100 = 9; each of 4 equal bettors gets 9*90/360 = 2
	// rank 1 app-a, weight 14: base 5; bonuses 20 (supporters) + 20 (new)
	//   reward 5*140/100 = 7; shares 7*30/40 = 5 and 7*10/40 = 1
	if got := c.GetPoolAmount(); got != 360 {
		t.Errorf("expected pool 360 after deduction, got %d", got)
	}
	if got := c.GetUserBalance("0xuser1"); got != 75 {
		t.Errorf("expected user1 balance 75, got %d", got)
	}
	if got := c.GetUserBalance("0xuser2"); got != 91 {
		t.Errorf("expected user2 balance 91, got %d", got)
	}
	for _, u := range []string{"0xb1", "0xb2", "0xb3", "0xb4"} {
		if got := c.GetUserBalance(u); got != 12 {
			t.Errorf("expected %s balance 12, got %d", u, got)
		}
	}

	// Rewards accrue to every earnings window
	for _, w := range []state.Window{state.WindowDaily, state.WindowWeekly, state.WindowMonthly} {
		if got := c.GetUserEarnings("0xuser1", w); got != 5 {
			t.Errorf("expected user1 %s earnings 5, got %d", w, got)
		}
	}

	// Bets themselves are untouched by settlement
	if got := c.GetUserAppBet("0xuser1", "app-a"); got != 30 {
		t.Errorf("expected bet unchanged at 30, got %d", got)
	}
}

func TestSettle_UnrankedBeyondTableGetNothing(t *testing.T) {
	c, _, _ := newTestCore(t, 0)

	// 11 apps with distinct totals; the 11th (smallest) falls off the table
	users := []string{"0xu01", "0xu02", "0xu03", "0xu04", "0xu05", "0xu06", "0xu07", "0xu08", "0xu09", "0xu10", "0xu11"}
	apps := []string{"app-01", "app-02", "app-03", "app-04", "app-05", "app-06", "app-07", "app-08", "app-09", "app-10", "app-11"}
	for i, app := range apps {
		process(t, c, mustAddApp(adminAddr, app, int64(i)))
		process(t, c, mustStake(users[i], app, int64(100-i), 0))
	}

	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, int64(len(apps))))

	// Totals run 100 down to 90; app-11 holds the lowest and ranks 11th
	if got := c.GetUserEarnings("0xu11", state.WindowDaily); got != 0 {
		t.Errorf("bettor on unranked app must earn nothing, got %d", got)
	}
	if got := c.GetUserEarnings("0xu01", state.WindowDaily); got == 0 {
		t.Error("bettor on top-ranked app should have earned a share")
	}
}

func TestSettle_TieBreakByAppID(t *testing.T) {
	c, persistCh, _ := newTestCore(t, 0)

	process(t, c, mustAddApp(adminAddr, "app-b", 0))
	process(t, c, mustAddApp(adminAddr, "app-a", 1))
	process(t, c, mustStake("0xuser1", "app-b", 50, 0))
	process(t, c, mustStake("0xuser2", "app-a", 50, 0))
	drainOutputs(persistCh)

	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 2))

	// Tied totals: app-a ranks 0 (weight 15), app-b ranks 1 (weight 14).
	// distribution = 10; base rewards 1 and 1; single supporter bonus 10,
	// new-app 20 -> both rewards 1*130/100 = 1, single bettor takes all.
	if got := c.GetUserEarnings("0xuser2", state.WindowDaily); got != 1 {
		t.Errorf("expected app-a bettor reward 1, got %d", got)
	}
	if got := c.GetUserEarnings("0xuser1", state.WindowDaily); got != 1 {
		t.Errorf("expected app-b bettor reward 1, got %d", got)
	}
}

func TestSettle_UnregisteredAppBlocksDeduction(t *testing.T) {
	c, persistCh, _ := newTestCore(t, 0)

	// Stake on an app that was never registered: it ranks but cannot
	// collect, so nothing is eligible and the pool must not be debited.
	process(t, c, mustStake("0xuser1", "app-x", 40, 0))
	drainOutputs(persistCh)

	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 0))

	out := lastOutput(t, persistCh)
	if !out.Envelope.Accepted {
		t.Fatalf("expected accepted, got reject: %s", out.Envelope.RejectReason)
	}
	if got := c.GetPoolAmount(); got != 40 {
		t.Errorf("expected pool untouched at 40, got %d", got)
	}
	if got := c.GetUserBalance("0xuser1"); got != 60 {
		t.Errorf("expected balance untouched at 60, got %d", got)
	}
	// The pass still counts as a settlement for rate limiting
	if got := c.GetLastSettleTime(); got != baseUs+70*secondUs {
		t.Errorf("expected last settle advanced, got %d", got)
	}
}

func TestSettle_RemovedAppExcludedFromRewards(t *testing.T) {
	c, _, _ := newTestCore(t, 0)

	process(t, c, mustAddApp(adminAddr, "app-a", 0))
	process(t, c, mustStake("0xuser1", "app-a", 50, 0))
	process(t, c, mustRemoveApp(adminAddr, "app-a", 1))

	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 2))

	// Still ranked (total survives removal) but no longer qualifies
	if got := c.GetUserEarnings("0xuser1", state.WindowDaily); got != 0 {
		t.Errorf("bettor on removed app must earn nothing, got %d", got)
	}
	if got := c.GetPoolAmount(); got != 50 {
		t.Errorf("expected pool untouched at 50, got %d", got)
	}
}

// ============================================================================
// Test: Earnings Window Resets
// ============================================================================

func TestSettle_WindowResets(t *testing.T) {
	c, _, _ := newTestCore(t, 0)

	process(t, c, mustAddApp(adminAddr, "app-a", 0))
	process(t, c, mustStake("0xuser1", "app-a", 100, 0))

	// distribution = 10, weight 15 -> base 1; bonuses 10 + 20 -> reward 1
	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 1))

	for _, w := range []state.Window{state.WindowDaily, state.WindowWeekly, state.WindowMonthly} {
		if got := c.GetUserEarnings("0xuser1", w); got != 1 {
			t.Fatalf("expected %s earnings 1, got %d", w, got)
		}
	}

	// Drain the app so later settlements distribute nothing new
	process(t, c, mustRedeem("0xuser1", "app-a", 100, 1))

	// Two days later: only the daily window has elapsed
	twoDays := baseUs + 2*24*3600*secondUs
	process(t, c, mustSettle(adminAddr, twoDays, 2))

	if got := c.GetUserEarnings("0xuser1", state.WindowDaily); got != 0 {
		t.Errorf("expected daily reset to 0, got %d", got)
	}
	if got := c.GetUserEarnings("0xuser1", state.WindowWeekly); got != 1 {
		t.Errorf("expected weekly untouched at 1, got %d", got)
	}
	if got := c.GetUserEarnings("0xuser1", state.WindowMonthly); got != 1 {
		t.Errorf("expected monthly untouched at 1, got %d", got)
	}

	// Eight days in: the weekly gate fires, the monthly one still waits
	eightDays := baseUs + 8*24*3600*secondUs
	process(t, c, mustSettle(adminAddr, eightDays, 3))

	if got := c.GetUserEarnings("0xuser1", state.WindowWeekly); got != 0 {
		t.Errorf("expected weekly reset to 0, got %d", got)
	}
	if got := c.GetUserEarnings("0xuser1", state.WindowMonthly); got != 1 {
		t.Errorf("expected monthly untouched at 1, got %d", got)
	}
}

// ============================================================================
// Test: End-to-End Flow
// ============================================================================

func TestSettle_EndToEndFlow(t *testing.T) {
	c, persistCh, _ := newTestCore(t, 0)
	user := "0xuser1"

	process(t, c, mustAddApp(adminAddr, "app-a", 0))

	process(t, c, mustStake(user, "app-a", 40, 0))
	if got := c.GetUserBalance(user); got != 60 {
		t.Fatalf("expected balance 60, got %d", got)
	}
	if got := c.GetPoolAmount(); got != 40 {
		t.Fatalf("expected pool 40, got %d", got)
	}

	process(t, c, mustRedeem(user, "app-a", 40, 1))
	if got := c.GetUserBalance(user); got != 99 {
		t.Fatalf("expected balance 99, got %d", got)
	}
	if got := c.GetAppTotalBet("app-a"); got != 0 {
		t.Fatalf("expected app total 0, got %d", got)
	}
	if got := c.GetPoolAmount(); got != 41 {
		t.Fatalf("expected pool 41, got %d", got)
	}
	drainOutputs(persistCh)

	// Too soon after genesis
	process(t, c, mustSettle(adminAddr, baseUs+30*secondUs, 1))
	out := lastOutput(t, persistCh)
	if out.Envelope.Accepted {
		t.Fatal("expected rate-limited rejection")
	}

	// The window passes; the drained app distributes nothing
	process(t, c, mustSettle(adminAddr, baseUs+70*secondUs, 2))
	out = lastOutput(t, persistCh)
	if !out.Envelope.Accepted {
		t.Fatalf("expected accepted, got reject: %s", out.Envelope.RejectReason)
	}
	if got := c.GetPoolAmount(); got != 41 {
		t.Errorf("expected pool unchanged at 41, got %d", got)
	}
	if got := c.GetUserBalance(user); got != 99 {
		t.Errorf("expected balance unchanged at 99, got %d", got)
	}
	if got := c.GetLastSettleTime(); got != baseUs+70*secondUs {
		t.Errorf("expected last settle advanced, got %d", got)
	}
}
