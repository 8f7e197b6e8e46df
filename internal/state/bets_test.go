package state_test

import (
	"PoolLedger/internal/state"
	"testing"
)

const tsUs = int64(1_700_000_000_000_000)

func TestBetLedger_StakeAndRedeem(t *testing.T) {
	bl := state.NewBetLedger()

	bl.ApplyStake("0xuser1", "app-a", 40, tsUs)
	bl.ApplyStake("0xuser1", "app-a", 20, tsUs+1)

	if got := bl.GetUserAppBet("0xuser1", "app-a"); got != 60 {
		t.Errorf("bet = %d, want 60", got)
	}

	bl.ApplyRedeem("0xuser1", "app-a", 25, tsUs+2)
	if got := bl.GetUserAppBet("0xuser1", "app-a"); got != 35 {
		t.Errorf("bet after redeem = %d, want 35", got)
	}
}

func TestBetLedger_RedeemClampsAtZero(t *testing.T) {
	bl := state.NewBetLedger()

	bl.ApplyStake("0xuser1", "app-a", 40, tsUs)
	bl.ApplyRedeem("0xuser1", "app-a", 100, tsUs+1)

	if got := bl.GetUserAppBet("0xuser1", "app-a"); got != 0 {
		t.Errorf("bet = %d, want 0", got)
	}

	// Record survives at zero
	bets := bl.GetUserBets("0xuser1")
	if len(bets) != 1 || bets[0].Amount != 0 {
		t.Errorf("expected one zero-amount record, got %+v", bets)
	}
}

func TestBetLedger_RedeemUnknownRecordIsNoop(t *testing.T) {
	bl := state.NewBetLedger()
	bl.ApplyRedeem("0xuser1", "app-a", 10, tsUs)

	if got := bl.GetUserAppBet("0xuser1", "app-a"); got != 0 {
		t.Errorf("bet = %d, want 0", got)
	}
	if len(bl.GetUserBets("0xuser1")) != 0 {
		t.Error("redeem must not create records")
	}
}

func TestBetLedger_AppBettorsSortedAndPositiveOnly(t *testing.T) {
	bl := state.NewBetLedger()

	bl.ApplyStake("0xccc", "app-a", 30, tsUs)
	bl.ApplyStake("0xaaa", "app-a", 10, tsUs)
	bl.ApplyStake("0xbbb", "app-a", 20, tsUs)
	bl.ApplyStake("0xddd", "app-a", 5, tsUs)
	bl.ApplyRedeem("0xddd", "app-a", 5, tsUs) // back to zero
	bl.ApplyStake("0xaaa", "app-b", 50, tsUs) // other app must not leak

	bettors := bl.AppBettors("app-a")
	if len(bettors) != 3 {
		t.Fatalf("expected 3 bettors, got %d", len(bettors))
	}
	wantOwners := []string{"0xaaa", "0xbbb", "0xccc"}
	wantAmounts := []int64{10, 20, 30}
	for i, b := range bettors {
		if b.Owner != wantOwners[i] || b.Amount != wantAmounts[i] {
			t.Errorf("bettor[%d] = %s/%d, want %s/%d",
				i, b.Owner, b.Amount, wantOwners[i], wantAmounts[i])
		}
	}
}

func TestBetLedger_SupportersAndActiveUsers(t *testing.T) {
	bl := state.NewBetLedger()

	bl.ApplyStake("0xuser1", "app-a", 10, tsUs)
	bl.ApplyStake("0xuser1", "app-b", 10, tsUs)
	bl.ApplyStake("0xuser2", "app-a", 10, tsUs)
	bl.ApplyStake("0xuser3", "app-a", 10, tsUs)
	bl.ApplyRedeem("0xuser3", "app-a", 10, tsUs)

	if got := bl.AppSupportersCount("app-a"); got != 2 {
		t.Errorf("supporters = %d, want 2", got)
	}
	// 0xuser3's drained record still counts them as active
	if got := bl.ActiveUsersCount(); got != 3 {
		t.Errorf("active users = %d, want 3", got)
	}
	if got := bl.AppBetTotal("app-a"); got != 20 {
		t.Errorf("app total = %d, want 20", got)
	}
}

func TestBetLedger_ActiveUsersCountKeepsDrainedOwners(t *testing.T) {
	bl := state.NewBetLedger()

	bl.ApplyStake("0xuser1", "app-a", 40, tsUs)
	bl.ApplyRedeem("0xuser1", "app-a", 40, tsUs+1)

	if got := bl.ActiveUsersCount(); got != 1 {
		t.Errorf("active users = %d, want 1 (zero-amount record retained)", got)
	}
	// Supporter sets still require positive amounts
	if got := bl.AppSupportersCount("app-a"); got != 0 {
		t.Errorf("supporters = %d, want 0", got)
	}
}

func TestBetLedger_RestoreBet(t *testing.T) {
	bl := state.NewBetLedger()

	bl.RestoreBet("0xuser1", state.Bet{AppID: "app-a", Amount: 40, UpdatedAtUs: tsUs})
	if got := bl.GetUserAppBet("0xuser1", "app-a"); got != 40 {
		t.Errorf("restored bet = %d, want 40", got)
	}

	// Restore overwrites an existing record
	bl.RestoreBet("0xuser1", state.Bet{AppID: "app-a", Amount: 15, UpdatedAtUs: tsUs + 1})
	if got := bl.GetUserAppBet("0xuser1", "app-a"); got != 15 {
		t.Errorf("overwritten bet = %d, want 15", got)
	}
	if len(bl.GetUserBets("0xuser1")) != 1 {
		t.Error("restore must not duplicate records")
	}
}
