package ledger_test

import (
	"PoolLedger/internal/ledger"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func entry(account ledger.AccountKey, delta int64, et ledger.EntryType) ledger.Entry {
	return ledger.Entry{
		EntryID:   uuid.New(),
		Account:   account,
		Delta:     delta,
		EntryType: et,
	}
}

func TestBook_ApplyEntrySaturates(t *testing.T) {
	book := ledger.NewBook()
	key := ledger.NewUserAccountKey("0xuser1", ledger.SubTypeBalance)

	book.ApplyEntry(entry(key, 100, ledger.EntryTypeSeedBalance))
	book.ApplyEntry(entry(key, -150, ledger.EntryTypeStakeDebit))

	if got := book.GetBalance(key); got != 0 {
		t.Errorf("expected clamped balance 0, got %d", got)
	}
}

func TestBook_ApplyBatchRejectsZeroDelta(t *testing.T) {
	book := ledger.NewBook()
	batchID := uuid.New()
	batch := &ledger.Batch{
		BatchID: batchID,
		Entries: []ledger.Entry{
			{EntryID: uuid.New(), BatchID: batchID, Account: ledger.PoolAccountKey(), Delta: 0},
		},
	}

	if err := book.ApplyBatch(batch); err == nil {
		t.Fatal("expected zero-delta batch to be rejected")
	}
}

func TestBook_ApplyBatchRejectsMismatchedBatchID(t *testing.T) {
	book := ledger.NewBook()
	batch := &ledger.Batch{
		BatchID: uuid.New(),
		Entries: []ledger.Entry{
			{EntryID: uuid.New(), BatchID: uuid.New(), Account: ledger.PoolAccountKey(), Delta: 5},
		},
	}

	if err := book.ApplyBatch(batch); err == nil {
		t.Fatal("expected mismatched batch_id to be rejected")
	}
}

func TestBook_TouchCreatesWithoutMoving(t *testing.T) {
	book := ledger.NewBook()
	key := ledger.NewAppAccountKey("app-a", ledger.SubTypeTotalBet)

	if book.HasAccount(key) {
		t.Fatal("account must not exist before touch")
	}

	book.Touch(key)

	if !book.HasAccount(key) {
		t.Error("account must exist after touch")
	}
	if got := book.GetBalance(key); got != 0 {
		t.Errorf("touched account balance = %d, want 0", got)
	}

	// Touch must not reset an existing balance
	book.SetBalance(key, 42)
	book.Touch(key)
	if got := book.GetBalance(key); got != 42 {
		t.Errorf("touch overwrote balance: %d", got)
	}
}

func TestBook_EntitiesBySubTypeSorted(t *testing.T) {
	book := ledger.NewBook()
	for _, owner := range []string{"0xccc", "0xaaa", "0xbbb"} {
		book.SetBalance(ledger.NewUserAccountKey(owner, ledger.SubTypeDailyEarnings), 10)
	}
	// Different sub-type must not leak in
	book.SetBalance(ledger.NewUserAccountKey("0xzzz", ledger.SubTypeBalance), 10)

	got := book.EntitiesBySubType(ledger.SubTypeDailyEarnings)
	want := []string{"0xaaa", "0xbbb", "0xccc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EntitiesBySubType = %v, want %v", got, want)
	}
}

func TestBook_DomainQueries(t *testing.T) {
	book := ledger.NewBook()
	book.SetBalance(ledger.NewUserAccountKey("0xuser1", ledger.SubTypeBalance), 60)
	book.SetBalance(ledger.NewAppAccountKey("app-a", ledger.SubTypeTotalBet), 40)
	book.SetBalance(ledger.NewAppAccountKey("app-a", ledger.SubTypeContribution), 90)
	book.SetBalance(ledger.PoolAccountKey(), 1_000)

	if got := book.GetUserBalance("0xuser1"); got != 60 {
		t.Errorf("user balance = %d", got)
	}
	if got := book.GetAppTotalBet("app-a"); got != 40 {
		t.Errorf("app total = %d", got)
	}
	if got := book.GetAppContribution("app-a"); got != 90 {
		t.Errorf("contribution = %d", got)
	}
	if got := book.GetPoolAmount(); got != 1_000 {
		t.Errorf("pool = %d", got)
	}
	if got := book.GetUserBalance("0xunknown"); got != 0 {
		t.Errorf("unknown user balance = %d, want 0", got)
	}
}

func TestBook_ValidateAllNonNegative(t *testing.T) {
	book := ledger.NewBook()
	key := ledger.NewUserAccountKey("0xuser1", ledger.SubTypeBalance)

	book.SetBalance(key, 10)
	if err := book.ValidateAllNonNegative(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Only reachable through a corrupted restore
	book.SetBalance(key, -5)
	if err := book.ValidateAllNonNegative(); err == nil {
		t.Error("expected negative balance error")
	}
}
