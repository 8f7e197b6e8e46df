package ledger_test

import (
	"PoolLedger/internal/ledger"
	"testing"
)

const tsUs = int64(1_700_000_000_000_000)

func TestGenerateStake_WithSeed(t *testing.T) {
	gen := ledger.NewEntryGenerator(7, ledger.NewBook())

	batch := gen.GenerateStake("op-1", "0xuser1", "app-a", 40, true, tsUs)

	if batch.Sequence != 7 {
		t.Errorf("batch sequence = %d, want 7", batch.Sequence)
	}
	if len(batch.Entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(batch.Entries))
	}

	// Mint precedes the debit
	if batch.Entries[0].EntryType != ledger.EntryTypeSeedBalance || batch.Entries[0].Delta != ledger.StartingBalance {
		t.Errorf("entry 0 = %s/%d, want seed_balance/%d",
			batch.Entries[0].EntryType, batch.Entries[0].Delta, ledger.StartingBalance)
	}
	if batch.Entries[1].EntryType != ledger.EntryTypeStakeDebit || batch.Entries[1].Delta != -40 {
		t.Errorf("entry 1 = %s/%d, want stake_debit/-40",
			batch.Entries[1].EntryType, batch.Entries[1].Delta)
	}

	for _, e := range batch.Entries {
		if e.BatchID != batch.BatchID {
			t.Errorf("entry %s has foreign batch id", e.EntryID)
		}
		if e.OpRef != "op-1" {
			t.Errorf("entry op_ref = %s", e.OpRef)
		}
	}

	if err := batch.Validate(); err != nil {
		t.Errorf("generated batch failed validation: %v", err)
	}
}

func TestGenerateStake_WithoutSeed(t *testing.T) {
	gen := ledger.NewEntryGenerator(0, ledger.NewBook())

	batch := gen.GenerateStake("op-1", "0xuser1", "app-a", 40, false, tsUs)

	if len(batch.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(batch.Entries))
	}
	if batch.Entries[0].EntryType != ledger.EntryTypeStakeDebit {
		t.Errorf("entry 0 = %s, want stake_debit", batch.Entries[0].EntryType)
	}
}

func TestGenerateRedeem_FeeRecycled(t *testing.T) {
	gen := ledger.NewEntryGenerator(0, ledger.NewBook())

	batch := gen.GenerateRedeem("op-1", "0xuser1", "app-a", 50, 1, tsUs)

	if len(batch.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(batch.Entries))
	}

	byType := make(map[ledger.EntryType]ledger.Entry)
	for _, e := range batch.Entries {
		byType[e.EntryType] = e
	}

	if e := byType[ledger.EntryTypeRedeemPayout]; e.Delta != 49 {
		t.Errorf("payout delta = %d, want 49", e.Delta)
	}
	if e := byType[ledger.EntryTypeBetDecrease]; e.Delta != -50 {
		t.Errorf("bet decrease delta = %d, want -50", e.Delta)
	}
	if e := byType[ledger.EntryTypeRedeemFee]; e.Delta != 1 {
		t.Errorf("fee delta = %d, want 1", e.Delta)
	}
	if byType[ledger.EntryTypeRedeemFee].Account != ledger.PoolAccountKey() {
		t.Error("fee must credit the pool")
	}
}

func TestGenerator_SequenceAdvancesPerBatch(t *testing.T) {
	gen := ledger.NewEntryGenerator(0, ledger.NewBook())

	b0 := gen.NewEmptyBatch("op-0", tsUs)
	b1 := gen.GenerateInject("op-1", 100, tsUs)
	b2 := gen.NewSettlementBatch("op-2", tsUs)

	if b0.Sequence != 0 || b1.Sequence != 1 || b2.Sequence != 2 {
		t.Errorf("sequences = %d, %d, %d; want 0, 1, 2", b0.Sequence, b1.Sequence, b2.Sequence)
	}
}

func TestAppendReward_CreditsAllWindows(t *testing.T) {
	gen := ledger.NewEntryGenerator(0, ledger.NewBook())

	batch := gen.NewSettlementBatch("op-1", tsUs)
	gen.AppendReward(batch, "0xuser1", 25)

	if len(batch.Entries) != 4 {
		t.Fatalf("expected 4 entries (balance + 3 windows), got %d", len(batch.Entries))
	}
	for _, e := range batch.Entries {
		if e.Delta != 25 {
			t.Errorf("entry %s delta = %d, want 25", e.EntryType, e.Delta)
		}
	}
}

func TestAppendReward_ZeroShareOmitted(t *testing.T) {
	gen := ledger.NewEntryGenerator(0, ledger.NewBook())

	batch := gen.NewSettlementBatch("op-1", tsUs)
	gen.AppendReward(batch, "0xuser1", 0)

	if len(batch.Entries) != 0 {
		t.Errorf("expected no entries for zero share, got %d", len(batch.Entries))
	}
}

func TestAppendWindowReset_SweepsSorted(t *testing.T) {
	book := ledger.NewBook()
	book.SetBalance(ledger.NewUserAccountKey("0xccc", ledger.SubTypeDailyEarnings), 30)
	book.SetBalance(ledger.NewUserAccountKey("0xaaa", ledger.SubTypeDailyEarnings), 10)
	book.SetBalance(ledger.NewUserAccountKey("0xbbb", ledger.SubTypeDailyEarnings), 0)
	// Weekly accumulators must survive a daily sweep
	book.SetBalance(ledger.NewUserAccountKey("0xaaa", ledger.SubTypeWeeklyEarnings), 99)

	gen := ledger.NewEntryGenerator(0, book)
	batch := gen.NewSettlementBatch("op-1", tsUs)
	gen.AppendWindowReset(batch, ledger.SubTypeDailyEarnings)

	// 0xbbb already holds zero, so no entry is emitted for it
	if len(batch.Entries) != 2 {
		t.Fatalf("expected 2 reset entries, got %d", len(batch.Entries))
	}
	if batch.Entries[0].Account.EntityID != "0xaaa" || batch.Entries[0].Delta != -10 {
		t.Errorf("entry 0 = %s/%d, want 0xaaa/-10",
			batch.Entries[0].Account.EntityID, batch.Entries[0].Delta)
	}
	if batch.Entries[1].Account.EntityID != "0xccc" || batch.Entries[1].Delta != -30 {
		t.Errorf("entry 1 = %s/%d, want 0xccc/-30",
			batch.Entries[1].Account.EntityID, batch.Entries[1].Delta)
	}
	for _, e := range batch.Entries {
		if e.EntryType != ledger.EntryTypeWindowReset {
			t.Errorf("entry type = %s, want window_reset", e.EntryType)
		}
	}

	if err := batch.Validate(); err != nil {
		t.Errorf("reset batch failed validation: %v", err)
	}
}
