package ledger

import (
	"github.com/google/uuid"
)

// EntryGenerator creates entry batches from accepted operations. All
// precondition checks happen in the core before a generator call; by the
// time a batch is built the operation is already accepted.
type EntryGenerator struct {
	sequence int64
	book     *Book // Read access for reset sweeps
}

func NewEntryGenerator(startSequence int64, book *Book) *EntryGenerator {
	return &EntryGenerator{
		sequence: startSequence,
		book:     book,
	}
}

func (eg *EntryGenerator) newBatch(opRef string, timestampUs int64, capacity int) *Batch {
	return &Batch{
		BatchID:     uuid.New(),
		OpRef:       opRef,
		Sequence:    eg.sequence,
		TimestampUs: timestampUs,
		Entries:     make([]Entry, 0, capacity),
	}
}

func (eg *EntryGenerator) append(batch *Batch, account AccountKey, delta int64, entryType EntryType) {
	if delta == 0 {
		return
	}
	batch.Entries = append(batch.Entries, Entry{
		EntryID:     uuid.New(),
		BatchID:     batch.BatchID,
		OpRef:       batch.OpRef,
		Sequence:    batch.Sequence,
		Account:     account,
		Delta:       delta,
		EntryType:   entryType,
		TimestampUs: batch.TimestampUs,
	})
}

// GenerateStake moves a stake: balance down, app registers and pool up.
// seedBalance is true when the owner is being lazily funded on first
// contact; the mint entry precedes the debit.
func (eg *EntryGenerator) GenerateStake(
	opRef string,
	owner string,
	appID string,
	amount int64,
	seedBalance bool,
	timestampUs int64,
) *Batch {
	batch := eg.newBatch(opRef, timestampUs, 5)

	if seedBalance {
		eg.append(batch, NewUserAccountKey(owner, SubTypeBalance), StartingBalance, EntryTypeSeedBalance)
	}

	eg.append(batch, NewUserAccountKey(owner, SubTypeBalance), -amount, EntryTypeStakeDebit)
	eg.append(batch, NewAppAccountKey(appID, SubTypeTotalBet), amount, EntryTypeBetIncrease)
	eg.append(batch, NewAppAccountKey(appID, SubTypeContribution), amount, EntryTypeContribution)
	eg.append(batch, PoolAccountKey(), amount, EntryTypePoolIn)

	eg.sequence++
	return batch
}

// GenerateRedeem returns a stake net of fee; the fee is recycled into the
// pool, not burned.
func (eg *EntryGenerator) GenerateRedeem(
	opRef string,
	owner string,
	appID string,
	amount int64,
	fee int64,
	timestampUs int64,
) *Batch {
	batch := eg.newBatch(opRef, timestampUs, 3)

	eg.append(batch, NewUserAccountKey(owner, SubTypeBalance), amount-fee, EntryTypeRedeemPayout)
	eg.append(batch, NewAppAccountKey(appID, SubTypeTotalBet), -amount, EntryTypeBetDecrease)
	eg.append(batch, PoolAccountKey(), fee, EntryTypeRedeemFee)

	eg.sequence++
	return batch
}

// GenerateInject credits an admin injection to the pool.
func (eg *EntryGenerator) GenerateInject(opRef string, amount int64, timestampUs int64) *Batch {
	batch := eg.newBatch(opRef, timestampUs, 1)
	eg.append(batch, PoolAccountKey(), amount, EntryTypePoolInject)

	eg.sequence++
	return batch
}

// GenerateGenesis seeds the pool at instantiation.
func (eg *EntryGenerator) GenerateGenesis(opRef string, poolSeed int64, timestampUs int64) *Batch {
	batch := eg.newBatch(opRef, timestampUs, 1)
	eg.append(batch, PoolAccountKey(), poolSeed, EntryTypeGenesis)

	eg.sequence++
	return batch
}

// NewEmptyBatch consumes a sequence slot without moving any balance.
// Rejected and metadata-only operations still occupy one slot so batch
// sequences stay aligned with the op log.
func (eg *EntryGenerator) NewEmptyBatch(opRef string, timestampUs int64) *Batch {
	batch := eg.newBatch(opRef, timestampUs, 0)
	eg.sequence++
	return batch
}

// NewSettlementBatch opens an empty batch the settlement pass appends to.
// A settlement that distributes nothing still logs the (empty) batch.
func (eg *EntryGenerator) NewSettlementBatch(opRef string, timestampUs int64) *Batch {
	batch := eg.newBatch(opRef, timestampUs, 16)
	eg.sequence++
	return batch
}

// AppendReward credits one bettor's share to balance and all three
// earnings-window accumulators.
func (eg *EntryGenerator) AppendReward(batch *Batch, owner string, share int64) {
	eg.append(batch, NewUserAccountKey(owner, SubTypeBalance), share, EntryTypeReward)
	eg.append(batch, NewUserAccountKey(owner, SubTypeDailyEarnings), share, EntryTypeEarningsAccrual)
	eg.append(batch, NewUserAccountKey(owner, SubTypeWeeklyEarnings), share, EntryTypeEarningsAccrual)
	eg.append(batch, NewUserAccountKey(owner, SubTypeMonthlyEarnings), share, EntryTypeEarningsAccrual)
}

// AppendPoolDeduction debits the distributed amount from the pool.
func (eg *EntryGenerator) AppendPoolDeduction(batch *Batch, amount int64) {
	eg.append(batch, PoolAccountKey(), -amount, EntryTypePoolOut)
}

// AppendWindowReset sweeps every accumulator of one earnings window back
// to zero. Enumeration is sorted so replicas emit identical entry lists.
func (eg *EntryGenerator) AppendWindowReset(batch *Batch, window AccountSubType) {
	for _, owner := range eg.book.EntitiesBySubType(window) {
		key := NewUserAccountKey(owner, window)
		current := eg.book.GetBalance(key)
		eg.append(batch, key, -current, EntryTypeWindowReset)
	}
}

// SetSequence resets the generator sequence (used during snapshot restore)
func (eg *EntryGenerator) SetSequence(seq int64) {
	eg.sequence = seq
}
