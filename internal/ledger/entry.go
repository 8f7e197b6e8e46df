package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// EntryType represents the purpose of a ledger entry
type EntryType int32

const (
	EntryTypeSeedBalance EntryType = iota
	EntryTypeStakeDebit
	EntryTypeBetIncrease
	EntryTypeBetDecrease
	EntryTypeContribution
	EntryTypePoolIn
	EntryTypePoolOut
	EntryTypeRedeemPayout
	EntryTypeRedeemFee
	EntryTypePoolInject
	EntryTypeReward
	EntryTypeEarningsAccrual
	EntryTypeWindowReset
	EntryTypeGenesis
)

func (et EntryType) String() string {
	switch et {
	case EntryTypeSeedBalance:
		return "seed_balance"
	case EntryTypeStakeDebit:
		return "stake_debit"
	case EntryTypeBetIncrease:
		return "bet_increase"
	case EntryTypeBetDecrease:
		return "bet_decrease"
	case EntryTypeContribution:
		return "contribution"
	case EntryTypePoolIn:
		return "pool_in"
	case EntryTypePoolOut:
		return "pool_out"
	case EntryTypeRedeemPayout:
		return "redeem_payout"
	case EntryTypeRedeemFee:
		return "redeem_fee"
	case EntryTypePoolInject:
		return "pool_inject"
	case EntryTypeReward:
		return "reward"
	case EntryTypeEarningsAccrual:
		return "earnings_accrual"
	case EntryTypeWindowReset:
		return "window_reset"
	case EntryTypeGenesis:
		return "genesis"
	default:
		return "unknown"
	}
}

// Entry represents a single signed balance movement on one account.
// Unlike a double-entry journal there is no counter-account: the pool
// economy is deliberately not zero-sum (lazy-init seeding mints balance,
// settlement credits are guarded asymmetrically against the pool).
type Entry struct {
	EntryID     uuid.UUID  // Unique identifier
	BatchID     uuid.UUID  // Groups entries of one operation
	OpRef       string     // Idempotency key of source operation
	Sequence    int64      // Global operation sequence
	Account     AccountKey // Account being moved
	Delta       int64      // Signed micro-unit amount (never zero)
	EntryType   EntryType  // Entry purpose
	TimestampUs int64      // Versioned input timestamp (epoch microseconds)
}

// Batch represents the full set of entries produced by one accepted operation
type Batch struct {
	BatchID     uuid.UUID
	OpRef       string
	Sequence    int64
	TimestampUs int64
	Entries     []Entry
}

// Validate ensures the batch is well-formed. Zero-delta entries are
// rejected: a handler that has nothing to move must omit the entry, so the
// op log never carries noise rows. Empty batches are legal (a settlement
// pass that distributes nothing still logs its envelope).
func (b *Batch) Validate() error {
	for _, e := range b.Entries {
		if e.Delta == 0 {
			return fmt.Errorf("entry %s has zero delta", e.EntryID)
		}

		if e.BatchID != b.BatchID {
			return fmt.Errorf("entry %s has mismatched batch_id", e.EntryID)
		}

		if e.EntryType == EntryTypeWindowReset && e.Delta > 0 {
			return fmt.Errorf("entry %s: window reset must not credit", e.EntryID)
		}
	}

	return nil
}
