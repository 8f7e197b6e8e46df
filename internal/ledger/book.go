package ledger

import (
	"fmt"
	"sort"
)

// Book maintains in-memory account balances
type Book struct {
	balances map[AccountKey]int64
}

func NewBook() *Book {
	return &Book{
		balances: make(map[AccountKey]int64),
	}
}

// ApplyEntry applies a single entry to balances with saturating semantics
func (b *Book) ApplyEntry(e Entry) {
	b.balances[e.Account] = SaturatingAdd(b.balances[e.Account], e.Delta)
}

// ApplyBatch applies all entries in a batch
func (b *Book) ApplyBatch(batch *Batch) error {
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	for _, e := range batch.Entries {
		b.ApplyEntry(e)
	}

	return nil
}

// GetBalance returns the current balance for an account
func (b *Book) GetBalance(key AccountKey) int64 {
	return b.balances[key]
}

// HasAccount reports whether the account has ever been written
func (b *Book) HasAccount(key AccountKey) bool {
	_, ok := b.balances[key]
	return ok
}

// === Domain Queries ===

// GetUserBalance returns an owner's spendable balance register
func (b *Book) GetUserBalance(owner string) int64 {
	return b.GetBalance(NewUserAccountKey(owner, SubTypeBalance))
}

// GetAppTotalBet returns the ranked total stake on an application
func (b *Book) GetAppTotalBet(appID string) int64 {
	return b.GetBalance(NewAppAccountKey(appID, SubTypeTotalBet))
}

// GetAppContribution returns the monotonic cumulative stake on an application
func (b *Book) GetAppContribution(appID string) int64 {
	return b.GetBalance(NewAppAccountKey(appID, SubTypeContribution))
}

// GetPoolAmount returns the global reward reservoir
func (b *Book) GetPoolAmount() int64 {
	return b.GetBalance(PoolAccountKey())
}

// GetUserEarnings returns one earnings-window accumulator for an owner
func (b *Book) GetUserEarnings(owner string, window AccountSubType) int64 {
	return b.GetBalance(NewUserAccountKey(owner, window))
}

// EntitiesBySubType returns every entity id holding an account of the given
// sub-type, sorted ascending. Sorted enumeration keeps rankings, reset
// sweeps, and digests identical across replicas.
func (b *Book) EntitiesBySubType(subType AccountSubType) []string {
	entities := make([]string, 0)
	for key := range b.balances {
		if key.SubType == subType {
			entities = append(entities, key.EntityID)
		}
	}
	sort.Strings(entities)
	return entities
}

// === Invariant Checks ===

// ValidateNonNegative checks that a specific account balance is >= 0
func (b *Book) ValidateNonNegative(key AccountKey) error {
	balance := b.GetBalance(key)
	if balance < 0 {
		return fmt.Errorf("account %s has negative balance: %d", key.AccountPath(), balance)
	}
	return nil
}

// ValidateAllNonNegative scans every account for a negative balance.
// Saturating applies make this unreachable; a hit means corrupted restore.
func (b *Book) ValidateAllNonNegative() error {
	for key, balance := range b.balances {
		if balance < 0 {
			return fmt.Errorf("account %s has negative balance: %d", key.AccountPath(), balance)
		}
	}
	return nil
}

// Snapshot returns a copy of all balances (for state hashing and snapshots)
func (b *Book) Snapshot() map[AccountKey]int64 {
	snapshot := make(map[AccountKey]int64, len(b.balances))
	for k, v := range b.balances {
		snapshot[k] = v
	}
	return snapshot
}

// Touch creates an account at zero if it does not exist. Entries cannot
// carry a zero delta, so register creation without movement goes here.
func (b *Book) Touch(key AccountKey) {
	if _, ok := b.balances[key]; !ok {
		b.balances[key] = 0
	}
}

// SetBalance directly sets an account balance (used for snapshot restore)
func (b *Book) SetBalance(key AccountKey, balance int64) {
	b.balances[key] = balance
}
