package state

import "sort"

// Bet is one (owner, application) stake record. Amount is logically
// unsigned but stored signed; reads clamp to zero.
type Bet struct {
	AppID       string
	Amount      int64
	UpdatedAtUs int64
}

// Bettor is a positive-stake holder on one application
type Bettor struct {
	Owner  string
	Amount int64
}

// BetLedger manages per-owner bet records
type BetLedger struct {
	bets map[string][]*Bet // owner -> one record per app
}

func NewBetLedger() *BetLedger {
	return &BetLedger{
		bets: make(map[string][]*Bet),
	}
}

func (bl *BetLedger) find(owner, appID string) *Bet {
	for _, b := range bl.bets[owner] {
		if b.AppID == appID {
			return b
		}
	}
	return nil
}

// GetUserAppBet returns an owner's current bet on an application,
// clamped to zero.
func (bl *BetLedger) GetUserAppBet(owner, appID string) int64 {
	b := bl.find(owner, appID)
	if b == nil || b.Amount < 0 {
		return 0
	}
	return b.Amount
}

// ApplyStake adds to the (owner, app) record, creating it on first stake
func (bl *BetLedger) ApplyStake(owner, appID string, amount, timestampUs int64) {
	b := bl.find(owner, appID)
	if b == nil {
		bl.bets[owner] = append(bl.bets[owner], &Bet{
			AppID:       appID,
			Amount:      amount,
			UpdatedAtUs: timestampUs,
		})
		return
	}

	b.Amount += amount
	b.UpdatedAtUs = timestampUs
}

// ApplyRedeem subtracts from the (owner, app) record, clamping at zero.
// The record is kept at zero, not pruned: pruning on redemption would make
// the bet list's shape depend on operation order, and zero records are
// already invisible to bettor/supporter queries.
func (bl *BetLedger) ApplyRedeem(owner, appID string, amount, timestampUs int64) {
	b := bl.find(owner, appID)
	if b == nil {
		return
	}

	b.Amount -= amount
	if b.Amount < 0 {
		b.Amount = 0
	}
	b.UpdatedAtUs = timestampUs
}

// GetUserBets returns a copy of an owner's bet records
func (bl *BetLedger) GetUserBets(owner string) []Bet {
	records := bl.bets[owner]
	result := make([]Bet, 0, len(records))
	for _, b := range records {
		result = append(result, *b)
	}
	return result
}

// AppBettors returns every owner holding a positive bet on an application,
// sorted by owner address so pro-rata apportionment order is deterministic.
func (bl *BetLedger) AppBettors(appID string) []Bettor {
	result := make([]Bettor, 0)

	for owner, records := range bl.bets {
		for _, b := range records {
			if b.AppID == appID && b.Amount > 0 {
				result = append(result, Bettor{Owner: owner, Amount: b.Amount})
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Owner < result[j].Owner
	})

	return result
}

// AppSupportersCount returns the number of distinct positive bettors
func (bl *BetLedger) AppSupportersCount(appID string) int64 {
	var count int64
	for _, records := range bl.bets {
		for _, b := range records {
			if b.AppID == appID && b.Amount > 0 {
				count++
				break
			}
		}
	}
	return count
}

// AppBetTotal sums all clamped bets on an application (invariant cross-check)
func (bl *BetLedger) AppBetTotal(appID string) int64 {
	var total int64
	for _, records := range bl.bets {
		for _, b := range records {
			if b.AppID == appID && b.Amount > 0 {
				total += b.Amount
			}
		}
	}
	return total
}

// ActiveUsersCount returns the number of owners holding a non-empty bet
// record list. Drained records stay in the list, so an owner who redeemed
// everything still counts until their records are cleared.
func (bl *BetLedger) ActiveUsersCount() int64 {
	var count int64
	for _, records := range bl.bets {
		if len(records) > 0 {
			count++
		}
	}
	return count
}

// OwnersWithBets returns all owners holding records, sorted (for snapshots)
func (bl *BetLedger) OwnersWithBets() []string {
	owners := make([]string, 0, len(bl.bets))
	for owner := range bl.bets {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}

// RestoreBet directly sets a record (used for snapshot restore)
func (bl *BetLedger) RestoreBet(owner string, bet Bet) {
	b := bl.find(owner, bet.AppID)
	if b != nil {
		*b = bet
		return
	}
	copied := bet
	bl.bets[owner] = append(bl.bets[owner], &copied)
}
