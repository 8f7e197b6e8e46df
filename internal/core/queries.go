package core

import (
	"PoolLedger/internal/ledger"
	"PoolLedger/internal/state"
)

// Read accessors over the in-memory state. The serving read path goes
// through the Postgres projections; these exist for diagnostics, tests,
// and the admin surface, and they apply the same read semantics.

// GetUserBalance returns an owner's spendable balance. Owners the ledger
// has never seen read as the starting balance: the seed is minted lazily
// on first stake, but the read surface must not depend on write order.
func (c *PoolCore) GetUserBalance(owner string) int64 {
	owner = state.NormalizeAddress(owner)
	key := ledger.NewUserAccountKey(owner, ledger.SubTypeBalance)
	if !c.book.HasAccount(key) {
		return ledger.StartingBalance
	}
	return c.book.GetBalance(key)
}

// GetUserAppBet returns an owner's current bet on one application.
func (c *PoolCore) GetUserAppBet(owner, appID string) int64 {
	return c.bets.GetUserAppBet(state.NormalizeAddress(owner), appID)
}

// GetUserBets returns all of an owner's bet records.
func (c *PoolCore) GetUserBets(owner string) []state.Bet {
	return c.bets.GetUserBets(state.NormalizeAddress(owner))
}

// GetAppTotalBet returns the ranked total stake on an application.
func (c *PoolCore) GetAppTotalBet(appID string) int64 {
	return c.book.GetAppTotalBet(appID)
}

// GetAppContribution returns the cumulative stake ever placed on an
// application. Redemptions do not reduce it.
func (c *PoolCore) GetAppContribution(appID string) int64 {
	return c.book.GetAppContribution(appID)
}

// GetPoolAmount returns the reward reservoir balance.
func (c *PoolCore) GetPoolAmount() int64 {
	return c.book.GetPoolAmount()
}

// GetUserEarnings returns one earnings-window accumulator.
func (c *PoolCore) GetUserEarnings(owner string, window state.Window) int64 {
	return c.book.GetUserEarnings(state.NormalizeAddress(owner), windowSubType(window))
}

// GetActiveUsersCount returns the number of owners holding bet records.
func (c *PoolCore) GetActiveUsersCount() int64 {
	return c.bets.ActiveUsersCount()
}

// GetAppInfo returns application metadata, or nil if not registered.
func (c *PoolCore) GetAppInfo(appID string) *state.AppInfo {
	return c.registry.Get(appID)
}

// GetAllApps returns every registered application sorted by id.
func (c *PoolCore) GetAllApps() []*state.AppInfo {
	return c.registry.All()
}
