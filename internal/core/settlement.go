package core

import (
	"sort"

	"PoolLedger/internal/ledger"
	"PoolLedger/internal/op"
	"PoolLedger/internal/state"
)

// rankedApp is one row of the settlement ranking
type rankedApp struct {
	appID string
	total int64
}

// handleSettle runs one settlement pass:
//
//  1. whitelist and rate gates
//  2. earnings-window resets whose period has elapsed
//  3. ranking by total bet, reward apportionment, pool deduction
//
// The pass is a single batch: reset sweeps first, reward credits after,
// pool deduction last. Rankings and bettor lists are read before any entry
// applies, so the whole pass sees the pre-settlement state.
func (c *PoolCore) handleSettle(o *op.Settle) dispatchResult {
	if !c.whitelist.Contains(o.Caller) {
		return c.rejectOp(o, RejectNotWhitelisted)
	}

	now := o.TimestampUs
	if now-c.lastSettleUs < ledger.SettleMinIntervalUs {
		c.recordSettlementOutcome("rate_limited")
		return c.rejectOp(o, RejectRateLimited)
	}

	batch := c.entryGen.NewSettlementBatch(o.IdempotencyKey(), now)

	// Window resets run before any distribution
	for _, w := range c.resets.DueWindows(now) {
		c.entryGen.AppendWindowReset(batch, windowSubType(w))
		c.resets.MarkReset(w, now)
		if c.metrics != nil {
			c.metrics.WindowResets.WithLabelValues(w.String()).Inc()
		}
	}

	// An empty pool stops the pass early. The resets above still apply,
	// but the rate-limit register is NOT advanced: the next attempt is not
	// penalized for a settlement that had nothing to distribute.
	pool := c.book.GetPoolAmount()
	if pool == 0 {
		c.recordSettlementOutcome("empty_pool")
		return dispatchResult{batch: batch, result: accepted()}
	}

	top := c.rankApps()

	var sumTop int64
	for _, r := range top {
		sumTop += r.total
	}

	distribution := sumTop * ledger.DistributionPercent / 100

	if distribution > 0 {
		hasEligible := c.apportionRewards(batch, top, distribution, now)

		// The deduction is guarded twice: at least one ranked app must
		// have reached apportionment, and the pool must cover the full
		// planned distribution. An uncovered distribution still pays the
		// rewards above without debiting the pool.
		if hasEligible && distribution <= pool {
			c.entryGen.AppendPoolDeduction(batch, distribution)
			if c.metrics != nil {
				c.metrics.SettlementDistributed.Add(float64(distribution))
			}
			c.recordSettlementOutcome("distributed")
		} else {
			c.recordSettlementOutcome("no_eligible")
		}
	} else {
		c.recordSettlementOutcome("zero_distribution")
	}

	c.lastSettleUs = now

	return dispatchResult{batch: batch, result: accepted()}
}

// rankApps orders every application holding a total-bet register by total
// descending, application id ascending on ties, truncated to the reward
// table size. Registry membership is NOT checked here: unregistered ids
// occupy ranks and dilute the table, they just collect nothing.
func (c *PoolCore) rankApps() []rankedApp {
	appIDs := c.book.EntitiesBySubType(ledger.SubTypeTotalBet)

	ranked := make([]rankedApp, 0, len(appIDs))
	for _, id := range appIDs {
		ranked = append(ranked, rankedApp{appID: id, total: c.book.GetAppTotalBet(id)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		return ranked[i].appID < ranked[j].appID
	})

	if len(ranked) > ledger.TopAppCount {
		ranked = ranked[:ledger.TopAppCount]
	}

	return ranked
}

// apportionRewards credits each eligible bettor's pro-rata share and
// reports whether any ranked application reached apportionment.
func (c *PoolCore) apportionRewards(batch *ledger.Batch, top []rankedApp, distribution, nowUs int64) bool {
	hasEligible := false
	var appsRanked, dust int64

	for rank, entry := range top {
		if entry.total == 0 {
			continue
		}

		bettors := c.bets.AppBettors(entry.appID)
		if len(bettors) == 0 {
			continue
		}

		info := c.registry.Get(entry.appID)
		if info == nil {
			continue
		}

		hasEligible = true
		appsRanked++

		base := distribution * ledger.RankWeights[rank] / 100

		bonus := ledger.SupporterBonus(int64(len(bettors)))
		bonus += ledger.GrowthBonus(rank)
		bonus += ledger.NewAppBonus(info.AddedAtUs, nowUs)

		totalReward := ledger.ApplyBonuses(base, bonus)

		var eligibleTotal int64
		for _, b := range bettors {
			eligibleTotal += b.Amount
		}

		var distributed int64
		for _, b := range bettors {
			share := ledger.ProRataShare(totalReward, b.Amount, eligibleTotal)
			if share > 0 {
				c.entryGen.AppendReward(batch, b.Owner, share)
				distributed += share
			}
		}

		dust += totalReward - distributed
	}

	if c.metrics != nil {
		c.metrics.SettlementAppsRanked.Observe(float64(appsRanked))
		if dust > 0 {
			c.metrics.SettlementRewardDust.Add(float64(dust))
		}
	}

	return hasEligible
}

func (c *PoolCore) recordSettlementOutcome(outcome string) {
	if c.metrics != nil {
		c.metrics.SettlementRuns.WithLabelValues(outcome).Inc()
	}
}

func windowSubType(w state.Window) ledger.AccountSubType {
	switch w {
	case state.WindowDaily:
		return ledger.SubTypeDailyEarnings
	case state.WindowWeekly:
		return ledger.SubTypeWeeklyEarnings
	default:
		return ledger.SubTypeMonthlyEarnings
	}
}
