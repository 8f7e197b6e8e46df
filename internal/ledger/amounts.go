package ledger

import "math"

// All amounts are integer micro-units. Arithmetic that could underflow is
// saturating: balances clamp to zero instead of wrapping or erroring.

const (
	// StartingBalance is minted for an owner on first contact
	StartingBalance int64 = 100

	// MaxBetPerApp caps one owner's bet on one application
	MaxBetPerApp int64 = 100

	// FeeFlatThreshold is the largest redemption charged the flat fee
	FeeFlatThreshold int64 = 100

	// FeePercent is the fee rate above the flat threshold
	FeePercent int64 = 1

	// DistributionPercent of the top-ranked combined stake is distributed
	DistributionPercent int64 = 10

	// TopAppCount is the number of ranked applications rewarded
	TopAppCount = 10

	// SupporterBonusPerUser and SupporterBonusCap bound the supporter bonus
	SupporterBonusPerUser int64 = 10
	SupporterBonusCap     int64 = 100

	// GrowthBonusMinRank is the first rank eligible for the growth bonus
	GrowthBonusMinRank = 5

	// NewAppBonusPercent applies to applications younger than NewAppBonusDays
	NewAppBonusPercent int64 = 20
	NewAppBonusDays    int64 = 7
)

const (
	MicrosPerDay        int64 = 24 * 60 * 60 * 1_000_000
	SettleMinIntervalUs int64 = 60_000_000
	DailyResetPeriodUs  int64 = MicrosPerDay
	WeeklyResetPeriodUs int64 = 7 * MicrosPerDay
	MonthResetPeriodUs  int64 = 30 * MicrosPerDay
)

// RankWeights is the reward weight table in percentage units, rank 0 first.
var RankWeights = [TopAppCount]int64{15, 14, 13, 12, 11, 10, 9, 8, 7, 6}

// SaturatingAdd applies a signed delta to a non-negative balance,
// clamping the result at zero on underflow.
func SaturatingAdd(balance, delta int64) int64 {
	result := balance + delta
	if result < 0 {
		return 0
	}
	return result
}

// SaturatingMul multiplies two non-negative amounts, clamping at the
// int64 maximum on overflow.
func SaturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	result := a * b
	if result/b != a {
		return math.MaxInt64
	}
	return result
}

// RedemptionFee computes the fee retained by the pool on redemption:
// a flat 1 unit up to the threshold, ceil(amount * 1%) above it, never
// less than 1.
func RedemptionFee(amount int64) int64 {
	if amount <= FeeFlatThreshold {
		return 1
	}

	fee := (amount*FeePercent + 99) / 100
	if fee < 1 {
		fee = 1
	}
	return fee
}

// SupporterBonus returns the supporter bonus percentage for an application
// with the given count of distinct positive bettors.
func SupporterBonus(supporters int64) int64 {
	bonus := supporters * SupporterBonusPerUser
	if bonus > SupporterBonusCap {
		return SupporterBonusCap
	}
	return bonus
}

// GrowthBonus returns the growth bonus percentage for a rank (0 = highest).
// Only the bottom half of the reward table qualifies.
func GrowthBonus(rank int) int64 {
	if rank < GrowthBonusMinRank {
		return 0
	}
	return int64(10-rank) * 5
}

// NewAppBonus returns the tenure bonus percentage. Age is measured in
// whole days, integer-truncated, between added_at and the settlement time.
func NewAppBonus(addedAtUs, settleUs int64) int64 {
	if settleUs < addedAtUs {
		return NewAppBonusPercent
	}
	if (settleUs-addedAtUs)/MicrosPerDay < NewAppBonusDays {
		return NewAppBonusPercent
	}
	return 0
}

// ApplyBonuses stacks the summed bonus percentages multiplicatively on top
// of the 100% base, flooring the result.
func ApplyBonuses(baseReward, bonusPercent int64) int64 {
	return SaturatingMul(baseReward, 100+bonusPercent) / 100
}

// ProRataShare floors a bettor's portion of a reward. Dust from the floor
// division is not redistributed.
func ProRataShare(totalReward, bet, eligibleTotal int64) int64 {
	if eligibleTotal <= 0 {
		return 0
	}
	return SaturatingMul(totalReward, bet) / eligibleTotal
}
