package ledger_test

import (
	"PoolLedger/internal/ledger"
	"math"
	"testing"
)

func TestSaturatingAdd(t *testing.T) {
	tests := []struct {
		balance, delta, want int64
	}{
		{100, 50, 150},
		{100, -50, 50},
		{100, -100, 0},
		{100, -150, 0},
		{0, -1, 0},
		{0, 0, 0},
	}

	for _, tc := range tests {
		if got := ledger.SaturatingAdd(tc.balance, tc.delta); got != tc.want {
			t.Errorf("SaturatingAdd(%d, %d) = %d, want %d", tc.balance, tc.delta, got, tc.want)
		}
	}
}

func TestSaturatingMul(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{0, 100, 0},
		{100, 0, 0},
		{3, 7, 21},
		{math.MaxInt64, 1, math.MaxInt64},
		{math.MaxInt64, 2, math.MaxInt64},
		{math.MaxInt64 / 2, 3, math.MaxInt64},
	}

	for _, tc := range tests {
		if got := ledger.SaturatingMul(tc.a, tc.b); got != tc.want {
			t.Errorf("SaturatingMul(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRedemptionFee(t *testing.T) {
	tests := []struct {
		amount, want int64
	}{
		{1, 1},
		{50, 1},
		{100, 1},   // at the flat threshold
		{101, 2},   // ceil(1.01)
		{150, 2},   // ceil(1.5)
		{200, 2},
		{201, 3},
		{1000, 10},
		{10_000, 100},
	}

	for _, tc := range tests {
		if got := ledger.RedemptionFee(tc.amount); got != tc.want {
			t.Errorf("RedemptionFee(%d) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestSupporterBonus(t *testing.T) {
	tests := []struct {
		supporters, want int64
	}{
		{0, 0},
		{1, 10},
		{5, 50},
		{10, 100},
		{11, 100}, // capped
		{1000, 100},
	}

	for _, tc := range tests {
		if got := ledger.SupporterBonus(tc.supporters); got != tc.want {
			t.Errorf("SupporterBonus(%d) = %d, want %d", tc.supporters, got, tc.want)
		}
	}
}

func TestGrowthBonus(t *testing.T) {
	tests := []struct {
		rank int
		want int64
	}{
		{0, 0},
		{4, 0},
		{5, 25}, // (10-5)*5
		{6, 20},
		{7, 15},
		{8, 10},
		{9, 5},
	}

	for _, tc := range tests {
		if got := ledger.GrowthBonus(tc.rank); got != tc.want {
			t.Errorf("GrowthBonus(%d) = %d, want %d", tc.rank, got, tc.want)
		}
	}
}

func TestNewAppBonus(t *testing.T) {
	base := int64(1_700_000_000_000_000)
	day := ledger.MicrosPerDay

	tests := []struct {
		name     string
		addedAt  int64
		settleAt int64
		want     int64
	}{
		{"same instant", base, base, 20},
		{"six days old", base, base + 6*day, 20},
		{"just under seven days", base, base + 7*day - 1, 20},
		{"exactly seven days", base, base + 7*day, 0},
		{"older", base, base + 30*day, 0},
		{"added after settle time", base + day, base, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ledger.NewAppBonus(tc.addedAt, tc.settleAt); got != tc.want {
				t.Errorf("NewAppBonus = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestApplyBonuses(t *testing.T) {
	tests := []struct {
		base, bonus, want int64
	}{
		{100, 0, 100},
		{100, 50, 150},
		{100, 145, 245}, // max stack: 100 + 25 + 20
		{33, 10, 36},    // floors 36.3
		{0, 100, 0},
		{math.MaxInt64, 45, math.MaxInt64 / 100}, // clamped product, then floored
	}

	for _, tc := range tests {
		if got := ledger.ApplyBonuses(tc.base, tc.bonus); got != tc.want {
			t.Errorf("ApplyBonuses(%d, %d) = %d, want %d", tc.base, tc.bonus, got, tc.want)
		}
	}
}

func TestProRataShare(t *testing.T) {
	tests := []struct {
		reward, bet, total, want int64
	}{
		{100, 50, 100, 50},
		{100, 33, 100, 33},
		{10, 1, 3, 3},  // floors 3.33
		{10, 2, 3, 6},  // dust stays in the pool
		{100, 0, 50, 0},
		{100, 50, 0, 0}, // degenerate denominator
	}

	for _, tc := range tests {
		if got := ledger.ProRataShare(tc.reward, tc.bet, tc.total); got != tc.want {
			t.Errorf("ProRataShare(%d, %d, %d) = %d, want %d", tc.reward, tc.bet, tc.total, got, tc.want)
		}
	}
}

func TestRankWeights(t *testing.T) {
	var sum int64
	for i, w := range ledger.RankWeights {
		sum += w
		if i > 0 && ledger.RankWeights[i-1] <= w {
			t.Errorf("rank weights must strictly decrease: [%d]=%d, [%d]=%d",
				i-1, ledger.RankWeights[i-1], i, w)
		}
	}
	if sum != 105 {
		t.Errorf("rank weight sum = %d, want 105", sum)
	}
}
