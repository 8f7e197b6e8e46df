package ledger_test

import (
	"PoolLedger/internal/ledger"
	"testing"
)

func TestAccountPath(t *testing.T) {
	tests := []struct {
		key  ledger.AccountKey
		want string
	}{
		{ledger.NewUserAccountKey("0xuser1", ledger.SubTypeBalance), "user:0xuser1:balance"},
		{ledger.NewUserAccountKey("0xuser1", ledger.SubTypeDailyEarnings), "user:0xuser1:daily_earnings"},
		{ledger.NewUserAccountKey("0xuser1", ledger.SubTypeWeeklyEarnings), "user:0xuser1:weekly_earnings"},
		{ledger.NewUserAccountKey("0xuser1", ledger.SubTypeMonthlyEarnings), "user:0xuser1:monthly_earnings"},
		{ledger.NewAppAccountKey("app-a", ledger.SubTypeTotalBet), "app:app-a:total_bet"},
		{ledger.NewAppAccountKey("app-a", ledger.SubTypeContribution), "app:app-a:contribution"},
		{ledger.PoolAccountKey(), "system:pool"},
	}

	for _, tc := range tests {
		if got := tc.key.AccountPath(); got != tc.want {
			t.Errorf("AccountPath() = %q, want %q", got, tc.want)
		}
	}
}

func TestParseAccountPath_RoundTrip(t *testing.T) {
	keys := []ledger.AccountKey{
		ledger.NewUserAccountKey("0xuser1", ledger.SubTypeBalance),
		ledger.NewUserAccountKey("0xuser1", ledger.SubTypeDailyEarnings),
		ledger.NewUserAccountKey("0xuser1", ledger.SubTypeWeeklyEarnings),
		ledger.NewUserAccountKey("0xuser1", ledger.SubTypeMonthlyEarnings),
		ledger.NewAppAccountKey("app-a", ledger.SubTypeTotalBet),
		ledger.NewAppAccountKey("app-a", ledger.SubTypeContribution),
		ledger.PoolAccountKey(),
	}

	for _, key := range keys {
		path := key.AccountPath()
		if got := ledger.ParseAccountPath(path); got != key {
			t.Errorf("round trip failed for %q: got %+v, want %+v", path, got, key)
		}
	}
}

func TestParseAccountPath_Unknown(t *testing.T) {
	zero := ledger.AccountKey{}
	for _, path := range []string{"", "garbage", "user:only-two", "x:y:z:w"} {
		if got := ledger.ParseAccountPath(path); got != zero {
			t.Errorf("ParseAccountPath(%q) = %+v, want zero key", path, got)
		}
	}
}
