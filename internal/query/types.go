package query

// BalanceResponse is a user's spendable balance.
type BalanceResponse struct {
	Owner        string `json:"owner"`
	Balance      int64  `json:"balance"`
	AsOfSequence int64  `json:"as_of_sequence"`
}

// BetRecord is one (owner, application) bet for API queries.
type BetRecord struct {
	Owner        string `json:"owner"`
	AppID        string `json:"app_id"`
	Amount       int64  `json:"amount"`
	UpdatedAtUs  int64  `json:"updated_at_us"`
	AsOfSequence int64  `json:"as_of_sequence"`
}

// RankedApp is one row of the application ranking. Name is empty for
// applications holding a total-bet register without a metadata record.
type RankedApp struct {
	Rank       int32  `json:"rank"`
	AppID      string `json:"app_id"`
	TotalBet   int64  `json:"total_bet"`
	Name       string `json:"name,omitempty"`
	Registered bool   `json:"registered"`
	Supporters int64  `json:"supporters"`
}

// AppInfoResponse is application metadata for API queries.
type AppInfoResponse struct {
	AppID        string `json:"app_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	AddedAtUs    int64  `json:"added_at_us"`
	IsActive     bool   `json:"is_active"`
	TotalBet     int64  `json:"total_bet"`
	Contribution int64  `json:"contribution"`
}

// LeaderboardEntry is one row of an earnings-window leaderboard.
type LeaderboardEntry struct {
	Rank     int32  `json:"rank"`
	Owner    string `json:"owner"`
	Earnings int64  `json:"earnings"`
}

// EarningsSummary is a user's accumulated earnings across all windows.
type EarningsSummary struct {
	Owner        string `json:"owner"`
	Daily        int64  `json:"daily"`
	Weekly       int64  `json:"weekly"`
	Monthly      int64  `json:"monthly"`
	AsOfSequence int64  `json:"as_of_sequence"`
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy        bool     `json:"is_healthy"`
	HashChainBreaks  []int64  `json:"hash_chain_breaks,omitempty"`
	NegativeAccounts []string `json:"negative_accounts,omitempty"`
}
