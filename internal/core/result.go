package core

// RejectReason is the machine-readable cause of a rejected operation.
// Rejections never surface to the submitting caller: a rejected operation
// is externally indistinguishable from an accepted no-op. The reason feeds
// the op log, metrics, and tests only.
type RejectReason string

const (
	RejectNotWhitelisted      RejectReason = "not_whitelisted"
	RejectInvalidAmount       RejectReason = "invalid_amount"
	RejectInsufficientBalance RejectReason = "insufficient_balance"
	RejectBetCapExceeded      RejectReason = "bet_cap_exceeded"
	RejectInsufficientBet     RejectReason = "insufficient_bet"
	RejectRateLimited         RejectReason = "rate_limited"
	RejectDuplicateApp        RejectReason = "duplicate_app"
	RejectUnknownApp          RejectReason = "unknown_app"
)

// Result is the tagged outcome of one operation handler
type Result struct {
	Accepted bool
	Reason   RejectReason
}

func accepted() Result {
	return Result{Accepted: true}
}

func rejected(reason RejectReason) Result {
	return Result{Accepted: false, Reason: reason}
}
