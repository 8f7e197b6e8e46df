package ledger

import "fmt"

// BetSums is the view of the bet ledger the validator needs to cross-check
// per-app totals. Implemented by state.BetLedger.
type BetSums interface {
	// AppBetTotal returns the clamped sum of all bets on an application
	AppBetTotal(appID string) int64
}

// InvariantValidator cross-checks the book against the bet ledger
type InvariantValidator struct {
	book *Book
	bets BetSums
}

func NewInvariantValidator(book *Book, bets BetSums) *InvariantValidator {
	return &InvariantValidator{
		book: book,
		bets: bets,
	}
}

// ValidateAppTotal checks that an application's total-bet register equals
// the sum of its user bet records.
func (v *InvariantValidator) ValidateAppTotal(appID string) error {
	registered := v.book.GetAppTotalBet(appID)
	summed := v.bets.AppBetTotal(appID)

	if registered != summed {
		return fmt.Errorf("app %s total-bet mismatch: register=%d, bet sum=%d",
			appID, registered, summed)
	}
	return nil
}

// ValidateAllAppTotals runs the total-bet check over every known application
func (v *InvariantValidator) ValidateAllAppTotals() error {
	for _, appID := range v.book.EntitiesBySubType(SubTypeTotalBet) {
		if err := v.ValidateAppTotal(appID); err != nil {
			return err
		}
	}
	return nil
}

// ValidateNonNegative delegates to the book's full scan
func (v *InvariantValidator) ValidateNonNegative() error {
	return v.book.ValidateAllNonNegative()
}
