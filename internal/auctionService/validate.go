package auction

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"fmt"
	"time"
)

// ValidateBid applies the bid acceptance rules for a good, in order; the
// first failing rule wins:
//
//  1. the auction must still be open at acceptance time
//  2. the amount must exceed the starting price
//  3. the amount must exceed the current highest bid, if any
//
// The function is pure: no side effects, safe to call repeatedly.
func ValidateBid(good model.Good, existingBids []model.Bid, amount float64, now time.Time) error {
	if good.ClosedAt(now) {
		return fmt.Errorf("good %s closed at %s: %w", good.GoodID, good.CloseAt().Format(time.RFC3339), auctionerrors.ErrAuctionClosed)
	}
	if amount <= good.Price {
		return fmt.Errorf("bid %.2f vs starting price %.2f: %w", amount, good.Price, auctionerrors.ErrBelowStartingPrice)
	}
	if high, ok := highestAmount(existingBids); ok && amount <= high {
		return fmt.Errorf("bid %.2f vs current high %.2f: %w", amount, high, auctionerrors.ErrBelowCurrentHighBid)
	}
	return nil
}

func highestAmount(bids []model.Bid) (float64, bool) {
	if len(bids) == 0 {
		return 0, false
	}
	high := bids[0].Amount
	for _, b := range bids[1:] {
		if b.Amount > high {
			high = b.Amount
		}
	}
	return high, true
}
