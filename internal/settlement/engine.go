package settlement

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

// Outcome is the terminal result of a settlement attempt.
type Outcome string

const (
	OutcomeSettled        Outcome = "settled"
	OutcomeUnsold         Outcome = "unsold"
	OutcomeAlreadySettled Outcome = "already_settled"
)

// Result describes how an auction was settled. WinnerID and Amount are set
// only for OutcomeSettled.
type Result struct {
	Outcome  Outcome
	WinnerID string
	Amount   float64
}

// SelectWinner returns the winning bid among the given bids: the highest
// amount, ties broken by earliest creation time (the first bidder to reach
// the maximum wins). The second return is false when there are no bids.
// The result does not depend on the order bids are stored or retrieved.
func SelectWinner(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}

	winner := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winner.Amount || (b.Amount == winner.Amount && b.CreatedAt.Before(winner.CreatedAt)) {
			winner = b
		}
	}
	return winner, true
}

// Engine settles closed auctions: it selects the winner and applies the
// ownership transfer plus balance debit through the ledger's combined
// atomic write, exactly once per good.
type Engine struct {
	repo repository.LedgerStore
	sink notifier.Sink

	// Now is the clock used for the close-time precondition. Tests
	// override it; production uses time.Now.
	Now func() time.Time
}

// NewEngine creates a settlement engine over the given ledger and sink.
func NewEngine(repo repository.LedgerStore, sink notifier.Sink) *Engine {
	return &Engine{
		repo: repo,
		sink: sink,
		Now:  time.Now,
	}
}

// Settle finalizes the auction for the given good. It is idempotent: a good
// that was already settled reports OutcomeAlreadySettled without touching
// the ledger, so duplicate scheduler fires are harmless.
func (e *Engine) Settle(ctx context.Context, goodID string) (Result, error) {
	good, err := e.repo.GetGood(ctx, goodID)
	if err != nil {
		return Result{}, fmt.Errorf("settle good %s: %w", goodID, err)
	}

	if good.Sold() {
		return Result{Outcome: OutcomeAlreadySettled, WinnerID: *good.SoldID}, nil
	}
	if !good.ClosedAt(e.Now()) {
		return Result{}, fmt.Errorf("settle good %s: closes at %s: %w", goodID, good.CloseAt().Format(time.RFC3339), auctionerrors.ErrAuctionOpen)
	}

	var winner model.Bid
	for {
		bids, err := e.repo.ListBids(ctx, goodID)
		if err != nil {
			return Result{}, fmt.Errorf("settle good %s: %w", goodID, err)
		}

		var ok bool
		winner, ok = SelectWinner(bids)
		if !ok {
			// Closed with zero bids: the good stays unsold, nothing to write.
			e.sink.AuctionUnsold(notifier.AuctionUnsoldEvent{GoodID: goodID})
			utils.Info("settlement: auction closed unsold", map[string]any{"good_id": goodID})
			return Result{Outcome: OutcomeUnsold}, nil
		}

		err = e.repo.ApplySettlement(ctx, goodID, winner.UserID, winner.Amount)
		if errors.Is(err, auctionerrors.ErrAlreadySettled) {
			// Lost the race against a concurrent trigger; the other one won.
			return Result{Outcome: OutcomeAlreadySettled}, nil
		}
		if errors.Is(err, auctionerrors.ErrStaleWinner) {
			// A higher bid committed after our read. The store rejected the
			// write, so re-read the bids and pick the winner again. This
			// converges: the good is past close, so the window for further
			// accepted bids is bounded.
			continue
		}
		if err != nil {
			return Result{}, fmt.Errorf("settle good %s: %w", goodID, err)
		}
		break
	}

	e.sink.AuctionSettled(notifier.AuctionSettledEvent{
		GoodID:   goodID,
		WinnerID: winner.UserID,
		Amount:   winner.Amount,
	})
	utils.Info("settlement: auction settled", map[string]any{
		"good_id":   goodID,
		"winner_id": winner.UserID,
		"amount":    winner.Amount,
	})

	return Result{Outcome: OutcomeSettled, WinnerID: winner.UserID, Amount: winner.Amount}, nil
}
