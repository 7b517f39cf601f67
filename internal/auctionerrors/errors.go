package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrGoodNotFound = errors.New("good not found")
	ErrUserNotFound = errors.New("user not found")
	ErrNoBids       = errors.New("no bids found for good")
	// ErrStoreUnavailable marks transient store failures; the close
	// scheduler retries these with backoff, callers do not.
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)

// Bid validation errors, returned to the caller and never retried
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidBid          = errors.New("invalid bid")
	ErrAuctionClosed       = errors.New("auction has closed")
	ErrBelowStartingPrice  = errors.New("bid not above starting price")
	ErrBelowCurrentHighBid = errors.New("bid not above current highest bid")
)

// Settlement outcomes
var (
	// ErrAlreadySettled is a benign idempotent outcome, not a fault:
	// the good was settled by an earlier trigger.
	ErrAlreadySettled = errors.New("good already settled")
	// ErrAuctionOpen means settlement was asked for before close time.
	ErrAuctionOpen = errors.New("auction still open")
	// ErrStaleWinner means a higher bid was committed after the caller
	// picked its winner. The caller re-reads the bids and tries again.
	ErrStaleWinner = errors.New("a higher bid exists for good")
)
