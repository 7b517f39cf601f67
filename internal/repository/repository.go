package repository

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"context"
	"fmt"
	"sync"
)

// LedgerStore defines the persistent record of goods, bids, and user
// balances for the auction system. ApplySettlement is the one combined
// write: ownership transfer and winner debit commit together or not at all,
// and only after re-verifying, inside the same boundary that accepts bids,
// that no stored bid exceeds the caller's winner (ErrStaleWinner otherwise).
type LedgerStore interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, userID string) (model.User, error)
	CreateGood(ctx context.Context, good model.Good) error
	GetGood(ctx context.Context, goodID string) (model.Good, error)
	ListUnsoldGoods(ctx context.Context) ([]model.Good, error)
	InsertBid(ctx context.Context, bid model.Bid) error
	ListBids(ctx context.Context, goodID string) ([]model.Bid, error)
	ApplySettlement(ctx context.Context, goodID, winnerID string, amount float64) error
}

// MemoryLedger is a concurrency-safe in-memory implementation of LedgerStore.
// A single mutex serializes bid acceptance against settlement, which covers
// the per-good serialization the settlement contract requires.
type MemoryLedger struct {
	mu    sync.RWMutex
	users map[string]model.User
	goods map[string]model.Good
	bids  map[string][]model.Bid // key: goodID -> value: list of bids

	// FaultHook, when set, runs inside ApplySettlement after the winner
	// checks but before either write is installed. Returning an error
	// simulates a crash mid-settlement: neither the ownership transfer
	// nor the debit is applied. Intended for tests only.
	FaultHook func() error
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		users: make(map[string]model.User),
		goods: make(map[string]model.Good),
		bids:  make(map[string][]model.Bid),
	}
}

// CreateUser stores a new user record
func (r *MemoryLedger) CreateUser(ctx context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.UserID] = user
	return nil
}

// GetUser returns the user with the given id
func (r *MemoryLedger) GetUser(ctx context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateGood stores a new good listing
func (r *MemoryLedger) CreateGood(ctx context.Context, good model.Good) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.goods[good.GoodID] = good
	return nil
}

// GetGood returns the good with the given id
func (r *MemoryLedger) GetGood(ctx context.Context, goodID string) (model.Good, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	good, ok := r.goods[goodID]
	if !ok {
		return model.Good{}, fmt.Errorf("get good %s: %w", goodID, auctionerrors.ErrGoodNotFound)
	}
	return good, nil
}

// ListUnsoldGoods returns every good that has not been settled yet
func (r *MemoryLedger) ListUnsoldGoods(ctx context.Context) ([]model.Good, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goods := make([]model.Good, 0, len(r.goods))
	for _, good := range r.goods {
		if !good.Sold() {
			goods = append(goods, good)
		}
	}
	return goods, nil
}

// InsertBid appends a bid for a good. The closure re-check runs under the
// same lock as settlement, so a bid can never land on a good whose
// settlement has already begun.
func (r *MemoryLedger) InsertBid(ctx context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	good, ok := r.goods[bid.GoodID]
	if !ok {
		return fmt.Errorf("insert bid for good %s: %w", bid.GoodID, auctionerrors.ErrGoodNotFound)
	}
	if good.Sold() || good.ClosedAt(bid.CreatedAt) {
		return fmt.Errorf("insert bid for good %s: %w", bid.GoodID, auctionerrors.ErrAuctionClosed)
	}

	r.bids[bid.GoodID] = append(r.bids[bid.GoodID], bid)
	return nil
}

// ListBids returns all bids for a good. An empty slice is not an error:
// a good with no bids is a valid unsold auction.
func (r *MemoryLedger) ListBids(ctx context.Context, goodID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.goods[goodID]; !ok {
		return nil, fmt.Errorf("list bids for good %s: %w", goodID, auctionerrors.ErrGoodNotFound)
	}
	return append([]model.Bid(nil), r.bids[goodID]...), nil
}

// ApplySettlement transfers ownership of the good to the winner and debits
// the winner's balance as one atomic unit. A good whose SoldID is already
// set reports ErrAlreadySettled and performs no writes. The caller's winner
// is re-verified against the stored bids under the same lock that accepts
// bids: if a higher bid landed after the caller's read, ErrStaleWinner is
// returned and nothing is written.
func (r *MemoryLedger) ApplySettlement(ctx context.Context, goodID, winnerID string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	good, ok := r.goods[goodID]
	if !ok {
		return fmt.Errorf("apply settlement for good %s: %w", goodID, auctionerrors.ErrGoodNotFound)
	}
	if good.Sold() {
		return fmt.Errorf("apply settlement for good %s: %w", goodID, auctionerrors.ErrAlreadySettled)
	}
	winner, ok := r.users[winnerID]
	if !ok {
		return fmt.Errorf("apply settlement for good %s: winner %s: %w", goodID, winnerID, auctionerrors.ErrUserNotFound)
	}
	for _, b := range r.bids[goodID] {
		if b.Amount > amount {
			return fmt.Errorf("apply settlement for good %s: %w", goodID, auctionerrors.ErrStaleWinner)
		}
	}

	if r.FaultHook != nil {
		if err := r.FaultHook(); err != nil {
			return fmt.Errorf("apply settlement for good %s: %w", goodID, err)
		}
	}

	good.SoldID = &winnerID
	winner.Balance -= amount
	r.goods[goodID] = good
	r.users[winnerID] = winner
	return nil
}

// AddUserBalance seeds a user balance directly. This method is intended for tests only.
func (r *MemoryLedger) AddUserBalance(userID string, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.users[userID]
	user.UserID = userID
	user.Balance += delta
	r.users[userID] = user
}
