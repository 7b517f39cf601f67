package auction

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/internal/settlement"
	"auction-house/utils"
	"context"
	"fmt"
	"sort"
	"time"
)

// CloseScheduler is the part of the close scheduler the service needs:
// a hook to register a freshly listed good without a full rescan.
type CloseScheduler interface {
	OnGoodCreated(good model.Good)
}

// AuctionService defines the business logic for listing goods and bidding
type AuctionService struct {
	repo      repository.LedgerStore
	sink      notifier.Sink
	scheduler CloseScheduler

	// Now is the clock used for bid acceptance. Tests override it.
	Now func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.LedgerStore, sink notifier.Sink, scheduler CloseScheduler) *AuctionService {
	return &AuctionService{
		repo:      repo,
		sink:      sink,
		scheduler: scheduler,
		Now:       time.Now,
	}
}

// CreateUser registers a user with an opening balance
func (s *AuctionService) CreateUser(ctx context.Context, nickname string, balance float64) (model.User, error) {
	if nickname == "" {
		return model.User{}, fmt.Errorf("service: %w - missing nickname", auctionerrors.ErrInvalidInput)
	}
	if balance < 0 {
		return model.User{}, fmt.Errorf("service: %w - negative opening balance", auctionerrors.ErrInvalidInput)
	}

	user := model.User{
		UserID:   utils.GenerateID(),
		Nickname: nickname,
		Balance:  balance,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("service: failed to create user %s: %w", nickname, err)
	}
	return user, nil
}

// GetUser returns the user with the given id
func (s *AuctionService) GetUser(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// CreateGood lists a good for auction and registers its close time with
// the scheduler.
func (s *AuctionService) CreateGood(ctx context.Context, ownerID, name string, price float64, durationHours int) (model.Good, error) {
	if ownerID == "" || name == "" {
		return model.Good{}, fmt.Errorf("service: %w - missing ownerID or name", auctionerrors.ErrInvalidInput)
	}
	if price < 0 {
		return model.Good{}, fmt.Errorf("service: %w - negative starting price", auctionerrors.ErrInvalidInput)
	}
	if durationHours <= 0 {
		return model.Good{}, fmt.Errorf("service: %w - non-positive duration", auctionerrors.ErrInvalidInput)
	}

	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return model.Good{}, fmt.Errorf("service: owner %s: %w", ownerID, err)
	}

	good := model.Good{
		GoodID:        utils.GenerateID(),
		OwnerID:       ownerID,
		Name:          name,
		Price:         price,
		CreatedAt:     s.Now().UTC(),
		DurationHours: durationHours,
	}
	if err := s.repo.CreateGood(ctx, good); err != nil {
		return model.Good{}, fmt.Errorf("service: failed to create good %s: %w", name, err)
	}

	s.scheduler.OnGoodCreated(good)
	return good, nil
}

// PlaceBid validates and records a user's bid for a good, then pushes the
// accepted bid to the good's auction room.
func (s *AuctionService) PlaceBid(ctx context.Context, goodID, userID string, amount float64, message string) (model.Bid, error) {
	if goodID == "" || userID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing goodID or userID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	bidder, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: bidder %s: %w", userID, err)
	}

	good, err := s.repo.GetGood(ctx, goodID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get good %s: %w", goodID, err)
	}
	bids, err := s.repo.ListBids(ctx, goodID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to list bids for good %s: %w", goodID, err)
	}

	now := s.Now().UTC()
	if err := ValidateBid(good, bids, amount, now); err != nil {
		return model.Bid{}, fmt.Errorf("service: %w", err)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		GoodID:    goodID,
		UserID:    userID,
		Amount:    amount,
		Message:   message,
		CreatedAt: now,
	}
	if err := s.repo.InsertBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for good %s by user %s: %w", goodID, userID, err)
	}

	s.sink.BidAccepted(notifier.BidAcceptedEvent{
		GoodID:         goodID,
		Amount:         amount,
		Message:        message,
		BidderNickname: bidder.Nickname,
	})

	return bid, nil
}

// ListOpenGoods returns every good that has not been settled yet
func (s *AuctionService) ListOpenGoods(ctx context.Context) ([]model.Good, error) {
	goods, err := s.repo.ListUnsoldGoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open goods: %w", err)
	}
	return goods, nil
}

// GetGoodWithBids returns a good and its bid history ordered by amount
// ascending, the order the auction page displays.
func (s *AuctionService) GetGoodWithBids(ctx context.Context, goodID string) (model.Good, []model.Bid, error) {
	if goodID == "" {
		return model.Good{}, nil, fmt.Errorf("service: %w - empty good ID", auctionerrors.ErrInvalidInput)
	}

	good, err := s.repo.GetGood(ctx, goodID)
	if err != nil {
		return model.Good{}, nil, fmt.Errorf("service: failed to get good %s: %w", goodID, err)
	}
	bids, err := s.repo.ListBids(ctx, goodID)
	if err != nil {
		return model.Good{}, nil, fmt.Errorf("service: failed to list bids for good %s: %w", goodID, err)
	}

	sort.Slice(bids, func(i, j int) bool { return bids[i].Amount < bids[j].Amount })
	return good, bids, nil
}

// GetWinningBid returns the current leading bid for a good, using the same
// selection rule settlement applies at close.
func (s *AuctionService) GetWinningBid(ctx context.Context, goodID string) (model.Bid, error) {
	if goodID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty good ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.ListBids(ctx, goodID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to list bids for good %s: %w", goodID, err)
	}
	winner, ok := settlement.SelectWinner(bids)
	if !ok {
		return model.Bid{}, fmt.Errorf("service: good %s: %w", goodID, auctionerrors.ErrNoBids)
	}
	return winner, nil
}
