package auction

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// fakeScheduler records OnGoodCreated registrations.
type fakeScheduler struct {
	registered []model.Good
}

func (f *fakeScheduler) OnGoodCreated(good model.Good) {
	f.registered = append(f.registered, good)
}

// recordingSink captures pushed events for assertions.
type recordingSink struct {
	bids    []notifier.BidAcceptedEvent
	settled []notifier.AuctionSettledEvent
	unsold  []notifier.AuctionUnsoldEvent
}

func (r *recordingSink) BidAccepted(e notifier.BidAcceptedEvent)       { r.bids = append(r.bids, e) }
func (r *recordingSink) AuctionSettled(e notifier.AuctionSettledEvent) { r.settled = append(r.settled, e) }
func (r *recordingSink) AuctionUnsold(e notifier.AuctionUnsoldEvent)   { r.unsold = append(r.unsold, e) }

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockLedgerStore(ctrl)
	sink := &recordingSink{}
	service := NewAuctionService(mockRepo, sink, &fakeScheduler{})

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service.Now = func() time.Time { return t0.Add(time.Hour) }

	openGood := model.Good{GoodID: "good1", OwnerID: "owner1", Name: "clock", Price: 100, CreatedAt: t0, DurationHours: 24}
	bidder := model.User{UserID: "user1", Nickname: "alice", Balance: 500}

	// Table-driven test cases
	tests := []struct {
		name          string
		goodID        string
		userID        string
		amount        float64
		mockSetup     func()
		expectedError error
		wantEvent     bool
	}{
		{
			name:   "valid_first_bid",
			goodID: "good1",
			userID: "user1",
			amount: 150,
			mockSetup: func() {
				mockRepo.EXPECT().GetUser(gomock.Any(), "user1").Return(bidder, nil)
				mockRepo.EXPECT().GetGood(gomock.Any(), "good1").Return(openGood, nil)
				mockRepo.EXPECT().ListBids(gomock.Any(), "good1").Return(nil, nil)
				mockRepo.EXPECT().InsertBid(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantEvent: true,
		},
		{
			name:          "empty_goodID",
			goodID:        "",
			userID:        "user1",
			amount:        150,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "empty_userID",
			goodID:        "good1",
			userID:        "",
			amount:        150,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "non_positive_amount",
			goodID:        "good1",
			userID:        "user1",
			amount:        0,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:   "unknown_bidder",
			goodID: "good1",
			userID: "ghost",
			amount: 150,
			mockSetup: func() {
				mockRepo.EXPECT().GetUser(gomock.Any(), "ghost").Return(model.User{}, auctionerrors.ErrUserNotFound)
			},
			expectedError: auctionerrors.ErrUserNotFound,
		},
		{
			name:   "bid_below_starting_price",
			goodID: "good1",
			userID: "user1",
			amount: 80,
			mockSetup: func() {
				mockRepo.EXPECT().GetUser(gomock.Any(), "user1").Return(bidder, nil)
				mockRepo.EXPECT().GetGood(gomock.Any(), "good1").Return(openGood, nil)
				mockRepo.EXPECT().ListBids(gomock.Any(), "good1").Return(nil, nil)
			},
			expectedError: auctionerrors.ErrBelowStartingPrice,
		},
		{
			name:   "bid_below_current_high",
			goodID: "good1",
			userID: "user1",
			amount: 140,
			mockSetup: func() {
				mockRepo.EXPECT().GetUser(gomock.Any(), "user1").Return(bidder, nil)
				mockRepo.EXPECT().GetGood(gomock.Any(), "good1").Return(openGood, nil)
				mockRepo.EXPECT().ListBids(gomock.Any(), "good1").Return([]model.Bid{
					{BidID: "b1", GoodID: "good1", UserID: "user2", Amount: 150, CreatedAt: t0.Add(30 * time.Minute)},
				}, nil)
			},
			expectedError: auctionerrors.ErrBelowCurrentHighBid,
		},
		{
			name:   "repo_insert_fails",
			goodID: "good1",
			userID: "user1",
			amount: 150,
			mockSetup: func() {
				mockRepo.EXPECT().GetUser(gomock.Any(), "user1").Return(bidder, nil)
				mockRepo.EXPECT().GetGood(gomock.Any(), "good1").Return(openGood, nil)
				mockRepo.EXPECT().ListBids(gomock.Any(), "good1").Return(nil, nil)
				mockRepo.EXPECT().InsertBid(gomock.Any(), gomock.Any()).Return(errors.New("repo write failed"))
			},
			expectedError: nil, // wrapped repo error, no sentinel to match
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sink.bids = nil
			tc.mockSetup()

			bid, err := service.PlaceBid(context.Background(), tc.goodID, tc.userID, tc.amount, "take it")
			if tc.wantEvent {
				require.NoError(t, err)
				require.Equal(t, tc.goodID, bid.GoodID)
				require.Equal(t, tc.amount, bid.Amount)
				require.NotEmpty(t, bid.BidID)
				require.Len(t, sink.bids, 1)
				require.Equal(t, "alice", sink.bids[0].BidderNickname)
				return
			}

			require.Error(t, err)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			}
			require.Empty(t, sink.bids, "no event on rejected bid")
		})
	}
}

// Tests CreateGood
func TestAuctionService_CreateGood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockLedgerStore(ctrl)
	sched := &fakeScheduler{}
	service := NewAuctionService(mockRepo, &recordingSink{}, sched)

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service.Now = func() time.Time { return t0 }

	t.Run("registers_close_timer", func(t *testing.T) {
		mockRepo.EXPECT().GetUser(gomock.Any(), "owner1").Return(model.User{UserID: "owner1"}, nil)
		mockRepo.EXPECT().CreateGood(gomock.Any(), gomock.Any()).Return(nil)

		good, err := service.CreateGood(context.Background(), "owner1", "clock", 100, 24)
		require.NoError(t, err)
		require.Equal(t, t0.Add(24*time.Hour), good.CloseAt())
		require.Len(t, sched.registered, 1)
		require.Equal(t, good.GoodID, sched.registered[0].GoodID)
	})

	t.Run("rejects_non_positive_duration", func(t *testing.T) {
		_, err := service.CreateGood(context.Background(), "owner1", "clock", 100, 0)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("rejects_unknown_owner", func(t *testing.T) {
		mockRepo.EXPECT().GetUser(gomock.Any(), "ghost").Return(model.User{}, auctionerrors.ErrUserNotFound)

		_, err := service.CreateGood(context.Background(), "ghost", "clock", 100, 24)
		require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	})
}

// Tests GetWinningBid
func TestAuctionService_GetWinningBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockLedgerStore(ctrl)
	service := NewAuctionService(mockRepo, &recordingSink{}, &fakeScheduler{})

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("highest_bid_wins", func(t *testing.T) {
		mockRepo.EXPECT().ListBids(gomock.Any(), "good1").Return([]model.Bid{
			{BidID: "b1", UserID: "user1", Amount: 150, CreatedAt: t0.Add(time.Hour)},
			{BidID: "b2", UserID: "user2", Amount: 120, CreatedAt: t0.Add(2 * time.Hour)},
		}, nil)

		bid, err := service.GetWinningBid(context.Background(), "good1")
		require.NoError(t, err)
		require.Equal(t, "b1", bid.BidID)
	})

	t.Run("no_bids", func(t *testing.T) {
		mockRepo.EXPECT().ListBids(gomock.Any(), "good1").Return(nil, nil)

		_, err := service.GetWinningBid(context.Background(), "good1")
		require.ErrorIs(t, err, auctionerrors.ErrNoBids)
	})
}
