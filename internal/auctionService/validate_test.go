package auction

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testGood(price float64, createdAt time.Time, durationHours int) model.Good {
	return model.Good{
		GoodID:        "good1",
		OwnerID:       "owner1",
		Name:          "antique clock",
		Price:         price,
		CreatedAt:     createdAt,
		DurationHours: durationHours,
	}
}

func bidAt(userID string, amount float64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     userID + "-bid",
		GoodID:    "good1",
		UserID:    userID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// Tests ValidateBid rule ordering: first failure wins
func TestValidateBid(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	good := testGood(100, t0, 24)

	tests := []struct {
		name    string
		bids    []model.Bid
		amount  float64
		now     time.Time
		wantErr error
	}{
		{
			name:    "first_bid_above_price",
			amount:  150,
			now:     t0.Add(time.Hour),
			wantErr: nil,
		},
		{
			name:    "equal_to_starting_price_rejected",
			amount:  100,
			now:     t0.Add(time.Hour),
			wantErr: auctionerrors.ErrBelowStartingPrice,
		},
		{
			name:    "below_starting_price_rejected",
			amount:  99.99,
			now:     t0.Add(time.Hour),
			wantErr: auctionerrors.ErrBelowStartingPrice,
		},
		{
			name:    "must_beat_current_high",
			bids:    []model.Bid{bidAt("user1", 150, t0.Add(time.Hour))},
			amount:  140,
			now:     t0.Add(2 * time.Hour),
			wantErr: auctionerrors.ErrBelowCurrentHighBid,
		},
		{
			name:    "equal_to_current_high_rejected",
			bids:    []model.Bid{bidAt("user1", 150, t0.Add(time.Hour))},
			amount:  150,
			now:     t0.Add(2 * time.Hour),
			wantErr: auctionerrors.ErrBelowCurrentHighBid,
		},
		{
			name:    "above_current_high_accepted",
			bids:    []model.Bid{bidAt("user1", 150, t0.Add(time.Hour))},
			amount:  151,
			now:     t0.Add(2 * time.Hour),
			wantErr: nil,
		},
		{
			name:    "exactly_at_close_time_rejected",
			amount:  150,
			now:     t0.Add(24 * time.Hour),
			wantErr: auctionerrors.ErrAuctionClosed,
		},
		{
			name:    "after_close_time_rejected",
			amount:  150,
			now:     t0.Add(30 * time.Hour),
			wantErr: auctionerrors.ErrAuctionClosed,
		},
		{
			// Closure is checked before the price rules, so a late
			// low-ball bid reports AuctionClosed, not BelowStartingPrice.
			name:    "closed_wins_over_price_rule",
			amount:  1,
			now:     t0.Add(25 * time.Hour),
			wantErr: auctionerrors.ErrAuctionClosed,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateBid(good, tc.bids, tc.amount, tc.now)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// Per-good configurable duration is canonical: two goods created at the same
// instant with different durations close at different times.
func TestValidateBid_PerGoodDuration(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	short := testGood(100, t0, 1)
	long := testGood(100, t0, 48)

	now := t0.Add(2 * time.Hour)
	require.ErrorIs(t, ValidateBid(short, nil, 150, now), auctionerrors.ErrAuctionClosed)
	require.NoError(t, ValidateBid(long, nil, 150, now))
}

// Property: a bid at or below the starting price is always rejected, and a
// bid not strictly above the running maximum is always rejected, for random
// bid histories.
func TestValidateBid_Properties(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		price := rapid.Float64Range(1, 10_000).Draw(rt, "price")
		good := testGood(price, t0, 24)
		now := t0.Add(time.Hour)

		n := rapid.IntRange(0, 20).Draw(rt, "n")
		var bids []model.Bid
		running := price
		for i := 0; i < n; i++ {
			amount := rapid.Float64Range(1, 20_000).Draw(rt, "amount")
			bids = append(bids, bidAt("user", amount, t0.Add(time.Duration(i)*time.Minute)))
			if amount > running {
				running = amount
			}
		}

		candidate := rapid.Float64Range(0, 30_000).Draw(rt, "candidate")
		err := ValidateBid(good, bids, candidate, now)

		switch {
		case candidate <= price:
			if err == nil {
				rt.Fatalf("bid %v at or below price %v was accepted", candidate, price)
			}
		case len(bids) > 0 && candidate <= highestMust(bids):
			if err == nil {
				rt.Fatalf("bid %v not above running max %v was accepted", candidate, running)
			}
		default:
			if err != nil {
				rt.Fatalf("bid %v above price %v and max %v was rejected: %v", candidate, price, running, err)
			}
		}
	})
}

func highestMust(bids []model.Bid) float64 {
	high, _ := highestAmount(bids)
	return high
}
