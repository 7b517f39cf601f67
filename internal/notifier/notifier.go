package notifier

// Event types pushed to subscribers of a good's auction room.
const (
	EventBid     = "bid"
	EventSettled = "settled"
	EventUnsold  = "unsold"
)

// BidAcceptedEvent is pushed after a bid passes validation and is recorded.
type BidAcceptedEvent struct {
	GoodID         string  `json:"good_id"`
	Amount         float64 `json:"amount"`
	Message        string  `json:"message"`
	BidderNickname string  `json:"bidder_nickname"`
}

// AuctionSettledEvent is pushed after settlement commits a winner.
type AuctionSettledEvent struct {
	GoodID   string  `json:"good_id"`
	WinnerID string  `json:"winner_id"`
	Amount   float64 `json:"amount"`
}

// AuctionUnsoldEvent is pushed when an auction closes with no bids.
type AuctionUnsoldEvent struct {
	GoodID string `json:"good_id"`
}

// Sink receives auction events for real-time delivery. Implementations
// must not block the caller; delivery is best-effort.
type Sink interface {
	BidAccepted(event BidAcceptedEvent)
	AuctionSettled(event AuctionSettledEvent)
	AuctionUnsold(event AuctionUnsoldEvent)
}

// NoopSink discards all events. Used where no push channel is wired.
type NoopSink struct{}

func (NoopSink) BidAccepted(BidAcceptedEvent)       {}
func (NoopSink) AuctionSettled(AuctionSettledEvent) {}
func (NoopSink) AuctionUnsold(AuctionUnsoldEvent)   {}
