package helpers

// Request/Response DTOs
type CreateUserRequest struct {
	Nickname string  `json:"nickname" binding:"required"`
	Balance  float64 `json:"balance" binding:"gte=0"`
}

type CreateGoodRequest struct {
	OwnerID       string  `json:"owner_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
	DurationHours int     `json:"duration_hours" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	UserID  string  `json:"user_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Message string  `json:"message"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	GoodID    string  `json:"good_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at"`
}

type GoodResponse struct {
	GoodID        string  `json:"good_id"`
	OwnerID       string  `json:"owner_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	CreatedAt     string  `json:"created_at"`
	DurationHours int     `json:"duration_hours"`
	CloseAt       string  `json:"close_at"`
	SoldID        *string `json:"sold_id,omitempty"`
}

type GoodDetailResponse struct {
	Good GoodResponse  `json:"good"`
	Bids []BidResponse `json:"bids"`
}
