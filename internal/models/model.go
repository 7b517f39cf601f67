package models

import "time"

// User represents a participant in the auction
type User struct {
	UserID   string  `json:"user_id" gorm:"column:user_id;primaryKey;size:36"`
	Nickname string  `json:"nickname" gorm:"column:nickname;size:64;not null"`
	Balance  float64 `json:"balance" gorm:"column:balance;not null"`
}

// Good represents an item listed for auction.
// SoldID stays nil until settlement assigns the winner; it is written
// exactly once and never changed afterwards.
type Good struct {
	GoodID        string    `json:"good_id" gorm:"column:good_id;primaryKey;size:36"`
	OwnerID       string    `json:"owner_id" gorm:"column:owner_id;size:36;not null"`
	Name          string    `json:"name" gorm:"column:name;size:255;not null"`
	Price         float64   `json:"price" gorm:"column:price;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;not null"`
	DurationHours int       `json:"duration_hours" gorm:"column:duration_hours;not null"`
	SoldID        *string   `json:"sold_id,omitempty" gorm:"column:sold_id;size:36"`
}

// CloseAt returns the instant the good's auction closes.
func (g Good) CloseAt() time.Time {
	return g.CreatedAt.Add(time.Duration(g.DurationHours) * time.Hour)
}

// ClosedAt reports whether the auction is closed at the given time.
func (g Good) ClosedAt(now time.Time) bool {
	return !now.Before(g.CloseAt())
}

// Sold reports whether the good has been settled to a winner.
func (g Good) Sold() bool {
	return g.SoldID != nil
}

// Bid represents a user's bid on a good. Bids are append-only.
type Bid struct {
	BidID     string    `json:"bid_id" gorm:"column:bid_id;primaryKey;size:36"`
	GoodID    string    `json:"good_id" gorm:"column:good_id;size:36;not null;index"`
	UserID    string    `json:"user_id" gorm:"column:user_id;size:36;not null"`
	Amount    float64   `json:"amount" gorm:"column:amount;not null"`
	Message   string    `json:"message" gorm:"column:message;size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null"`
}
