package repository

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLedger is a MySQL-backed implementation of LedgerStore.
type GormLedger struct {
	db *gorm.DB
}

// OpenGormLedger connects to MySQL, configures the connection pool, and
// runs migrations for the ledger tables.
func OpenGormLedger(dsn string) (*GormLedger, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&model.User{}, &model.Good{}, &model.Bid{}); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger tables: %w", err)
	}

	return &GormLedger{db: db}, nil
}

// NewGormLedger wraps an already-open gorm connection.
func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

// storeErr normalizes driver failures into the transient-store sentinel so
// the scheduler can tell them apart from validation outcomes.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, auctionerrors.ErrStoreUnavailable, err)
}

func (r *GormLedger) CreateUser(ctx context.Context, user model.User) error {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return storeErr(fmt.Sprintf("create user %s", user.UserID), err)
	}
	return nil
}

func (r *GormLedger) GetUser(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, storeErr(fmt.Sprintf("get user %s", userID), err)
	}
	return user, nil
}

func (r *GormLedger) CreateGood(ctx context.Context, good model.Good) error {
	if err := r.db.WithContext(ctx).Create(&good).Error; err != nil {
		return storeErr(fmt.Sprintf("create good %s", good.GoodID), err)
	}
	return nil
}

func (r *GormLedger) GetGood(ctx context.Context, goodID string) (model.Good, error) {
	var good model.Good
	err := r.db.WithContext(ctx).First(&good, "good_id = ?", goodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Good{}, fmt.Errorf("get good %s: %w", goodID, auctionerrors.ErrGoodNotFound)
	}
	if err != nil {
		return model.Good{}, storeErr(fmt.Sprintf("get good %s", goodID), err)
	}
	return good, nil
}

func (r *GormLedger) ListUnsoldGoods(ctx context.Context) ([]model.Good, error) {
	var goods []model.Good
	if err := r.db.WithContext(ctx).Where("sold_id IS NULL").Find(&goods).Error; err != nil {
		return nil, storeErr("list unsold goods", err)
	}
	return goods, nil
}

// InsertBid appends a bid after re-checking, inside the transaction, that
// the good is still open. The row lock on the good serializes acceptance
// against a settlement running for the same good.
func (r *GormLedger) InsertBid(ctx context.Context, bid model.Bid) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var good model.Good
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&good, "good_id = ?", bid.GoodID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auctionerrors.ErrGoodNotFound
		}
		if err != nil {
			return err
		}
		if good.Sold() || good.ClosedAt(bid.CreatedAt) {
			return auctionerrors.ErrAuctionClosed
		}
		return tx.Create(&bid).Error
	})
	if err != nil {
		if errors.Is(err, auctionerrors.ErrGoodNotFound) || errors.Is(err, auctionerrors.ErrAuctionClosed) {
			return fmt.Errorf("insert bid for good %s: %w", bid.GoodID, err)
		}
		return storeErr(fmt.Sprintf("insert bid for good %s", bid.GoodID), err)
	}
	return nil
}

func (r *GormLedger) ListBids(ctx context.Context, goodID string) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.WithContext(ctx).Where("good_id = ?", goodID).Order("created_at ASC").Find(&bids).Error; err != nil {
		return nil, storeErr(fmt.Sprintf("list bids for good %s", goodID), err)
	}
	return bids, nil
}

// ApplySettlement sets the good's winner and debits the winner's balance in
// one transaction. The row lock on the good serializes against InsertBid,
// so the in-transaction checks are authoritative: a good that is already
// sold reports ErrAlreadySettled, and a stored bid above the caller's
// winner reports ErrStaleWinner, with no writes in either case.
func (r *GormLedger) ApplySettlement(ctx context.Context, goodID, winnerID string, amount float64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var good model.Good
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&good, "good_id = ?", goodID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auctionerrors.ErrGoodNotFound
		}
		if err != nil {
			return err
		}
		if good.Sold() {
			return auctionerrors.ErrAlreadySettled
		}

		var higher int64
		if err := tx.Model(&model.Bid{}).
			Where("good_id = ? AND amount > ?", goodID, amount).
			Count(&higher).Error; err != nil {
			return err
		}
		if higher > 0 {
			return auctionerrors.ErrStaleWinner
		}

		var winner model.User
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&winner, "user_id = ?", winnerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auctionerrors.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Good{}).
			Where("good_id = ?", goodID).
			Update("sold_id", winnerID).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("user_id = ?", winnerID).
			Update("balance", gorm.Expr("balance - ?", amount)).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, auctionerrors.ErrAlreadySettled),
			errors.Is(err, auctionerrors.ErrGoodNotFound),
			errors.Is(err, auctionerrors.ErrUserNotFound),
			errors.Is(err, auctionerrors.ErrStaleWinner):
			return fmt.Errorf("apply settlement for good %s: %w", goodID, err)
		}
		return storeErr(fmt.Sprintf("apply settlement for good %s", goodID), err)
	}
	return nil
}
