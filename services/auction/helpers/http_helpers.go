package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrGoodNotFound):
		return http.StatusNotFound, "good not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput), errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusForbidden, "the auction has ended"
	case errors.Is(err, auctionerrors.ErrBelowStartingPrice):
		return http.StatusForbidden, "you must bid higher than the starting price"
	case errors.Is(err, auctionerrors.ErrBelowCurrentHighBid):
		return http.StatusForbidden, "must be higher than previous bid"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for good"
	case errors.Is(err, auctionerrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a bid model to its API shape
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		GoodID:    bid.GoodID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		Message:   bid.Message,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToGoodResponse converts a good model to its API shape
func ToGoodResponse(good model.Good) GoodResponse {
	return GoodResponse{
		GoodID:        good.GoodID,
		OwnerID:       good.OwnerID,
		Name:          good.Name,
		Price:         good.Price,
		CreatedAt:     good.CreatedAt.UTC().Format(time.RFC3339),
		DurationHours: good.DurationHours,
		CloseAt:       good.CloseAt().UTC().Format(time.RFC3339),
		SoldID:        good.SoldID,
	}
}
