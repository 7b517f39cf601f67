package handler

import (
	"context"
	"fmt"
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateUser(ctx context.Context, nickname string, balance float64) (model.User, error)
	GetUser(ctx context.Context, userID string) (model.User, error)
	CreateGood(ctx context.Context, ownerID, name string, price float64, durationHours int) (model.Good, error)
	PlaceBid(ctx context.Context, goodID, userID string, amount float64, message string) (model.Bid, error)
	ListOpenGoods(ctx context.Context) ([]model.Good, error)
	GetGoodWithBids(ctx context.Context, goodID string) (model.Good, []model.Bid, error)
	GetWinningBid(ctx context.Context, goodID string) (model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateUserHandler handles POST /users
func (h *AuctionHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Nickname, req.Balance)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateUserHandler: failed to create user", map[string]any{
			"nickname": req.Nickname,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user created successfully")
	helpers.LogSuccess("CreateUserHandler", "user created successfully", map[string]any{
		"user_id":  user.UserID,
		"nickname": user.Nickname,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *AuctionHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// CreateGoodHandler handles POST /goods
func (h *AuctionHandler) CreateGoodHandler(c *gin.Context) {
	var req helpers.CreateGoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGoodHandler", err)
		return
	}

	good, err := h.service.CreateGood(c.Request.Context(), req.OwnerID, req.Name, req.Price, req.DurationHours)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateGoodHandler: failed to create good", map[string]any{
			"owner_id": req.OwnerID,
			"name":     req.Name,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToGoodResponse(good), "good listed successfully")
	helpers.LogSuccess("CreateGoodHandler", "good listed successfully", map[string]any{
		"good_id":  good.GoodID,
		"owner_id": good.OwnerID,
		"price":    good.Price,
		"close_at": good.CloseAt(),
	})
}

// ListGoodsHandler handles GET /goods
func (h *AuctionHandler) ListGoodsHandler(c *gin.Context) {
	goods, err := h.service.ListOpenGoods(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListGoodsHandler: error listing goods", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.GoodResponse, 0, len(goods))
	for _, good := range goods {
		resp = append(resp, helpers.ToGoodResponse(good))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "goods retrieved successfully")
}

// GetGoodHandler handles GET /goods/:good_id
func (h *AuctionHandler) GetGoodHandler(c *gin.Context) {
	goodID := c.Param("good_id")
	good, bids, err := h.service.GetGoodWithBids(c.Request.Context(), goodID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetGoodHandler: error retrieving good", map[string]any{"good_id": goodID, "error": err.Error()})
		return
	}

	resp := helpers.GoodDetailResponse{
		Good: helpers.ToGoodResponse(good),
		Bids: make([]helpers.BidResponse, 0, len(bids)),
	}
	for _, bid := range bids {
		resp.Bids = append(resp.Bids, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "good retrieved successfully")
}

// PlaceBidHandler handles POST /goods/:good_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	goodID := c.Param("good_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), goodID, req.UserID, req.Amount, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to record bid", map[string]any{
			"good_id": goodID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"good_id": bid.GoodID,
		"user_id": req.UserID,
		"amount":  bid.Amount,
	})
}

// GetWinningBidHandler handles GET /goods/:good_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	goodID := c.Param("good_id")
	bid, err := h.service.GetWinningBid(c.Request.Context(), goodID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("GetWinningBidHandler: no winning bid", map[string]any{"good_id": goodID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
}
