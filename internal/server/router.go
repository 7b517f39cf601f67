package server

import (
	"auction-house/internal/notifier"
	handler "auction-house/services/auction/handler"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. The hub may be
// nil, in which case the websocket endpoint is not mounted.
func SetupRouter(auctionService handler.AuctionServiceInterface, hub *notifier.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.CreateUserHandler)
		users.GET("/:user_id", auctionHandler.GetUserHandler)
	}

	goods := router.Group("/goods")
	{
		goods.POST("", auctionHandler.CreateGoodHandler)
		goods.GET("", auctionHandler.ListGoodsHandler)
		goods.GET("/:good_id", auctionHandler.GetGoodHandler)
		goods.POST("/:good_id/bids", auctionHandler.PlaceBidHandler)
		goods.GET("/:good_id/winning", auctionHandler.GetWinningBidHandler)
	}

	if hub != nil {
		router.GET("/ws/goods/:good_id", func(c *gin.Context) {
			if err := hub.Subscribe(c.Writer, c.Request, c.Param("good_id")); err != nil {
				utils.Warn("websocket upgrade failed", map[string]any{
					"good_id": c.Param("good_id"),
					"error":   err.Error(),
				})
			}
		})
	}

	return router
}
