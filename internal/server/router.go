package server

import (
	handler "placement-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the auction engine
func SetupRouter(engine handler.AuctionEngineInterface, adv handler.AdvisorInterface, agg handler.AnalyticsInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(engine, adv, agg)

	placements := router.Group("/placements")
	{
		placements.POST("", auctionHandler.InitializePlacementHandler)
		placements.GET("", auctionHandler.ListActivePlacementsHandler)
		placements.GET("/:placement_id/status", auctionHandler.GetPlacementStatusHandler)
		placements.GET("/:placement_id/recommendations", auctionHandler.GetRecommendationsHandler)
		placements.POST("/:placement_id/finalize", auctionHandler.FinalizePlacementHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.SubmitBidHandler)
	}

	bidders := router.Group("/bidders")
	{
		bidders.GET("/:bidder_id/analytics", auctionHandler.GetBidderAnalyticsHandler)
	}

	return router
}
