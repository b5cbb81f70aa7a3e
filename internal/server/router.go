package server

import (
	"github.com/gin-gonic/gin"

	"listing-studio/internal/images"
	listing "listing-studio/internal/listingService"
	handler "listing-studio/services/listing/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(listingService *listing.ListingService, host images.Host) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	listingHandler := handler.NewListingHandler(listingService, host)

	listings := router.Group("/listings")
	{
		listings.POST("", listingHandler.CreateListingHandler)
		listings.PUT("/:listing_id", listingHandler.UpdateListingHandler)
		listings.DELETE("/:listing_id", listingHandler.RemoveListingHandler)
		listings.GET("/:listing_id/views", listingHandler.GetListingViewsHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", listingHandler.CreateAuctionHandler)
		auctions.POST("/:listing_id/cancel", listingHandler.CancelAuctionHandler)
	}

	drafts := router.Group("/drafts")
	{
		drafts.POST("", listingHandler.SaveDraftHandler)
		drafts.DELETE("/:draft_id", listingHandler.DeleteDraftHandler)
	}

	router.GET("/sellers/:seller/drafts", listingHandler.GetDraftsHandler)
	router.POST("/images", listingHandler.UploadImagesHandler)

	return router
}
