package server

import (
	"collectibles-auction/internal/auction"
	bidding "collectibles-auction/internal/biddingService"
	"collectibles-auction/internal/notifier"
	"collectibles-auction/internal/repository"
	biddinghandler "collectibles-auction/services/bidding/handler"
	userhandler "collectibles-auction/services/users/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	biddingService *bidding.BiddingService,
	catalog *auction.Catalog,
	users *repository.UserStore,
	prices *notifier.PriceNotifier,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := biddinghandler.NewBiddingHandler(biddingService)
	userHandler := userhandler.NewUserHandler(users, catalog)

	items := router.Group("/items")
	{
		items.GET("", biddingHandler.ListItemsHandler)
		items.GET("/:item_id", biddingHandler.GetItemHandler)
		items.POST("/:item_id/bid", biddingHandler.PlaceBidHandler)
	}

	api := router.Group("/api")
	{
		api.PUT("/items/:item_id/price", biddingHandler.UpdatePriceHandler)
	}

	usersGroup := router.Group("/users")
	{
		usersGroup.GET("", userHandler.ListUsersHandler)
		usersGroup.GET("/:user_id", userHandler.GetUserHandler)
		usersGroup.POST("/:user_id", userHandler.CreateUserHandler)
		usersGroup.PUT("/:user_id", userHandler.UpdateUserHandler)
		usersGroup.DELETE("/:user_id", userHandler.DeleteUserHandler)
		usersGroup.OPTIONS("/:user_id", userHandler.UserExistsHandler)
	}

	bidders := router.Group("/bidders")
	{
		bidders.GET("/:bidder_name/items", userHandler.BidderItemsHandler)
	}

	router.GET("/websocket/prices", PriceFeedHandler(prices))

	return router
}
