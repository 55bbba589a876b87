package server

import (
	"github.com/gin-gonic/gin"

	catalog "marketplace/internal/catalogService"
	conversation "marketplace/internal/conversationService"
	"marketplace/services/marketplace/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalogService *catalog.CatalogService, conversationService *conversation.ConversationService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	catalogHandler := handler.NewCatalogHandler(catalogService)
	conversationHandler := handler.NewConversationHandler(conversationService)

	router.GET("/categories", catalogHandler.ListCategoriesHandler)

	items := router.Group("/items")
	{
		items.GET("/search", catalogHandler.SearchItemsHandler)
		items.GET("/:item_id", catalogHandler.GetItemHandler)

		owned := items.Group("", RequireUser)
		{
			owned.GET("", catalogHandler.ListOwnItemsHandler)
			owned.POST("", catalogHandler.CreateItemHandler)
			owned.PUT("/:item_id", catalogHandler.UpdateItemHandler)
			owned.DELETE("/:item_id", catalogHandler.DeleteItemHandler)
		}
	}

	conversations := router.Group("/conversations", RequireUser)
	{
		conversations.GET("", conversationHandler.InboxHandler)
		conversations.POST("/items/:item_id", conversationHandler.StartConversationHandler)
		conversations.GET("/:conversation_id", conversationHandler.GetThreadHandler)
		conversations.POST("/:conversation_id/messages", conversationHandler.PostMessageHandler)
	}

	return router
}
