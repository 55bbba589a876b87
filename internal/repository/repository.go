package repository

import "marketplace/internal/models"

// CatalogDB defines item and category storage for the marketplace
type CatalogDB interface {
	SearchItems(query string, categoryID uint) ([]models.Item, error)
	GetItem(id uint) (models.Item, error)
	GetRelatedItems(item models.Item, limit int) ([]models.Item, error)
	GetItemsByOwner(ownerID uint) ([]models.Item, error)
	GetCategory(id uint) (models.Category, error)
	ListCategories() ([]models.Category, error)
	CreateItemWithImages(item *models.Item, imagePaths []string) error
	UpdateItem(item *models.Item, newImagePaths []string) error
	DeleteItemCascade(itemID uint) ([]string, error)
}

// ConversationDB defines conversation and message storage for the marketplace
type ConversationDB interface {
	FindConversation(itemID, memberID uint) (models.Conversation, error)
	CreateConversation(itemID, buyerID uint, memberIDs []uint, firstMessage *models.ConversationMessage) (models.Conversation, error)
	GetConversationForMember(conversationID, memberID uint) (models.Conversation, error)
	ListConversationsForMember(memberID uint) ([]models.Conversation, error)
	AppendMessage(msg *models.ConversationMessage) error
}
