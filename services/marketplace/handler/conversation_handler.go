package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/models"
	"marketplace/services/marketplace/helpers"
	"marketplace/utils"
)

type ConversationServiceInterface interface {
	StartOrResume(itemID, buyerID uint, content string) (models.Conversation, bool, error)
	ListForUser(userID uint) ([]models.Conversation, error)
	GetThread(conversationID, userID uint) (models.Conversation, error)
	PostMessage(conversationID, userID uint, content string) (models.ConversationMessage, error)
}

type ConversationHandler struct {
	service ConversationServiceInterface
}

func NewConversationHandler(service ConversationServiceInterface) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// StartConversationHandler handles POST /conversations/items/:item_id.
// Resuming an existing thread answers 200 with that thread; a fresh one
// answers 201.
func (h *ConversationHandler) StartConversationHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)
	itemID, err := helpers.ParseIDParam(c, "item_id")
	if err != nil {
		helpers.HandleBindError(c, "StartConversationHandler", err)
		return
	}

	var req helpers.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartConversationHandler", err)
		return
	}

	conv, created, err := h.service.StartOrResume(itemID, userID, req.Content)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StartConversationHandler: failed to start conversation", map[string]any{
			"item_id": itemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.NewConversationResponse(conv)
	if created {
		utils.JSONResponse(c, http.StatusCreated, resp, "conversation started successfully")
	} else {
		utils.JSONResponse(c, http.StatusOK, resp, "existing conversation found")
	}
	helpers.LogSuccess("StartConversationHandler", "conversation resolved", map[string]any{
		"conversation_id": conv.ID,
		"item_id":         itemID,
		"user_id":         userID,
		"created":         created,
	})
}

// InboxHandler handles GET /conversations
func (h *ConversationHandler) InboxHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)

	convs, err := h.service.ListForUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("InboxHandler: error retrieving conversations", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewConversationResponses(convs), "conversations retrieved successfully")
	helpers.LogSuccess("InboxHandler", "conversations retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(convs),
	})
}

// GetThreadHandler handles GET /conversations/:conversation_id (member only)
func (h *ConversationHandler) GetThreadHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)
	conversationID, err := helpers.ParseIDParam(c, "conversation_id")
	if err != nil {
		helpers.HandleBindError(c, "GetThreadHandler", err)
		return
	}

	conv, err := h.service.GetThread(conversationID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetThreadHandler: error retrieving conversation", map[string]any{
			"conversation_id": conversationID,
			"user_id":         userID,
			"error":           err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewConversationThreadResponse(conv), "conversation retrieved successfully")
	helpers.LogSuccess("GetThreadHandler", "conversation retrieved successfully", map[string]any{
		"conversation_id": conv.ID,
		"user_id":         userID,
		"message_count":   len(conv.Messages),
	})
}

// PostMessageHandler handles POST /conversations/:conversation_id/messages (member only)
func (h *ConversationHandler) PostMessageHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)
	conversationID, err := helpers.ParseIDParam(c, "conversation_id")
	if err != nil {
		helpers.HandleBindError(c, "PostMessageHandler", err)
		return
	}

	var req helpers.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostMessageHandler", err)
		return
	}

	msg, err := h.service.PostMessage(conversationID, userID, req.Content)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PostMessageHandler: failed to post message", map[string]any{
			"conversation_id": conversationID,
			"user_id":         userID,
			"error":           err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewMessageResponse(msg), "message posted successfully")
	helpers.LogSuccess("PostMessageHandler", "message posted successfully", map[string]any{
		"conversation_id": conversationID,
		"message_id":      msg.ID,
		"user_id":         userID,
	})
}
