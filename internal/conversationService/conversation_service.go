package conversation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/marketerrors"
	"marketplace/internal/models"
	"marketplace/internal/repository"
	"marketplace/utils"
)

// ConversationService defines the business logic for buyer-seller threads
type ConversationService struct {
	repo    repository.ConversationDB
	catalog repository.CatalogDB
}

// NewConversationService creates a new ConversationService instance
func NewConversationService(repo repository.ConversationDB, catalog repository.CatalogDB) *ConversationService {
	return &ConversationService{
		repo:    repo,
		catalog: catalog,
	}
}

// StartOrResume returns the existing conversation for (itemID, buyerID) when
// one exists; the submitted content is ignored in that case, matching the
// redirect-to-thread behavior of the inbox. Otherwise it validates the first
// message, creates the thread with members {buyer, seller} and appends the
// message. The boolean reports whether a new thread was created.
func (s *ConversationService) StartOrResume(itemID, buyerID uint, content string) (models.Conversation, bool, error) {
	item, err := s.catalog.GetItem(itemID)
	if err != nil {
		return models.Conversation{}, false, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	conv, err := s.repo.FindConversation(itemID, buyerID)
	if err == nil {
		return conv, false, nil
	}
	if !errors.Is(err, marketerrors.ErrConversationNotFound) {
		return models.Conversation{}, false, fmt.Errorf("service: failed to look up conversation for item %d: %w", itemID, err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Conversation{}, false, fmt.Errorf("service: start conversation for item %d: %w", itemID, marketerrors.ErrEmptyMessage)
	}

	memberIDs := []uint{buyerID}
	if item.CreatedBy != buyerID {
		memberIDs = append(memberIDs, item.CreatedBy)
	}

	author := buyerID
	msg := models.ConversationMessage{
		Content:   content,
		CreatedAt: time.Now().UTC(),
		CreatedBy: &author,
	}
	conv, err = s.repo.CreateConversation(itemID, buyerID, memberIDs, &msg)
	if err != nil {
		return models.Conversation{}, false, fmt.Errorf("service: failed to create conversation for item %d: %w", itemID, err)
	}

	utils.Info("conversation started", map[string]any{
		"conversation_id": conv.ID,
		"item_id":         itemID,
		"buyer_id":        buyerID,
	})
	return conv, true, nil
}

// ListForUser returns the user's conversations, most recently modified first
func (s *ConversationService) ListForUser(userID uint) ([]models.Conversation, error) {
	convs, err := s.repo.ListConversationsForMember(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list conversations for user %d: %w", userID, err)
	}
	return convs, nil
}

// GetThread returns one conversation with its messages oldest-first. A
// conversation the user is not a member of reads as not found.
func (s *ConversationService) GetThread(conversationID, userID uint) (models.Conversation, error) {
	conv, err := s.repo.GetConversationForMember(conversationID, userID)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("service: failed to get conversation %d: %w", conversationID, err)
	}
	return conv, nil
}

// PostMessage appends a message to a conversation the user is a member of
// and bumps the thread's modified time, which reorders the inbox.
func (s *ConversationService) PostMessage(conversationID, userID uint, content string) (models.ConversationMessage, error) {
	if _, err := s.repo.GetConversationForMember(conversationID, userID); err != nil {
		return models.ConversationMessage{}, fmt.Errorf("service: failed to get conversation %d: %w", conversationID, err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return models.ConversationMessage{}, fmt.Errorf("service: post message to conversation %d: %w", conversationID, marketerrors.ErrEmptyMessage)
	}

	author := userID
	msg := models.ConversationMessage{
		ConversationID: conversationID,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
		CreatedBy:      &author,
	}
	if err := s.repo.AppendMessage(&msg); err != nil {
		return models.ConversationMessage{}, fmt.Errorf("service: failed to append message to conversation %d: %w", conversationID, err)
	}

	utils.Info("message posted", map[string]any{
		"conversation_id": conversationID,
		"user_id":         userID,
		"message_id":      msg.ID,
	})
	return msg, nil
}
