package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/marketerrors"
	"marketplace/internal/models"
)

// GormConversationRepo is the SQLite-backed implementation of ConversationDB
type GormConversationRepo struct {
	db *gorm.DB
}

// NewGormConversationRepo creates a conversation repository on top of an open gorm connection
func NewGormConversationRepo(db *gorm.DB) *GormConversationRepo {
	return &GormConversationRepo{db: db}
}

// messageOrder loads a conversation's messages oldest-first.
func messageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

// memberScoped restricts a conversation query to threads the given user
// belongs to. Non-members see the same result as a missing row.
func memberScoped(db *gorm.DB, memberID uint) *gorm.DB {
	return db.
		Joins("JOIN conversation_members cm ON cm.conversation_id = conversations.id").
		Where("cm.user_id = ?", memberID)
}

// FindConversation returns the conversation for (item, member), or
// ErrConversationNotFound when the pair has no thread yet.
func (r *GormConversationRepo) FindConversation(itemID, memberID uint) (models.Conversation, error) {
	return findConversation(r.db, itemID, memberID)
}

func findConversation(db *gorm.DB, itemID, memberID uint) (models.Conversation, error) {
	var conv models.Conversation
	err := memberScoped(db, memberID).
		Where("conversations.item_id = ?", itemID).
		First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Conversation{}, fmt.Errorf("find conversation for item %d: %w", itemID, marketerrors.ErrConversationNotFound)
	}
	if err != nil {
		return models.Conversation{}, fmt.Errorf("find conversation for item %d: %w", itemID, err)
	}
	return conv, nil
}

// CreateConversation creates a conversation with the given members and its
// first message. The duplicate lookup re-runs inside the transaction, so two
// near-simultaneous first messages from the same buyer cannot produce two
// threads: the loser of the race gets the winner's conversation back.
func (r *GormConversationRepo) CreateConversation(itemID, buyerID uint, memberIDs []uint, firstMessage *models.ConversationMessage) (models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findConversation(tx, itemID, buyerID)
		if err == nil {
			conv = existing
			return nil
		}
		if !errors.Is(err, marketerrors.ErrConversationNotFound) {
			return err
		}

		now := time.Now().UTC()
		conv = models.Conversation{ItemID: itemID, CreatedAt: now, ModifiedAt: now}
		if err := tx.Create(&conv).Error; err != nil {
			return err
		}
		for _, id := range memberIDs {
			member := models.ConversationMember{ConversationID: conv.ID, UserID: id}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}

		firstMessage.ConversationID = conv.ID
		return tx.Create(firstMessage).Error
	})
	if err != nil {
		return models.Conversation{}, fmt.Errorf("create conversation for item %d: %w", itemID, err)
	}

	// reload so members and messages come back populated either way
	return r.GetConversationForMember(conv.ID, buyerID)
}

// GetConversationForMember returns a conversation with members and ordered
// messages, but only when the requester is a member. A thread that exists but
// does not include the requester reads as not found.
func (r *GormConversationRepo) GetConversationForMember(conversationID, memberID uint) (models.Conversation, error) {
	var conv models.Conversation
	err := memberScoped(r.db, memberID).
		Where("conversations.id = ?", conversationID).
		Preload("Members").
		Preload("Messages", messageOrder).
		Preload("Item").
		First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Conversation{}, fmt.Errorf("get conversation %d: %w", conversationID, marketerrors.ErrConversationNotFound)
	}
	if err != nil {
		return models.Conversation{}, fmt.Errorf("get conversation %d: %w", conversationID, err)
	}
	return conv, nil
}

// ListConversationsForMember returns every conversation the user belongs to,
// most recently modified first.
func (r *GormConversationRepo) ListConversationsForMember(memberID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := memberScoped(r.db, memberID).
		Order("conversations.modified_at DESC").
		Preload("Members").
		Preload("Messages", messageOrder).
		Preload("Item").
		Find(&convs).Error
	if err != nil {
		return nil, fmt.Errorf("list conversations for user %d: %w", memberID, err)
	}
	return convs, nil
}

// AppendMessage persists a message and bumps the conversation's modified_at
// in the same transaction, so the inbox reorders atomically with the write.
func (r *GormConversationRepo) AppendMessage(msg *models.ConversationMessage) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("modified_at", time.Now().UTC()).Error
	})
	if err != nil {
		return fmt.Errorf("append message to conversation %d: %w", msg.ConversationID, err)
	}
	return nil
}
