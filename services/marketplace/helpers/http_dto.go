package helpers

import (
	"time"

	catalog "marketplace/internal/catalogService"
	"marketplace/internal/models"
)

// Request DTOs

// ItemFormRequest carries the multipart form fields for item create and
// edit. Everything binds as a string; the catalog service owns parsing so a
// bad price and a missing category surface together in one error list.
type ItemFormRequest struct {
	Condition   string `form:"condition"`
	CategoryID  string `form:"category_id"`
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Location    string `form:"location"`
	IsSold      bool   `form:"is_sold"`
}

// ToFields maps the request onto the catalog service's field set
func (r ItemFormRequest) ToFields() catalog.ItemFields {
	return catalog.ItemFields{
		Condition:   r.Condition,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Location:    r.Location,
		IsSold:      r.IsSold,
	}
}

// MessageRequest carries the body of a conversation message
type MessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Response DTOs

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ItemResponse struct {
	ID          uint     `json:"id"`
	Condition   string   `json:"condition"`
	CategoryID  uint     `json:"category_id"`
	Category    string   `json:"category,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	IsSold      bool     `json:"is_sold"`
	CreatedBy   uint     `json:"created_by"`
	CreatedAt   string   `json:"created_at"`
	MainImage   string   `json:"main_image,omitempty"`
	Images      []string `json:"images"`
}

type ItemDetailResponse struct {
	Item         ItemResponse   `json:"item"`
	RelatedItems []ItemResponse `json:"related_items"`
}

type MessageResponse struct {
	ID             uint   `json:"id"`
	ConversationID uint   `json:"conversation_id"`
	Content        string `json:"content"`
	CreatedBy      *uint  `json:"created_by"`
	CreatedAt      string `json:"created_at"`
}

type ConversationResponse struct {
	ID          uint             `json:"id"`
	ItemID      uint             `json:"item_id"`
	ItemName    string           `json:"item_name,omitempty"`
	MemberIDs   []uint           `json:"member_ids"`
	CreatedAt   string           `json:"created_at"`
	ModifiedAt  string           `json:"modified_at"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
}

type ConversationThreadResponse struct {
	ID         uint              `json:"id"`
	ItemID     uint              `json:"item_id"`
	ItemName   string            `json:"item_name,omitempty"`
	MemberIDs  []uint            `json:"member_ids"`
	CreatedAt  string            `json:"created_at"`
	ModifiedAt string            `json:"modified_at"`
	Messages   []MessageResponse `json:"messages"`
}

// NewCategoryResponses maps categories onto their response form
func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

// NewItemResponse maps an item onto its response form
func NewItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Condition:   item.Condition,
		CategoryID:  item.CategoryID,
		Category:    item.Category.Name,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Location:    item.Location,
		IsSold:      item.IsSold,
		CreatedBy:   item.CreatedBy,
		CreatedAt:   formatTime(item.CreatedAt),
		MainImage:   item.MainImage(),
		Images:      item.AllImages(),
	}
}

// NewItemResponses maps a slice of items onto their response form
func NewItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewItemResponse(item))
	}
	return out
}

// NewMessageResponse maps a message onto its response form
func NewMessageResponse(msg models.ConversationMessage) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Content:        msg.Content,
		CreatedBy:      msg.CreatedBy,
		CreatedAt:      formatTime(msg.CreatedAt),
	}
}

// NewConversationResponse maps a conversation onto its inbox summary form.
// It expects Messages to be loaded oldest-first; the preview is the last one.
func NewConversationResponse(conv models.Conversation) ConversationResponse {
	resp := ConversationResponse{
		ID:         conv.ID,
		ItemID:     conv.ItemID,
		ItemName:   conv.Item.Name,
		MemberIDs:  memberIDs(conv),
		CreatedAt:  formatTime(conv.CreatedAt),
		ModifiedAt: formatTime(conv.ModifiedAt),
	}
	if n := len(conv.Messages); n > 0 {
		last := NewMessageResponse(conv.Messages[n-1])
		resp.LastMessage = &last
	}
	return resp
}

// NewConversationResponses maps conversations onto their inbox summary form
func NewConversationResponses(convs []models.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(convs))
	for _, conv := range convs {
		out = append(out, NewConversationResponse(conv))
	}
	return out
}

// NewConversationThreadResponse maps a conversation with its full message
// history onto the thread view form.
func NewConversationThreadResponse(conv models.Conversation) ConversationThreadResponse {
	msgs := make([]MessageResponse, 0, len(conv.Messages))
	for _, msg := range conv.Messages {
		msgs = append(msgs, NewMessageResponse(msg))
	}
	return ConversationThreadResponse{
		ID:         conv.ID,
		ItemID:     conv.ItemID,
		ItemName:   conv.Item.Name,
		MemberIDs:  memberIDs(conv),
		CreatedAt:  formatTime(conv.CreatedAt),
		ModifiedAt: formatTime(conv.ModifiedAt),
		Messages:   msgs,
	}
}

func memberIDs(conv models.Conversation) []uint {
	ids := make([]uint, 0, len(conv.Members))
	for _, m := range conv.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
