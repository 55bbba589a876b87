package models

import "time"

// Item condition labels, as shown to buyers.
const (
	ConditionNew         = "New"
	ConditionUsedLikeNew = "Used - Like new"
	ConditionUsedGood    = "Used - Good"
	ConditionUsedFair    = "Used - Fair"
)

// Conditions lists every condition an item may be listed with.
var Conditions = []string{
	ConditionNew,
	ConditionUsedLikeNew,
	ConditionUsedGood,
	ConditionUsedFair,
}

// User is a marketplace participant. Accounts are managed by the external
// identity layer; this table only anchors ownership and membership references.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:150" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Category is an admin-managed listing category
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:255" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// Item is a single listing offered for sale
type Item struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Condition   string      `gorm:"size:20;not null;default:'New'" json:"condition"`
	CategoryID  uint        `gorm:"index;not null" json:"category_id"`
	Category    Category    `json:"-"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Price       float64     `gorm:"not null" json:"price"`
	Location    string      `gorm:"size:255;not null" json:"location"`
	IsSold      bool        `gorm:"default:false" json:"is_sold"`
	CreatedBy   uint        `gorm:"index;not null" json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	Images      []ItemImage `gorm:"foreignKey:ItemID" json:"images,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

// MainImage returns the stored path of the earliest uploaded image, or ""
// when the item has none. It expects Images to be loaded in upload order.
func (i *Item) MainImage() string {
	if len(i.Images) == 0 {
		return ""
	}
	return i.Images[0].ImagePath
}

// AllImages returns the stored paths of every image in upload order.
func (i *Item) AllImages() []string {
	paths := make([]string, 0, len(i.Images))
	for _, img := range i.Images {
		paths = append(paths, img.ImagePath)
	}
	return paths
}

// ItemImage is one uploaded photo of an item, addressed by the generated
// path the file store returned for it.
type ItemImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    uint      `gorm:"index;not null" json:"item_id"`
	ImagePath string    `gorm:"size:512;not null" json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
}

func (ItemImage) TableName() string {
	return "item_images"
}

// Conversation is a message thread between a buyer and the seller of one
// item. At most one thread should exist per (item, buyer) pair; the
// repository guards the lookup-then-create sequence with a transaction.
type Conversation struct {
	ID         uint                  `gorm:"primaryKey" json:"id"`
	ItemID     uint                  `gorm:"index;not null" json:"item_id"`
	Item       Item                  `json:"-"`
	Members    []User                `gorm:"many2many:conversation_members" json:"members,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	ModifiedAt time.Time             `gorm:"index" json:"modified_at"`
	Messages   []ConversationMessage `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// ConversationMember is the join row behind Conversation.Members.
type ConversationMember struct {
	ConversationID uint `gorm:"primaryKey"`
	UserID         uint `gorm:"primaryKey"`
}

func (ConversationMember) TableName() string {
	return "conversation_members"
}

// ConversationMessage is one message within a conversation. CreatedBy is
// nulled rather than the row deleted when the author's account is removed.
type ConversationMessage struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"index;not null" json:"conversation_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      *uint     `gorm:"index" json:"created_by"`
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}
