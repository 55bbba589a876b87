package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marketplace/internal/database"
	"marketplace/internal/marketerrors"
	"marketplace/internal/models"
)

// newTestDB opens a fresh in-memory database with the schema migrated and
// default categories seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)

	users := []models.User{
		{Username: "alice"},
		{Username: "bob"},
		{Username: "carol"},
	}
	require.NoError(t, db.Create(&users).Error)

	return db
}

func firstCategory(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()
	var category models.Category
	require.NoError(t, db.Order("id ASC").First(&category).Error)
	return category
}

func seedItem(t *testing.T, repo *GormCatalogRepo, categoryID, ownerID uint, name, description string, sold bool, imagePaths ...string) models.Item {
	t.Helper()
	item := models.Item{
		Condition:   models.ConditionNew,
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       50,
		Location:    "Cairo, Egypt",
		IsSold:      sold,
		CreatedBy:   ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.CreateItemWithImages(&item, imagePaths))
	return item
}

// Tests CreateItemWithImages + GetItem
func TestCatalogRepo_CreateItemWithImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCatalogRepo(db)
	category := firstCategory(t, db)

	paths := []string{"item_images/a.jpg", "item_images/b.jpg", "item_images/c.jpg"}
	created := seedItem(t, repo, category.ID, 1, "Mountain bike", "barely used", false, paths...)
	require.NotZero(t, created.ID)

	got, err := repo.GetItem(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Mountain bike", got.Name)
	require.Equal(t, category.Name, got.Category.Name)
	require.Equal(t, paths, got.AllImages(), "images must come back in upload order")
	require.Equal(t, "item_images/a.jpg", got.MainImage())
}

func TestCatalogRepo_GetItem_NotFound(t *testing.T) {
	repo := NewGormCatalogRepo(newTestDB(t))

	_, err := repo.GetItem(9999)
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrItemNotFound))
}

// Tests SearchItems filtering
func TestCatalogRepo_SearchItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCatalogRepo(db)

	categories, err := repo.ListCategories()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(categories), 2)
	catA, catB := categories[0], categories[1]

	seedItem(t, repo, catA.ID, 1, "Smartphone stand", "", false)
	seedItem(t, repo, catA.ID, 1, "Desk lamp", "works with any PHONE charger", false)
	seedItem(t, repo, catB.ID, 2, "Phone case", "", false)
	seedItem(t, repo, catA.ID, 2, "Broken phone", "spares only", true) // sold, must never match
	seedItem(t, repo, catA.ID, 1, "Armchair", "comfortable", false)

	tests := []struct {
		name          string
		query         string
		categoryID    uint
		expectedNames []string
	}{
		{
			name:          "query_matches_name_and_description",
			query:         "phone",
			expectedNames: []string{"Desk lamp", "Phone case", "Smartphone stand"},
		},
		{
			name:          "query_is_case_insensitive",
			query:         "PHONE",
			expectedNames: []string{"Desk lamp", "Phone case", "Smartphone stand"},
		},
		{
			name:          "category_filter_restricts_results",
			query:         "phone",
			categoryID:    catA.ID,
			expectedNames: []string{"Desk lamp", "Smartphone stand"},
		},
		{
			name:          "no_query_returns_all_unsold",
			expectedNames: []string{"Armchair", "Desk lamp", "Phone case", "Smartphone stand"},
		},
		{
			name:          "no_match",
			query:         "submarine",
			expectedNames: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			items, err := repo.SearchItems(tc.query, tc.categoryID)
			require.NoError(t, err)

			names := make([]string, 0, len(items))
			for _, item := range items {
				names = append(names, item.Name)
			}
			require.Equal(t, tc.expectedNames, names, "results must be filtered and name-ordered")
		})
	}
}

// Tests GetRelatedItems
func TestCatalogRepo_GetRelatedItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCatalogRepo(db)
	category := firstCategory(t, db)

	item := seedItem(t, repo, category.ID, 1, "Bookshelf", "", false)
	for _, name := range []string{"Chair", "Desk", "Drawer", "Lamp", "Mirror"} {
		seedItem(t, repo, category.ID, 2, name, "", false)
	}
	seedItem(t, repo, category.ID, 2, "Bed", "", true) // sold, excluded

	related, err := repo.GetRelatedItems(item, 4)
	require.NoError(t, err)
	require.Len(t, related, 4)
	for _, r := range related {
		require.NotEqual(t, item.ID, r.ID, "an item is never related to itself")
		require.False(t, r.IsSold)
	}
}

// Tests UpdateItem
func TestCatalogRepo_UpdateItem(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCatalogRepo(db)
	category := firstCategory(t, db)

	item := seedItem(t, repo, category.ID, 1, "Guitar", "acoustic", false, "item_images/old.jpg")

	item.Name = "Classical guitar"
	item.Price = 120
	item.IsSold = true
	require.NoError(t, repo.UpdateItem(&item, []string{"item_images/new.jpg"}))

	got, err := repo.GetItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, "Classical guitar", got.Name)
	require.Equal(t, 120.0, got.Price)
	require.True(t, got.IsSold)
	require.Equal(t, []string{"item_images/old.jpg", "item_images/new.jpg"}, got.AllImages(),
		"existing images must stay first, new ones appended")
}

// Tests DeleteItemCascade
func TestCatalogRepo_DeleteItemCascade(t *testing.T) {
	db := newTestDB(t)
	catalogRepo := NewGormCatalogRepo(db)
	convRepo := NewGormConversationRepo(db)
	category := firstCategory(t, db)

	item := seedItem(t, catalogRepo, category.ID, 1, "Sofa", "", false, "item_images/x.jpg", "item_images/y.jpg")
	keep := seedItem(t, catalogRepo, category.ID, 1, "Table", "", false, "item_images/keep.jpg")

	author := uint(2)
	msg := models.ConversationMessage{Content: "still available?", CreatedBy: &author, CreatedAt: time.Now().UTC()}
	conv, err := convRepo.CreateConversation(item.ID, 2, []uint{2, 1}, &msg)
	require.NoError(t, err)

	paths, err := catalogRepo.DeleteItemCascade(item.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"item_images/x.jpg", "item_images/y.jpg"}, paths)

	_, err = catalogRepo.GetItem(item.ID)
	require.True(t, errors.Is(err, marketerrors.ErrItemNotFound))

	var imageCount, convCount, msgCount, memberCount int64
	require.NoError(t, db.Model(&models.ItemImage{}).Where("item_id = ?", item.ID).Count(&imageCount).Error)
	require.NoError(t, db.Model(&models.Conversation{}).Where("id = ?", conv.ID).Count(&convCount).Error)
	require.NoError(t, db.Model(&models.ConversationMessage{}).Where("conversation_id = ?", conv.ID).Count(&msgCount).Error)
	require.NoError(t, db.Model(&models.ConversationMember{}).Where("conversation_id = ?", conv.ID).Count(&memberCount).Error)
	require.Zero(t, imageCount)
	require.Zero(t, convCount)
	require.Zero(t, msgCount)
	require.Zero(t, memberCount)

	// the unrelated item is untouched
	got, err := catalogRepo.GetItem(keep.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"item_images/keep.jpg"}, got.AllImages())
}

// Tests CreateConversation + FindConversation
func TestConversationRepo_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	catalogRepo := NewGormCatalogRepo(db)
	convRepo := NewGormConversationRepo(db)
	category := firstCategory(t, db)

	item := seedItem(t, catalogRepo, category.ID, 1, "Camera", "", false)

	author := uint(2)
	msg := models.ConversationMessage{Content: "is it negotiable?", CreatedBy: &author, CreatedAt: time.Now().UTC()}
	conv, err := convRepo.CreateConversation(item.ID, 2, []uint{2, 1}, &msg)
	require.NoError(t, err)
	require.NotZero(t, conv.ID)

	// both members can find the thread
	found, err := convRepo.FindConversation(item.ID, 2)
	require.NoError(t, err)
	require.Equal(t, conv.ID, found.ID)

	found, err = convRepo.FindConversation(item.ID, 1)
	require.NoError(t, err)
	require.Equal(t, conv.ID, found.ID)

	// a third user has no thread on this item
	_, err = convRepo.FindConversation(item.ID, 3)
	require.True(t, errors.Is(err, marketerrors.ErrConversationNotFound))
}

// A second create for the same (item, buyer) pair returns the existing
// thread instead of making a duplicate.
func TestConversationRepo_CreateConversation_NoDuplicate(t *testing.T) {
	db := newTestDB(t)
	catalogRepo := NewGormCatalogRepo(db)
	convRepo := NewGormConversationRepo(db)
	category := firstCategory(t, db)

	item := seedItem(t, catalogRepo, category.ID, 1, "Printer", "", false)

	author := uint(2)
	first := models.ConversationMessage{Content: "hello", CreatedBy: &author, CreatedAt: time.Now().UTC()}
	conv1, err := convRepo.CreateConversation(item.ID, 2, []uint{2, 1}, &first)
	require.NoError(t, err)

	second := models.ConversationMessage{Content: "hello again", CreatedBy: &author, CreatedAt: time.Now().UTC()}
	conv2, err := convRepo.CreateConversation(item.ID, 2, []uint{2, 1}, &second)
	require.NoError(t, err)
	require.Equal(t, conv1.ID, conv2.ID)

	var count int64
	require.NoError(t, db.Model(&models.Conversation{}).Where("item_id = ?", item.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

// Tests GetConversationForMember scoping and message order
func TestConversationRepo_GetConversationForMember(t *testing.T) {
	db := newTestDB(t)
	catalogRepo := NewGormCatalogRepo(db)
	convRepo := NewGormConversationRepo(db)
	category := firstCategory(t, db)

	item := seedItem(t, catalogRepo, category.ID, 1, "Skis", "", false)

	buyer := uint(2)
	base := time.Now().UTC().Add(-time.Minute)
	first := models.ConversationMessage{Content: "first", CreatedBy: &buyer, CreatedAt: base}
	conv, err := convRepo.CreateConversation(item.ID, 2, []uint{2, 1}, &first)
	require.NoError(t, err)

	seller := uint(1)
	reply := models.ConversationMessage{ConversationID: conv.ID, Content: "second", CreatedBy: &seller, CreatedAt: base.Add(10 * time.Second)}
	require.NoError(t, convRepo.AppendMessage(&reply))

	got, err := convRepo.GetConversationForMember(conv.ID, 1)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	require.Equal(t, "first", got.Messages[0].Content)
	require.Equal(t, "second", got.Messages[1].Content)
	require.Len(t, got.Members, 2)
	require.Equal(t, item.ID, got.Item.ID)

	// non-members read the thread as missing
	_, err = convRepo.GetConversationForMember(conv.ID, 3)
	require.True(t, errors.Is(err, marketerrors.ErrConversationNotFound))
}

// Appending a message reorders the inbox by modified time
func TestConversationRepo_AppendMessageReordersInbox(t *testing.T) {
	db := newTestDB(t)
	catalogRepo := NewGormCatalogRepo(db)
	convRepo := NewGormConversationRepo(db)
	category := firstCategory(t, db)

	itemA := seedItem(t, catalogRepo, category.ID, 1, "Kettle", "", false)
	itemB := seedItem(t, catalogRepo, category.ID, 1, "Toaster", "", false)

	buyer := uint(2)
	msgA := models.ConversationMessage{Content: "about the kettle", CreatedBy: &buyer, CreatedAt: time.Now().UTC()}
	convA, err := convRepo.CreateConversation(itemA.ID, 2, []uint{2, 1}, &msgA)
	require.NoError(t, err)

	// make convB clearly newer than convA
	require.NoError(t, db.Model(&models.Conversation{}).Where("id = ?", convA.ID).
		Update("modified_at", time.Now().UTC().Add(-time.Hour)).Error)

	msgB := models.ConversationMessage{Content: "about the toaster", CreatedBy: &buyer, CreatedAt: time.Now().UTC()}
	convB, err := convRepo.CreateConversation(itemB.ID, 2, []uint{2, 1}, &msgB)
	require.NoError(t, err)

	convs, err := convRepo.ListConversationsForMember(2)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	require.Equal(t, convB.ID, convs[0].ID)
	require.Equal(t, convA.ID, convs[1].ID)

	// a new message in the older thread moves it to the top
	reply := models.ConversationMessage{ConversationID: convA.ID, Content: "still there?", CreatedBy: &buyer, CreatedAt: time.Now().UTC()}
	require.NoError(t, convRepo.AppendMessage(&reply))

	convs, err = convRepo.ListConversationsForMember(2)
	require.NoError(t, err)
	require.Equal(t, convA.ID, convs[0].ID)

	// the seller sees the same two threads; the third user sees none
	convs, err = convRepo.ListConversationsForMember(1)
	require.NoError(t, err)
	require.Len(t, convs, 2)

	convs, err = convRepo.ListConversationsForMember(3)
	require.NoError(t, err)
	require.Empty(t, convs)
}
