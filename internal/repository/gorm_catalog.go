package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"marketplace/internal/marketerrors"
	"marketplace/internal/models"
)

// GormCatalogRepo is the SQLite-backed implementation of CatalogDB
type GormCatalogRepo struct {
	db *gorm.DB
}

// NewGormCatalogRepo creates a catalog repository on top of an open gorm connection
func NewGormCatalogRepo(db *gorm.DB) *GormCatalogRepo {
	return &GormCatalogRepo{db: db}
}

// imageOrder loads an item's images in upload order. The id tiebreak keeps
// same-instant inserts stable.
func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

// SearchItems returns non-sold items matching the query and category filters,
// ordered by name. An empty query and a zero categoryID both mean "no filter".
func (r *GormCatalogRepo) SearchItems(query string, categoryID uint) ([]models.Item, error) {
	q := r.db.Where("is_sold = ?", false)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var items []models.Item
	err := q.Order("name ASC").
		Preload("Images", imageOrder).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// GetItem returns one item with its category and images loaded
func (r *GormCatalogRepo) GetItem(id uint) (models.Item, error) {
	var item models.Item
	err := r.db.Preload("Images", imageOrder).
		Preload("Category").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, marketerrors.ErrItemNotFound)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// GetRelatedItems returns up to limit other non-sold items in the same category
func (r *GormCatalogRepo) GetRelatedItems(item models.Item, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("category_id = ? AND is_sold = ? AND id <> ?", item.CategoryID, false, item.ID).
		Order("name ASC").
		Limit(limit).
		Preload("Images", imageOrder).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get related items for item %d: %w", item.ID, err)
	}
	return items, nil
}

// GetItemsByOwner returns every item created by one user, sold or not
func (r *GormCatalogRepo) GetItemsByOwner(ownerID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("created_by = ?", ownerID).
		Order("name ASC").
		Preload("Images", imageOrder).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get items for owner %d: %w", ownerID, err)
	}
	return items, nil
}

// GetCategory returns one category by id
func (r *GormCatalogRepo) GetCategory(id uint) (models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, fmt.Errorf("get category %d: %w", id, marketerrors.ErrCategoryNotFound)
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return category, nil
}

// ListCategories returns all categories ordered by name
func (r *GormCatalogRepo) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateItemWithImages persists an item plus one ItemImage row per stored
// path, in upload order, all in one transaction.
func (r *GormCatalogRepo) CreateItemWithImages(item *models.Item, imagePaths []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		for _, path := range imagePaths {
			img := models.ItemImage{ItemID: item.ID, ImagePath: path}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			item.Images = append(item.Images, img)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create item %q: %w", item.Name, err)
	}
	return nil
}

// UpdateItem writes the item's editable fields and appends any new images.
// Existing images are never replaced or reordered.
func (r *GormCatalogRepo) UpdateItem(item *models.Item, newImagePaths []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		fields := map[string]any{
			"condition":   item.Condition,
			"category_id": item.CategoryID,
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"location":    item.Location,
			"is_sold":     item.IsSold,
		}
		if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).Updates(fields).Error; err != nil {
			return err
		}
		for _, path := range newImagePaths {
			img := models.ItemImage{ItemID: item.ID, ImagePath: path}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			item.Images = append(item.Images, img)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	return nil
}

// DeleteItemCascade removes an item together with its images, conversations,
// membership rows and messages in one transaction. It returns the stored
// image paths so the caller can clean up the file store afterwards.
func (r *GormCatalogRepo) DeleteItemCascade(itemID uint) ([]string, error) {
	var paths []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var images []models.ItemImage
		if err := imageOrder(tx).Where("item_id = ?", itemID).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			paths = append(paths, img.ImagePath)
		}

		convIDs := tx.Model(&models.Conversation{}).Select("id").Where("item_id = ?", itemID)
		if err := tx.Where("conversation_id IN (?)", convIDs).Delete(&models.ConversationMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("conversation_id IN (?)", convIDs).Delete(&models.ConversationMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", itemID).Delete(&models.Conversation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", itemID).Delete(&models.ItemImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, itemID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("delete item %d: %w", itemID, err)
	}
	return paths, nil
}
