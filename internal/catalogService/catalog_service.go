package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/images"
	"marketplace/internal/marketerrors"
	"marketplace/internal/models"
	"marketplace/internal/repository"
	"marketplace/internal/storage"
	"marketplace/utils"
)

// Bounds applied to free-text fields.
const (
	maxNameLength        = 255
	maxLocationLength    = 255
	maxDescriptionLength = 4000
)

// RelatedItemsLimit is how many same-category suggestions a detail view carries.
const RelatedItemsLimit = 4

// ItemFields carries the submitted form fields for create and edit. Values
// arrive as strings straight from the form; the service owns parsing and
// validation so every error can be collected in one pass.
type ItemFields struct {
	Condition   string
	CategoryID  string
	Name        string
	Description string
	Price       string
	Location    string
	IsSold      bool
}

// ImageUpload is one uploaded image payload with its declared name and size.
type ImageUpload struct {
	Name string
	Size int64
	Data []byte
}

// CatalogService defines the business logic for listing, searching and
// maintaining items.
type CatalogService struct {
	repo  repository.CatalogDB
	files storage.FileStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.CatalogDB, files storage.FileStore) *CatalogService {
	return &CatalogService{
		repo:  repo,
		files: files,
	}
}

// Search returns non-sold items whose name or description contains query
// case-insensitively, further restricted to a category when categoryID is
// nonzero.
func (s *CatalogService) Search(query string, categoryID uint) ([]models.Item, error) {
	items, err := s.repo.SearchItems(strings.TrimSpace(query), categoryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search items: %w", err)
	}
	return items, nil
}

// Detail returns one item plus up to 4 other non-sold items in the same category.
func (s *CatalogService) Detail(id uint) (models.Item, []models.Item, error) {
	item, err := s.repo.GetItem(id)
	if err != nil {
		return models.Item{}, nil, fmt.Errorf("service: failed to get item %d: %w", id, err)
	}

	related, err := s.repo.GetRelatedItems(item, RelatedItemsLimit)
	if err != nil {
		return models.Item{}, nil, fmt.Errorf("service: failed to get related items for %d: %w", id, err)
	}
	return item, related, nil
}

// ListCategories returns every category, ordered by name.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// ListByOwner returns the caller's own items, sold and unsold.
func (s *CatalogService) ListByOwner(ownerID uint) ([]models.Item, error) {
	items, err := s.repo.GetItemsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items for owner %d: %w", ownerID, err)
	}
	return items, nil
}

// Create validates the submitted fields and image batch, and on success
// persists the item owned by ownerID plus one image row per upload, in upload
// order. Any validation failure persists nothing and returns every collected
// error at once.
func (s *CatalogService) Create(ownerID uint, fields ItemFields, uploads []ImageUpload) (models.Item, error) {
	parsed, errs := s.validateFields(fields)
	errs = append(errs, images.Validate(uploadDescriptors(uploads))...)
	if len(errs) > 0 {
		return models.Item{}, fmt.Errorf("service: create item: %w", &marketerrors.ValidationError{Errors: errs})
	}

	paths, err := s.storeUploads(uploads)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: create item: %w", err)
	}

	item := models.Item{
		Condition:   fields.Condition,
		CategoryID:  parsed.categoryID,
		Name:        strings.TrimSpace(fields.Name),
		Description: strings.TrimSpace(fields.Description),
		Price:       parsed.price,
		Location:    strings.TrimSpace(fields.Location),
		CreatedBy:   ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateItemWithImages(&item, paths); err != nil {
		s.removeStored(paths)
		return models.Item{}, fmt.Errorf("service: failed to create item: %w", err)
	}

	utils.Info("item created", map[string]any{
		"item_id":     item.ID,
		"owner_id":    ownerID,
		"image_count": len(paths),
	})
	return item, nil
}

// Edit validates and applies changes to an item owned by requesterID. Uploads
// are appended after the existing images; they never replace them. A
// non-owner gets ErrNotOwner, which callers present as not-found.
func (s *CatalogService) Edit(id, requesterID uint, fields ItemFields, uploads []ImageUpload) (models.Item, error) {
	item, err := s.repo.GetItem(id)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %d: %w", id, err)
	}
	if item.CreatedBy != requesterID {
		return models.Item{}, fmt.Errorf("service: edit item %d: %w", id, marketerrors.ErrNotOwner)
	}

	parsed, errs := s.validateFields(fields)
	errs = append(errs, images.Validate(uploadDescriptors(uploads))...)
	if len(errs) > 0 {
		return models.Item{}, fmt.Errorf("service: edit item %d: %w", id, &marketerrors.ValidationError{Errors: errs})
	}

	paths, err := s.storeUploads(uploads)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: edit item %d: %w", id, err)
	}

	item.Condition = fields.Condition
	item.CategoryID = parsed.categoryID
	item.Name = strings.TrimSpace(fields.Name)
	item.Description = strings.TrimSpace(fields.Description)
	item.Price = parsed.price
	item.Location = strings.TrimSpace(fields.Location)
	item.IsSold = fields.IsSold

	if err := s.repo.UpdateItem(&item, paths); err != nil {
		s.removeStored(paths)
		return models.Item{}, fmt.Errorf("service: failed to update item %d: %w", id, err)
	}

	utils.Info("item updated", map[string]any{
		"item_id":     item.ID,
		"owner_id":    requesterID,
		"image_count": len(paths),
	})
	return item, nil
}

// Delete removes an item owned by requesterID together with its images and
// conversations. Stored image files are cleaned up best-effort afterwards.
func (s *CatalogService) Delete(id, requesterID uint) error {
	item, err := s.repo.GetItem(id)
	if err != nil {
		return fmt.Errorf("service: failed to get item %d: %w", id, err)
	}
	if item.CreatedBy != requesterID {
		return fmt.Errorf("service: delete item %d: %w", id, marketerrors.ErrNotOwner)
	}

	paths, err := s.repo.DeleteItemCascade(id)
	if err != nil {
		return fmt.Errorf("service: failed to delete item %d: %w", id, err)
	}
	s.removeStored(paths)

	utils.Info("item deleted", map[string]any{
		"item_id":  id,
		"owner_id": requesterID,
	})
	return nil
}

// parsedFields holds the typed values recovered during validation.
type parsedFields struct {
	categoryID uint
	price      float64
}

// validateFields checks every submitted field and collects all violations
// instead of stopping at the first.
func (s *CatalogService) validateFields(fields ItemFields) (parsedFields, []string) {
	var parsed parsedFields
	var errs []string

	valid := false
	for _, c := range models.Conditions {
		if fields.Condition == c {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, fmt.Sprintf("condition must be one of: %s", strings.Join(models.Conditions, ", ")))
	}

	switch categoryID, err := strconv.ParseUint(strings.TrimSpace(fields.CategoryID), 10, 32); {
	case strings.TrimSpace(fields.CategoryID) == "":
		errs = append(errs, "category is required")
	case err != nil || categoryID == 0:
		errs = append(errs, "category must be a valid id")
	default:
		parsed.categoryID = uint(categoryID)
		if _, err := s.repo.GetCategory(parsed.categoryID); err != nil {
			if errors.Is(err, marketerrors.ErrCategoryNotFound) {
				errs = append(errs, "category does not exist")
			} else {
				errs = append(errs, "category could not be verified")
			}
		}
	}

	name := strings.TrimSpace(fields.Name)
	if name == "" {
		errs = append(errs, "name is required")
	} else if len(name) > maxNameLength {
		errs = append(errs, fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}

	if len(strings.TrimSpace(fields.Description)) > maxDescriptionLength {
		errs = append(errs, fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}

	switch price, err := strconv.ParseFloat(strings.TrimSpace(fields.Price), 64); {
	case strings.TrimSpace(fields.Price) == "":
		errs = append(errs, "price is required")
	case err != nil || math.IsNaN(price) || math.IsInf(price, 0):
		errs = append(errs, "price must be a number")
	case price < 0:
		errs = append(errs, "price must not be negative")
	default:
		parsed.price = price
	}

	location := strings.TrimSpace(fields.Location)
	if location == "" {
		errs = append(errs, "location is required")
	} else if len(location) > maxLocationLength {
		errs = append(errs, fmt.Sprintf("location must be at most %d characters", maxLocationLength))
	}

	return parsed, errs
}

// uploadDescriptors projects uploads onto the validator's file descriptors.
func uploadDescriptors(uploads []ImageUpload) []images.File {
	files := make([]images.File, 0, len(uploads))
	for _, up := range uploads {
		files = append(files, images.File{Name: up.Name, Size: up.Size})
	}
	return files
}

// storeUploads writes every payload to the file store, undoing earlier writes
// when one fails so a partial batch never leaks.
func (s *CatalogService) storeUploads(uploads []ImageUpload) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for _, up := range uploads {
		path, err := s.files.Save(up.Name, up.Data)
		if err != nil {
			s.removeStored(paths)
			return nil, fmt.Errorf("failed to store image %s: %w", up.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// removeStored deletes stored payloads, logging rather than failing when the
// file store declines.
func (s *CatalogService) removeStored(paths []string) {
	for _, path := range paths {
		if err := s.files.Remove(path); err != nil {
			utils.Warn("failed to remove stored image", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}
