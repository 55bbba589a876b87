package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog "marketplace/internal/catalogService"
	"marketplace/internal/models"
	"marketplace/services/marketplace/helpers"
	"marketplace/utils"
)

type CatalogServiceInterface interface {
	Search(query string, categoryID uint) ([]models.Item, error)
	Detail(id uint) (models.Item, []models.Item, error)
	ListCategories() ([]models.Category, error)
	ListByOwner(ownerID uint) ([]models.Item, error)
	Create(ownerID uint, fields catalog.ItemFields, uploads []catalog.ImageUpload) (models.Item, error)
	Edit(id, requesterID uint, fields catalog.ItemFields, uploads []catalog.ImageUpload) (models.Item, error)
	Delete(id, requesterID uint) error
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListCategoriesHandler handles GET /categories
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListCategoriesHandler: failed to list categories", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCategoryResponses(categories), "categories retrieved successfully")
}

// SearchItemsHandler handles GET /items/search?query=&category_id=
func (h *CatalogHandler) SearchItemsHandler(c *gin.Context) {
	query := c.Query("query")
	categoryID, err := helpers.ParseCategoryFilter(c)
	if err != nil {
		helpers.HandleBindError(c, "SearchItemsHandler", err)
		return
	}

	items, err := h.service.Search(query, categoryID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchItemsHandler: error searching items", map[string]any{"query": query, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
	helpers.LogSuccess("SearchItemsHandler", "items retrieved successfully", map[string]any{
		"query":       query,
		"category_id": categoryID,
		"count":       len(items),
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *CatalogHandler) GetItemHandler(c *gin.Context) {
	itemID, err := helpers.ParseIDParam(c, "item_id")
	if err != nil {
		helpers.HandleBindError(c, "GetItemHandler", err)
		return
	}

	item, related, err := h.service.Detail(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := helpers.ItemDetailResponse{
		Item:         helpers.NewItemResponse(item),
		RelatedItems: helpers.NewItemResponses(related),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "item retrieved successfully")
	helpers.LogSuccess("GetItemHandler", "item retrieved successfully", map[string]any{
		"item_id":       item.ID,
		"related_count": len(related),
	})
}

// ListOwnItemsHandler handles GET /items (the caller's dashboard listing)
func (h *CatalogHandler) ListOwnItemsHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)

	items, err := h.service.ListByOwner(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOwnItemsHandler: error retrieving items", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponses(items), "items retrieved successfully")
	helpers.LogSuccess("ListOwnItemsHandler", "items retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(items),
	})
}

// CreateItemHandler handles POST /items (multipart: fields plus "images" files)
func (h *CatalogHandler) CreateItemHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)

	var req helpers.ItemFormRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}
	uploads, err := helpers.CollectUploads(c)
	if err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	item, err := h.service.Create(userID, req.ToFields(), uploads)
	if err != nil {
		if errs := helpers.ValidationErrors(err); errs != nil {
			utils.JSONErrors(c, http.StatusBadRequest, errs, "validation failed")
			utils.Warn("CreateItemHandler: validation failed", map[string]any{"user_id": userID, "errors": errs})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateItemHandler: failed to create item", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := helpers.NewItemResponse(item)
	utils.JSONResponse(c, http.StatusCreated, resp, fmt.Sprintf("item created successfully with %d images", len(uploads)))
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id":     item.ID,
		"user_id":     userID,
		"image_count": len(uploads),
	})
}

// UpdateItemHandler handles PUT /items/:item_id (owner only)
func (h *CatalogHandler) UpdateItemHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)
	itemID, err := helpers.ParseIDParam(c, "item_id")
	if err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}

	var req helpers.ItemFormRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}
	uploads, err := helpers.CollectUploads(c)
	if err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}

	item, err := h.service.Edit(itemID, userID, req.ToFields(), uploads)
	if err != nil {
		if errs := helpers.ValidationErrors(err); errs != nil {
			utils.JSONErrors(c, http.StatusBadRequest, errs, "validation failed")
			utils.Warn("UpdateItemHandler: validation failed", map[string]any{"item_id": itemID, "user_id": userID, "errors": errs})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateItemHandler: failed to update item", map[string]any{"item_id": itemID, "user_id": userID, "error": err.Error()})
		return
	}

	resp := helpers.NewItemResponse(item)
	utils.JSONResponse(c, http.StatusOK, resp, "item updated successfully")
	helpers.LogSuccess("UpdateItemHandler", "item updated successfully", map[string]any{
		"item_id":     item.ID,
		"user_id":     userID,
		"image_count": len(uploads),
	})
}

// DeleteItemHandler handles DELETE /items/:item_id (owner only)
func (h *CatalogHandler) DeleteItemHandler(c *gin.Context) {
	userID := helpers.CurrentUser(c)
	itemID, err := helpers.ParseIDParam(c, "item_id")
	if err != nil {
		helpers.HandleBindError(c, "DeleteItemHandler", err)
		return
	}

	if err := h.service.Delete(itemID, userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteItemHandler: failed to delete item", map[string]any{"item_id": itemID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{
		"item_id": itemID,
		"user_id": userID,
	})
}
