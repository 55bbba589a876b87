package helpers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog "marketplace/internal/catalogService"
	"marketplace/internal/marketerrors"
	"marketplace/utils"
)

// CurrentUserKey is the gin context key the identity middleware stores the
// authenticated user id under.
const CurrentUserKey = "current_user_id"

// CurrentUser returns the authenticated user id set by the identity
// middleware, or 0 on an unauthenticated route.
func CurrentUser(c *gin.Context) uint {
	if v, ok := c.Get(CurrentUserKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// ParseIDParam parses a numeric path parameter
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

// ParseCategoryFilter parses the optional category_id query parameter; empty
// or zero means "no category filter".
func ParseCategoryFilter(c *gin.Context) (uint, error) {
	raw := c.Query("category_id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid category_id: %q", raw)
	}
	return uint(id), nil
}

// CollectUploads reads the "images" files of a multipart request into
// memory. A request without a multipart body simply yields no uploads.
func CollectUploads(c *gin.Context) ([]catalog.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	files := form.File["images"]
	uploads := make([]catalog.ImageUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
		}
		uploads = append(uploads, catalog.ImageUpload{
			Name: fh.Filename,
			Size: fh.Size,
			Data: data,
		})
	}
	return uploads, nil
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ValidationErrors unwraps the collected messages of a validation failure,
// or nil when err is not one.
func ValidationErrors(err error) []string {
	var verr *marketerrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Errors
	}
	return nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Ownership and membership failures deliberately read as not-found so a
// probing request cannot confirm that a resource exists.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, marketerrors.ErrEmptyMessage):
		return http.StatusBadRequest, "message content must not be empty"
	case errors.Is(err, marketerrors.ErrNotOwner), errors.Is(err, marketerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, marketerrors.ErrNotMember), errors.Is(err, marketerrors.ErrConversationNotFound):
		return http.StatusNotFound, "conversation not found"
	case errors.Is(err, marketerrors.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
