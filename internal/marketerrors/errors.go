package marketerrors

import (
	"errors"
	"strings"
)

// Repository-level errors
var (
	ErrItemNotFound         = errors.New("item not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrUserNotFound         = errors.New("user not found")
)

// business logic errors
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotOwner     = errors.New("requester does not own the item")
	ErrNotMember    = errors.New("requester is not a member of the conversation")
	ErrEmptyMessage = errors.New("message content is empty")
)

// ValidationError carries every field and image error collected for one
// request. It matches ErrValidation under errors.Is so handlers can map it
// without losing the individual messages.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
