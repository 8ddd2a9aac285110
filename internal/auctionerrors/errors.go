package auctionerrors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. All of them are recoverable: the caller
// decides how to report them, the core never terminates on any of these.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateKey  = errors.New("identifier already exists")
	ErrInvalidBidder = errors.New("invalid bidder name")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrItemInactive  = errors.New("item no longer accepts bids")
)

// FieldError ties an error kind to the offending input field and a
// human-readable message. errors.Is against the kind still works through
// Unwrap, so handlers can match on the sentinels above.
type FieldError struct {
	Field   string
	Message string
	Kind    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// NewFieldError builds a FieldError for the given kind
func NewFieldError(kind error, field, message string) error {
	return &FieldError{Field: field, Message: message, Kind: kind}
}

// FieldOf returns the offending field name if err carries one, else ""
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
