package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrUnknownCollection  = errors.New("unknown collection")
	ErrReadOnlyCollection = errors.New("collection is read-only")
	ErrEmptyItemID        = errors.New("empty item id")
)
