package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle          = errors.New("title is required")
	ErrEmptyCID            = errors.New("content identifier is required")
	ErrInvalidTokenID      = errors.New("invalid token ID")
	ErrInvalidOwnerAddress = errors.New("invalid owner address")
)
