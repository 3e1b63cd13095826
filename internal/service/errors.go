package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidAddress is returned when a wallet address fails hex-format
	// validation. Returned before any contract call is attempted.
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrAccessDenied is returned when the chain answered definitively and
	// the wallet neither owns nor rents the requested token.
	ErrAccessDenied = errors.New("wallet has no access to this dataset")

	// ErrChainUnavailable is returned when every authorization predicate
	// failed at the transport level, so no definitive answer exists.
	ErrChainUnavailable = errors.New("chain endpoint is unavailable")

	// ErrOwnershipMismatch is returned when a finalize request tries to
	// overwrite an already-attached token ID without presenting the owner
	// wallet stored on the record.
	ErrOwnershipMismatch = errors.New("claimed owner does not match the stored record")
)
