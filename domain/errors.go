package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized is returned when a role or ownership check fails
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPolicyViolation is returned when a flag gated feature is disabled
	ErrPolicyViolation = errors.New("policy violation")
	// ErrInvalidListing is returned for missing, expired or cancelled listings
	ErrInvalidListing = errors.New("invalid listing")
	// ErrPaymentMismatch is returned on currency or amount mismatch
	ErrPaymentMismatch = errors.New("payment mismatch")
	// ErrQuantityExceeded is returned when buying more than listed
	ErrQuantityExceeded = errors.New("quantity exceeded")
	// ErrClaimRejected is returned when a claim fails supply, limit or proof checks
	ErrClaimRejected = errors.New("claim rejected")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidCurrency     = errors.New("invalid currency")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
