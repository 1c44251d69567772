package utils

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden access")
	ErrUpstreamFailure  = errors.New("payment provider failure")
	ErrTokenSigning     = errors.New("token signing failure")
	ErrDatabaseError    = errors.New("database error")
)
