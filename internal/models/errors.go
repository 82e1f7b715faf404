package models

import "errors"

// Sentinel errors for conditions the database layer detects. The
// callbacks in database.go rewrite raw driver errors into these so that
// handlers can map them to HTTP statuses.
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request, please contact your server administrator")
	ErrResourceNotFound = errors.New("there is no")

	ErrAllocationCategoryNotUnique = errors.New("there already is an allocation for this category")
	ErrAllocationAmountNegative    = errors.New("allocation amounts must not be negative")

	ErrExpenseNameMissing       = errors.New("expense names must not be empty")
	ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")

	ErrBookingVendorNameMissing = errors.New("bookings must have a vendor name")
	ErrBookingStatusInvalid     = errors.New("the booking status must be one of pending, confirmed, completed, cancelled")
	ErrBookingPriceNegative     = errors.New("booking prices must not be negative")

	ErrCategoryRuleMatchMissing = errors.New("category rules must have a pattern to match on")
)
