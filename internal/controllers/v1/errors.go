package v1

import (
	"errors"
	"net/http"

	"github.com/sergiu811/perfect-wedding-sub000/internal/httputil"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	ez_uuid "github.com/sergiu811/perfect-wedding-sub000/internal/uuid"
	"gorm.io/gorm"
)

// httpError is the response body for endpoints that do not return a
// resource on errors.
type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// clientErrors contains all errors that are caused by the request and
// therefore return a 400.
var clientErrors = []error{
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	ez_uuid.ErrInvalid,
	models.ErrAllocationCategoryNotUnique,
	models.ErrAllocationAmountNegative,
	models.ErrExpenseNameMissing,
	models.ErrExpenseAmountNotPositive,
	models.ErrBookingVendorNameMissing,
	models.ErrBookingStatusInvalid,
	models.ErrBookingPriceNegative,
	models.ErrCategoryRuleMatchMissing,
	errCleanupConfirmation,
}

// status returns the appropriate HTTP status code for an error.
func status(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	for _, clientError := range clientErrors {
		if errors.Is(err, clientError) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
