package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/sergiu811/perfect-wedding-sub000/internal/controllers/v1"
	"github.com/sergiu811/perfect-wedding-sub000/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{WeddingID: w.Data.ID})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{WeddingID: w.Data.ID})
	_ = createTestBooking(suite.T(), v1.BookingEditable{WeddingID: w.Data.ID})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{WeddingID: w.Data.ID})

	tests := []string{
		"http://example.com/v1/weddings",
		"http://example.com/v1/allocations",
		"http://example.com/v1/expenses",
		"http://example.com/v1/bookings",
		"http://example.com/v1/category-rules",
	}

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"no confirmation", ""},
		{"wrong confirmation", "?confirm=yes-please-delete-my-data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, "http://example.com/v1"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}
