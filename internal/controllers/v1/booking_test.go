package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/sergiu811/perfect-wedding-sub000/internal/controllers/v1"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"github.com/sergiu811/perfect-wedding-sub000/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestBooking(t *testing.T, b v1.BookingEditable, expectedStatus ...int) v1.BookingResponse {
	if b.WeddingID == uuid.Nil {
		b.WeddingID = createTestWedding(t, v1.WeddingEditable{Name: "Testing wedding"}).Data.ID
	}

	if b.VendorName == "" {
		b.VendorName = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BookingEditable{b}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/bookings", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var booking v1.BookingCreateResponse
	test.DecodeResponse(t, &r, &booking)

	if r.Code == http.StatusCreated {
		return booking.Data[0]
	}

	return v1.BookingResponse{}
}

// TestBookingsCreate verifies the validation on booking creation.
func (suite *TestSuiteStandard) TestBookingsCreate() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	suite.T().Run("Vendor name is required", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, "http://example.com/v1/bookings", []v1.BookingEditable{{
			WeddingID: w.Data.ID,
		}})
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

		var response v1.BookingCreateResponse
		test.DecodeResponse(t, &r, &response)
		assert.Equal(t, models.ErrBookingVendorNameMissing.Error(), *response.Data[0].Error)
	})

	suite.T().Run("Status defaults to pending", func(t *testing.T) {
		b := createTestBooking(t, v1.BookingEditable{WeddingID: w.Data.ID})
		assert.Equal(t, models.BookingStatusPending, b.Data.Status)
	})

	suite.T().Run("Unknown status is rejected", func(t *testing.T) {
		createTestBooking(t, v1.BookingEditable{
			WeddingID: w.Data.ID,
			Status:    "ghosted",
		}, http.StatusBadRequest)
	})

	suite.T().Run("Negative price is rejected", func(t *testing.T) {
		createTestBooking(t, v1.BookingEditable{
			WeddingID:  w.Data.ID,
			TotalPrice: decimal.NewFromInt(-500),
		}, http.StatusBadRequest)
	})

	suite.T().Run("Wedding must exist", func(t *testing.T) {
		createTestBooking(t, v1.BookingEditable{
			WeddingID: uuid.New(),
		}, http.StatusNotFound)
	})
}

func (suite *TestSuiteStandard) TestBookingsGetFilter() {
	w1 := createTestWedding(suite.T(), v1.WeddingEditable{})
	w2 := createTestWedding(suite.T(), v1.WeddingEditable{})

	_ = createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w1.Data.ID,
		VendorName:     "Castle Gardens",
		VendorCategory: "venue",
		Status:         models.BookingStatusConfirmed,
		TotalPrice:     decimal.NewFromInt(8500),
	})

	_ = createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w1.Data.ID,
		VendorName:     "Smooth Sounds",
		VendorCategory: "music_dj",
		Status:         models.BookingStatusPending,
		TotalPrice:     decimal.NewFromInt(1200),
	})

	_ = createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w2.Data.ID,
		VendorName:     "Castle Catering",
		VendorCategory: "catering",
		Status:         models.BookingStatusCancelled,
		TotalPrice:     decimal.NewFromInt(5000),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Wedding 1", fmt.Sprintf("wedding=%s", w1.Data.ID), 2},
		{"Fuzzy vendor name", "vendorName=Castle", 2},
		{"Vendor category", "vendorCategory=venue", 1},
		{"Status confirmed", "status=confirmed", 1},
		{"Status cancelled", "status=cancelled", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/bookings?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BookingListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Wrong number of bookings for query %q", tt.query)
		})
	}
}

// TestBookingsUpdate verifies that cancelling a booking removes its
// price from the budget.
func (suite *TestSuiteStandard) TestBookingsUpdate() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})
	b := createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w.Data.ID,
		VendorCategory: "venue",
		Status:         models.BookingStatusConfirmed,
		TotalPrice:     decimal.NewFromInt(8500),
	})

	r := test.Request(suite.T(), http.MethodPatch, b.Data.Links.Self, map[string]any{
		"status": "cancelled",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BookingResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), models.BookingStatusCancelled, updated.Data.Status)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/weddings/%s/budget", w.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Categories, 0)
}

func (suite *TestSuiteStandard) TestBookingsDelete() {
	b := createTestBooking(suite.T(), v1.BookingEditable{})

	r := test.Request(suite.T(), http.MethodDelete, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
