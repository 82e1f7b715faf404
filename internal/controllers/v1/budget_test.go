package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/budget"
	v1 "github.com/sergiu811/perfect-wedding-sub000/internal/controllers/v1"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"github.com/sergiu811/perfect-wedding-sub000/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBudgetGet verifies the end to end aggregation over allocations,
// bookings and expenses.
func (suite *TestSuiteStandard) TestBudgetGet() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		WeddingID: w.Data.ID,
		Category:  "venue",
		Amount:    decimal.NewFromInt(10000),
	})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		WeddingID: w.Data.ID,
		Category:  "Photo & Video",
		Amount:    decimal.NewFromInt(3000),
	})

	// Confirmed and pending bookings count, cancelled ones do not
	_ = createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w.Data.ID,
		VendorCategory: "venue",
		Status:         models.BookingStatusConfirmed,
		TotalPrice:     decimal.NewFromInt(8000),
	})
	_ = createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w.Data.ID,
		VendorCategory: "Photos / Videos",
		Status:         models.BookingStatusPending,
		TotalPrice:     decimal.NewFromInt(2750),
	})
	_ = createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w.Data.ID,
		VendorCategory: "venue",
		Status:         models.BookingStatusCancelled,
		TotalPrice:     decimal.NewFromInt(9999),
	})

	// Spend without an allocation surfaces as a synthetic line
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		WeddingID: w.Data.ID,
		Name:      "Wedding cake deposit",
		Category:  "sweets",
		Amount:    decimal.NewFromInt(250),
	})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		WeddingID: w.Data.ID,
		Name:      "Venue viewing trip",
		Category:  "venue",
		Amount:    decimal.NewFromInt(500),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/weddings/%s/budget", w.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Categories, 3)

	// Sorted by spent, descending
	venue := response.Data.Categories[0]
	assert.Equal(suite.T(), "venue", venue.Key)
	assert.Equal(suite.T(), "Venue", venue.Name)
	assert.True(suite.T(), venue.Spent.Equal(decimal.NewFromInt(8500)), "venue spent is %s", venue.Spent)
	assert.True(suite.T(), venue.Remaining.Equal(decimal.NewFromInt(1500)))
	assert.False(suite.T(), venue.Synthetic)

	photo := response.Data.Categories[1]
	assert.Equal(suite.T(), "photo_video", photo.Key)
	assert.Equal(suite.T(), "Photo & Video", photo.Name)
	assert.True(suite.T(), photo.Spent.Equal(decimal.NewFromInt(2750)))

	sweets := response.Data.Categories[2]
	assert.Equal(suite.T(), "spent-sweets", sweets.ID)
	assert.True(suite.T(), sweets.Synthetic)
	assert.True(suite.T(), sweets.Allocated.IsZero())
	assert.True(suite.T(), sweets.Spent.Equal(decimal.NewFromInt(250)))

	assert.True(suite.T(), response.Data.Allocated.Equal(decimal.NewFromInt(13000)))
	assert.True(suite.T(), response.Data.Spent.Equal(decimal.NewFromInt(11500)))
	assert.True(suite.T(), response.Data.Remaining.Equal(decimal.NewFromInt(1500)))
}

// TestBudgetGetEmpty verifies that a wedding without any data has an
// empty budget.
func (suite *TestSuiteStandard) TestBudgetGetEmpty() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/weddings/%s/budget", w.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data.Categories, 0)
	assert.True(suite.T(), response.Data.Allocated.IsZero())
	assert.True(suite.T(), response.Data.Spent.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetGetInvalid() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No wedding with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/weddings/%s/budget", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestBudgetCSV verifies the CSV report download.
func (suite *TestSuiteStandard) TestBudgetCSV() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		WeddingID: w.Data.ID,
		Category:  "venue",
		Amount:    decimal.NewFromInt(10000),
	})
	_ = createTestBooking(suite.T(), v1.BookingEditable{
		WeddingID:      w.Data.ID,
		VendorName:     "Castle Gardens",
		VendorCategory: "venue",
		Status:         models.BookingStatusConfirmed,
		TotalPrice:     decimal.NewFromInt(8500),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/weddings/%s/budget/csv", w.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Type"), "text/csv")
	assert.Equal(suite.T(),
		fmt.Sprintf("attachment; filename=%q", budget.Filename(time.Now())),
		r.Header().Get("Content-Disposition"))

	body := r.Body.String()
	assert.Contains(suite.T(), body, `"Wedding Budget Report"`)
	assert.Contains(suite.T(), body, `"Total Allocated","$10,000"`)
	assert.Contains(suite.T(), body, `"Total Spent","$8,500"`)
	assert.Contains(suite.T(), body, "Category,Allocated,Spent,Remaining,Percentage Spent")
	assert.Contains(suite.T(), body, `"Venue","$10,000","$8,500","$1,500",85%`)
	assert.Contains(suite.T(), body, "Vendor,Category,Status,Price,Date")
	assert.Contains(suite.T(), body, `"Castle Gardens","venue","confirmed","$8,500"`)
	assert.True(suite.T(), strings.HasSuffix(body, "\n"))
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	for _, path := range []string{"budget", "budget/csv"} {
		r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/weddings/%s/%s", w.Data.ID, path), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
	}
}
