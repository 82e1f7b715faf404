package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/sergiu811/perfect-wedding-sub000/internal/controllers/v1"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"github.com/sergiu811/perfect-wedding-sub000/test"
	"github.com/stretchr/testify/assert"
)

func createTestWedding(t *testing.T, w v1.WeddingEditable, expectedStatus ...int) v1.WeddingResponse {
	if w.Name == "" {
		w.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.WeddingEditable{w}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/weddings", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var wedding v1.WeddingCreateResponse
	test.DecodeResponse(t, &r, &wedding)

	if r.Code == http.StatusCreated {
		return wedding.Data[0]
	}

	return v1.WeddingResponse{}
}

// TestWeddingsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestWeddingsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestWedding(t, v1.WeddingEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/weddings", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.WeddingListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestWeddingsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestWeddingsOptions() {
	tests := []struct {
		name   string
		id     string // path at the weddings endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No wedding with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Wedding exists", createTestWedding(suite.T(), v1.WeddingEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/weddings", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestWeddingsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestWeddingsGetSingle() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing wedding", w.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No wedding with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"GET Synthetic budget line ID", "spent-sweets", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Synthetic budget line ID", "spent-venue", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/weddings/%s", tt.id), "")

			var wedding v1.WeddingResponse
			test.DecodeResponse(t, &r, &wedding)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestWeddingsGetFilter() {
	_ = createTestWedding(suite.T(), v1.WeddingEditable{
		Name: "Ana & Mihai",
		Note: "Garden ceremony",
		Date: time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestWedding(suite.T(), v1.WeddingEditable{
		Name: "Ioana & Radu",
		Note: "Mountain lodge",
	})

	_ = createTestWedding(suite.T(), v1.WeddingEditable{
		Name: "Elena & Andrei",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Fuzzy name", "name=ana", 2},
		{"Fuzzy note", "note=ceremony", 1},
		{"Search name and note", "search=garden", 1},
		{"Search no match", "search=beach", 0},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/weddings?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.WeddingListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Wrong number of weddings for query %q", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestWeddingsUpdate() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, w.Data.Links.Self, map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.WeddingResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "After", updated.Data.Name)
}

// TestWeddingsDelete verifies that deleting a wedding also deletes all
// resources that reference it.
func (suite *TestSuiteStandard) TestWeddingsDelete() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})
	a := createTestAllocation(suite.T(), v1.AllocationEditable{WeddingID: w.Data.ID})
	e := createTestExpense(suite.T(), v1.ExpenseEditable{WeddingID: w.Data.ID})
	b := createTestBooking(suite.T(), v1.BookingEditable{WeddingID: w.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, w.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, link := range []string{w.Data.Links.Self, a.Data.Links.Self, e.Data.Links.Self, b.Data.Links.Self} {
		r = test.Request(suite.T(), http.MethodGet, link, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}
