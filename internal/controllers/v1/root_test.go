package v1_test

import (
	"net/http"

	v1 "github.com/sergiu811/perfect-wedding-sub000/internal/controllers/v1"
	"github.com/sergiu811/perfect-wedding-sub000/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Weddings:      "http://example.com/v1/weddings",
		Allocations:   "http://example.com/v1/allocations",
		Expenses:      "http://example.com/v1/expenses",
		Bookings:      "http://example.com/v1/bookings",
		CategoryRules: "http://example.com/v1/category-rules",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptionsRoot() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", r.Header().Get("allow"))
}
