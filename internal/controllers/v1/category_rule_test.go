package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/sergiu811/perfect-wedding-sub000/internal/controllers/v1"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"github.com/sergiu811/perfect-wedding-sub000/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCategoryRule(t *testing.T, r v1.CategoryRuleEditable, expectedStatus ...int) v1.CategoryRuleResponse {
	if r.WeddingID == uuid.Nil {
		r.WeddingID = createTestWedding(t, v1.WeddingEditable{Name: "Testing wedding"}).Data.ID
	}

	if r.Match == "" {
		r.Match = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryRuleEditable{r}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", body)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var rule v1.CategoryRuleCreateResponse
	test.DecodeResponse(t, &recorder, &rule)

	if recorder.Code == http.StatusCreated {
		return rule.Data[0]
	}

	return v1.CategoryRuleResponse{}
}

// TestCategoryRulesCreate verifies the validation on rule creation.
func (suite *TestSuiteStandard) TestCategoryRulesCreate() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	suite.T().Run("Match is required", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", []v1.CategoryRuleEditable{{
			WeddingID: w.Data.ID,
			Match:     "  ",
		}})
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

		var response v1.CategoryRuleCreateResponse
		test.DecodeResponse(t, &r, &response)
		assert.Equal(t, models.ErrCategoryRuleMatchMissing.Error(), *response.Data[0].Error)
	})

	suite.T().Run("Category is normalized", func(t *testing.T) {
		rule := createTestCategoryRule(t, v1.CategoryRuleEditable{
			WeddingID: w.Data.ID,
			Match:     "*cake*",
			Category:  "Sweets & Cakes",
		})

		assert.Equal(t, "sweets_cakes", rule.Data.Category)
	})

	suite.T().Run("Wedding must exist", func(t *testing.T) {
		createTestCategoryRule(t, v1.CategoryRuleEditable{
			WeddingID: uuid.New(),
		}, http.StatusNotFound)
	})
}

// TestCategoryRulesOrder verifies that rules are returned in evaluation
// order.
func (suite *TestSuiteStandard) TestCategoryRulesOrder() {
	w := createTestWedding(suite.T(), v1.WeddingEditable{})

	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{
		WeddingID: w.Data.ID,
		Priority:  20,
		Match:     "*cake*",
		Category:  "sweets",
	})

	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{
		WeddingID: w.Data.ID,
		Priority:  10,
		Match:     "*flower*",
		Category:  "decorations",
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/category-rules?wedding=%s", w.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "*flower*", response.Data[0].Match)
	assert.Equal(suite.T(), "*cake*", response.Data[1].Match)
}

func (suite *TestSuiteStandard) TestCategoryRulesUpdate() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{
		Match:    "*flower*",
		Category: "decorations",
	})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"priority": 5,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), uint(5), updated.Data.Priority)
	assert.Equal(suite.T(), "*flower*", updated.Data.Match)
}

func (suite *TestSuiteStandard) TestCategoryRulesDelete() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
