package models_test

import (
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryRuleMatchRequired() {
	wedding := suite.createTestWedding(models.Wedding{Name: "Testing"})

	err := models.DB.Create(&models.CategoryRule{
		WeddingID: wedding.ID,
		Category:  "decorations",
	}).Error

	require.ErrorIs(suite.T(), err, models.ErrCategoryRuleMatchMissing)
}

func (suite *TestSuiteStandard) TestCategoryRuleNormalizesCategory() {
	wedding := suite.createTestWedding(models.Wedding{Name: "Testing"})

	rule := suite.createTestCategoryRule(models.CategoryRule{
		WeddingID: wedding.ID,
		Match:     "*flower*",
		Category:  "Photo & Video",
	})

	assert.Equal(suite.T(), "photo_video", rule.Category)
}

// TestCategoryForExpense verifies the rule evaluation order and the
// fallback category.
func (suite *TestSuiteStandard) TestCategoryForExpense() {
	wedding := suite.createTestWedding(models.Wedding{Name: "Testing"})

	// Lower priority wins, even when created later
	_ = suite.createTestCategoryRule(models.CategoryRule{
		WeddingID: wedding.ID,
		Priority:  20,
		Match:     "*flower*",
		Category:  "sweets",
	})
	_ = suite.createTestCategoryRule(models.CategoryRule{
		WeddingID: wedding.ID,
		Priority:  10,
		Match:     "*flower*",
		Category:  "decorations",
	})

	tests := []struct {
		name     string
		expense  string
		category string
	}{
		{"lowest priority matches first", "Flower arrangements", "decorations"},
		{"glob match is case insensitive", "FLOWER crown", "decorations"},
		{"no match falls back", "Taxi ride", "other"},
	}

	for _, tt := range tests {
		category, err := models.CategoryForExpense(models.DB, wedding.ID, tt.expense)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), tt.category, category, "Wrong category for %q", tt.expense)
	}
}

// TestCategoryForExpenseScope verifies that rules of one wedding do not
// leak into another.
func (suite *TestSuiteStandard) TestCategoryForExpenseScope() {
	w1 := suite.createTestWedding(models.Wedding{Name: "One"})
	w2 := suite.createTestWedding(models.Wedding{Name: "Two"})

	_ = suite.createTestCategoryRule(models.CategoryRule{
		WeddingID: w1.ID,
		Match:     "*cake*",
		Category:  "sweets",
	})

	category, err := models.CategoryForExpense(models.DB, w2.ID, "Wedding cake")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "other", category)
}
