package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/budget"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"github.com/shopspring/decimal"
)

type BudgetCategory struct {
	ID        string          `json:"id" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The allocation row ID, or "spent-<key>" when spend has no allocation
	Key       string          `json:"key" example:"photo_video"`                         // The canonical category key
	Name      string          `json:"name" example:"Photo & Video"`                      // Human readable category label
	Color     string          `json:"color" example:"#06b6d4"`                           // Stable display color for the category
	Allocated decimal.Decimal `json:"allocated" example:"3000"`                          // The planned amount
	Spent     decimal.Decimal `json:"spent" example:"2750"`                              // Spend from bookings and expenses
	Remaining decimal.Decimal `json:"remaining" example:"250"`                           // Allocated minus spent, negative when over budget
	Synthetic bool            `json:"synthetic" example:"false"`                         // True when the category has no backing allocation row
}

// newBudgetCategory returns the API representation of a budget line
func newBudgetCategory(c budget.Category) BudgetCategory {
	return BudgetCategory{
		ID:        c.ID,
		Key:       c.Key,
		Name:      c.Name,
		Color:     c.Color,
		Allocated: c.Allocated,
		Spent:     c.Spent,
		Remaining: c.Remaining(),
		Synthetic: c.Synthetic(),
	}
}

type BudgetLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf/budget"`    // The budget itself
	CSV     string `json:"csv" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf/budget/csv"` // The budget as a CSV report
	Wedding string `json:"wedding" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // The wedding this budget is computed for
}

type Budget struct {
	WeddingID  uuid.UUID        `json:"weddingId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the wedding this budget is computed for
	Allocated  decimal.Decimal  `json:"allocated" example:"10000"`                                // Sum of all allocations
	Spent      decimal.Decimal  `json:"spent" example:"8500"`                                     // Sum of all spend that counts towards the budget
	Remaining  decimal.Decimal  `json:"remaining" example:"1500"`                                 // Allocated minus spent
	Categories []BudgetCategory `json:"categories"`                                               // Budget lines, sorted by spent descending
	Links      BudgetLinks      `json:"links"`
}

// newBudget returns the API representation of the computed budget
func newBudget(c *gin.Context, weddingID uuid.UUID, categories []budget.Category) Budget {
	url := c.GetString(string(models.DBContextURL))
	allocated, spent := budget.Totals(categories)

	data := make([]BudgetCategory, 0, len(categories))
	for _, line := range categories {
		data = append(data, newBudgetCategory(line))
	}

	return Budget{
		WeddingID:  weddingID,
		Allocated:  allocated,
		Spent:      spent,
		Remaining:  allocated.Sub(spent),
		Categories: data,
		Links: BudgetLinks{
			Self:    fmt.Sprintf("%s/v1/weddings/%s/budget", url, weddingID),
			CSV:     fmt.Sprintf("%s/v1/weddings/%s/budget/csv", url, weddingID),
			Wedding: fmt.Sprintf("%s/v1/weddings/%s", url, weddingID),
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The computed budget
}
