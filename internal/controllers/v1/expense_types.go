package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	ez_uuid "github.com/sergiu811/perfect-wedding-sub000/internal/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	WeddingID uuid.UUID       `json:"weddingId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                       // ID of the wedding this expense belongs to
	Name      string          `json:"name" example:"Stamps for invitations" default:""`                                                               // Name of the expense
	Category  string          `json:"category" example:"invitations" default:""`                                                                      // The category. When empty, the wedding's category rules decide.
	Amount    decimal.Decimal `json:"amount" example:"42.50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount spent
	Note      string          `json:"note" example:"Bought at the post office" default:""`                                                            // Note about the expense
	Date      time.Time       `json:"date" example:"2025-06-01T00:00:00.000000Z"`                                                                     // When the money was spent. Defaults to the current time.
}

// model returns the database resource for the API representation of the
// editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		WeddingID: editable.WeddingID,
		Name:      editable.Name,
		Category:  editable.Category,
		Amount:    editable.Amount,
		Note:      editable.Note,
		Date:      editable.Date,
	}
}

type ExpenseLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/expenses/ec733dfb-dc23-4b6a-9055-80cd0e0c1b39"`       // The expense itself
	Wedding string `json:"wedding" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The wedding this expense belongs to
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			WeddingID: model.WeddingID,
			Name:      model.Name,
			Category:  model.Category,
			Amount:    model.Amount,
			Note:      model.Note,
			Date:      model.Date,
		},
		Links: ExpenseLinks{
			Self:    fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Wedding: fmt.Sprintf("%s/v1/weddings/%s", url, model.WeddingID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	WeddingID         ez_uuid.UUID    `form:"wedding"`                               // Filter by wedding ID
	Name              string          `form:"name" filterField:"false"`              // Filter by name
	Category          string          `form:"category" filterField:"false"`          // Filter by category as stored on the expense
	Note              string          `form:"note" filterField:"false"`              // Filter by note
	Search            string          `form:"search" filterField:"false"`            // Search for this text in name and note
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first expense returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		WeddingID: f.WeddingID.UUID,
	}
}
