package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	ez_uuid "github.com/sergiu811/perfect-wedding-sub000/internal/uuid"
	"github.com/shopspring/decimal"
)

type AllocationEditable struct {
	WeddingID uuid.UUID       `json:"weddingId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                   // ID of the wedding this allocation belongs to
	Category  string          `json:"category" example:"photo_video" default:""`                                                                  // The category the amount is planned for. Stored in canonical form.
	Amount    decimal.Decimal `json:"amount" example:"3000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The planned amount
}

// model returns the database resource for the API representation of the
// editable fields
func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		WeddingID: editable.WeddingID,
		Category:  editable.Category,
		Amount:    editable.Amount,
	}
}

type AllocationLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/allocations/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // The allocation itself
	Wedding string `json:"wedding" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The wedding this allocation belongs to
}

type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

// newAllocation returns the API representation of the resource
func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			WeddingID: model.WeddingID,
			Category:  model.Category,
			Amount:    model.Amount,
		},
		Links: AllocationLinks{
			Self:    fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Wedding: fmt.Sprintf("%s/v1/weddings/%s", url, model.WeddingID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created resources
}

func (t *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Allocation `json:"data"`                                                          // The resource
}

type AllocationQueryFilter struct {
	WeddingID         ez_uuid.UUID    `form:"wedding"`                               // Filter by wedding ID
	Category          string          `form:"category" filterField:"false"`          // Filter by the canonical category key
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first allocation returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() models.Allocation {
	return models.Allocation{
		WeddingID: f.WeddingID.UUID,
	}
}
