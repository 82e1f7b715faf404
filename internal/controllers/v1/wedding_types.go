package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
)

type WeddingEditable struct {
	Name string    `json:"name" example:"Ana & Mihai" default:""`                 // Name of the wedding
	Date time.Time `json:"date" example:"2025-09-21T00:00:00.000000Z"`           // The day of the event
	Note string    `json:"note" example:"Garden ceremony, 120 guests" default:""` // Note about the wedding
}

// model returns the database resource for the API representation of the
// editable fields
func (editable WeddingEditable) model() models.Wedding {
	return models.Wedding{
		Name: editable.Name,
		Date: editable.Date,
		Note: editable.Note,
	}
}

type WeddingLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                  // The wedding itself
	Allocations   string `json:"allocations" example:"https://example.com/api/v1/allocations?wedding=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Allocations for this wedding
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses?wedding=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`       // Expenses for this wedding
	Bookings      string `json:"bookings" example:"https://example.com/api/v1/bookings?wedding=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`       // Bookings for this wedding
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules?wedding=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Category rules for this wedding
	Budget        string `json:"budget" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf/budget"`          // The computed budget for this wedding
}

type Wedding struct {
	models.DefaultModel
	WeddingEditable
	Links WeddingLinks `json:"links"`
}

// newWedding returns the API representation of the resource
func newWedding(c *gin.Context, model models.Wedding) Wedding {
	url := c.GetString(string(models.DBContextURL))

	return Wedding{
		DefaultModel: model.DefaultModel,
		WeddingEditable: WeddingEditable{
			Name: model.Name,
			Date: model.Date,
			Note: model.Note,
		},
		Links: WeddingLinks{
			Self:          fmt.Sprintf("%s/v1/weddings/%s", url, model.ID),
			Allocations:   fmt.Sprintf("%s/v1/allocations?wedding=%s", url, model.ID),
			Expenses:      fmt.Sprintf("%s/v1/expenses?wedding=%s", url, model.ID),
			Bookings:      fmt.Sprintf("%s/v1/bookings?wedding=%s", url, model.ID),
			CategoryRules: fmt.Sprintf("%s/v1/category-rules?wedding=%s", url, model.ID),
			Budget:        fmt.Sprintf("%s/v1/weddings/%s/budget", url, model.ID),
		},
	}
}

type WeddingListResponse struct {
	Data       []Wedding   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type WeddingCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []WeddingResponse `json:"data"`                                                          // List of created resources
}

func (t *WeddingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, WeddingResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WeddingResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Wedding `json:"data"`                                                          // The resource
}

type WeddingQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name
	Note   string `form:"note" filterField:"false"`   // Filter by note
	Search string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first wedding returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of weddings to return. Defaults to 50.
}
