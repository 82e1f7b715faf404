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

type BookingEditable struct {
	WeddingID      uuid.UUID            `json:"weddingId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                        // ID of the wedding this booking belongs to
	VendorName     string               `json:"vendorName" example:"Castle Gardens" default:""`                                                                  // Name of the vendor
	VendorCategory string               `json:"vendorCategory" example:"venue" default:""`                                                                       // The vendor's category
	Status         models.BookingStatus `json:"status" example:"confirmed" default:"pending"`                                                                    // Lifecycle state of the booking
	TotalPrice     decimal.Decimal      `json:"totalPrice" example:"8500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`        // The agreed price
	Date           time.Time            `json:"date" example:"2025-09-21T00:00:00.000000Z"`                                                                      // The date of the engagement. Defaults to the current time.
	Note           string               `json:"note" example:"Deposit paid, rest due two weeks before" default:""`                                               // Note about the booking
}

// model returns the database resource for the API representation of the
// editable fields
func (editable BookingEditable) model() models.Booking {
	return models.Booking{
		WeddingID:      editable.WeddingID,
		VendorName:     editable.VendorName,
		VendorCategory: editable.VendorCategory,
		Status:         editable.Status,
		TotalPrice:     editable.TotalPrice,
		Date:           editable.Date,
		Note:           editable.Note,
	}
}

type BookingLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/bookings/d1b9a946-0b5f-4f0c-9c2d-399b6dd35b76"`      // The booking itself
	Wedding string `json:"wedding" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The wedding this booking belongs to
}

type Booking struct {
	models.DefaultModel
	BookingEditable
	Links BookingLinks `json:"links"`
}

// newBooking returns the API representation of the resource
func newBooking(c *gin.Context, model models.Booking) Booking {
	url := c.GetString(string(models.DBContextURL))

	return Booking{
		DefaultModel: model.DefaultModel,
		BookingEditable: BookingEditable{
			WeddingID:      model.WeddingID,
			VendorName:     model.VendorName,
			VendorCategory: model.VendorCategory,
			Status:         model.Status,
			TotalPrice:     model.TotalPrice,
			Date:           model.Date,
			Note:           model.Note,
		},
		Links: BookingLinks{
			Self:    fmt.Sprintf("%s/v1/bookings/%s", url, model.ID),
			Wedding: fmt.Sprintf("%s/v1/weddings/%s", url, model.WeddingID),
		},
	}
}

type BookingListResponse struct {
	Data       []Booking   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BookingCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BookingResponse `json:"data"`                                                          // List of created resources
}

func (t *BookingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BookingResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BookingResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Booking `json:"data"`                                                          // The resource
}

type BookingQueryFilter struct {
	WeddingID      ez_uuid.UUID `form:"wedding"`                             // Filter by wedding ID
	VendorName     string       `form:"vendorName" filterField:"false"`      // Filter by vendor name
	VendorCategory string       `form:"vendorCategory" filterField:"false"`  // Filter by the vendor's category as stored on the booking
	Status         string       `form:"status" filterField:"false"`          // Filter by lifecycle state
	Note           string       `form:"note" filterField:"false"`            // Filter by note
	Offset         uint         `form:"offset" filterField:"false"`          // The offset of the first booking returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`           // Maximum number of bookings to return. Defaults to 50.
}

func (f BookingQueryFilter) model() models.Booking {
	return models.Booking{
		WeddingID: f.WeddingID.UUID,
	}
}
