package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sergiu811/perfect-wedding-sub000/internal/httputil"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterBookingRoutes registers the routes for bookings with
// the RouterGroup that is passed.
func RegisterBookingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBookingList)
		r.GET("", GetBookings)
		r.POST("", CreateBookings)
	}

	// Booking with ID
	{
		r.OPTIONS("/:id", OptionsBookingDetail)
		r.GET("/:id", GetBooking)
		r.PATCH("/:id", UpdateBooking)
		r.DELETE("/:id", DeleteBooking)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bookings
// @Success		204
// @Router			/v1/bookings [options]
func OptionsBookingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bookings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bookings/{id} [options]
func OptionsBookingDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Booking{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create bookings
// @Description	Creates new bookings. Bookings without a status start out pending.
// @Tags			Bookings
// @Produce		json
// @Success		201			{object}	BookingCreateResponse
// @Failure		400			{object}	BookingCreateResponse
// @Failure		404			{object}	BookingCreateResponse
// @Failure		500			{object}	BookingCreateResponse
// @Param			bookings	body		[]BookingEditable	true	"Bookings"
// @Router			/v1/bookings [post]
func CreateBookings(c *gin.Context) {
	var editables []BookingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BookingCreateResponse{}

	for _, editable := range editables {
		booking := editable.model()

		err = models.DB.Create(&booking).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBooking(c, booking)
		r.Data = append(r.Data, BookingResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get bookings
// @Description	Returns a list of bookings
// @Tags			Bookings
// @Produce		json
// @Success		200	{object}	BookingListResponse
// @Failure		400	{object}	BookingListResponse
// @Failure		500	{object}	BookingListResponse
// @Router			/v1/bookings [get]
// @Param			wedding			query	string	false	"Filter by wedding ID"
// @Param			vendorName		query	string	false	"Filter by vendor name"
// @Param			vendorCategory	query	string	false	"Filter by the vendor's category as stored on the booking"
// @Param			status			query	string	false	"Filter by lifecycle state"
// @Param			note			query	string	false	"Filter by note"
// @Param			offset			query	uint	false	"The offset of the first booking returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of bookings to return. Defaults to 50."
func GetBookings(c *gin.Context) {
	var filter BookingQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("date ASC").
		Where(filter.model(), queryFields...)

	if slices.Contains(setFields, "VendorName") {
		q = q.Where("vendor_name LIKE ?", fmt.Sprintf("%%%s%%", filter.VendorName))
	}

	if slices.Contains(setFields, "VendorCategory") {
		q = q.Where("vendor_category = ?", filter.VendorCategory)
	}

	if slices.Contains(setFields, "Status") {
		q = q.Where("status = ?", filter.Status)
	}

	if slices.Contains(setFields, "Note") {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 bookings and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var bookings []models.Booking
	err := q.Find(&bookings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Booking, 0, len(bookings))
	for _, booking := range bookings {
		data = append(data, newBooking(c, booking))
	}

	c.JSON(http.StatusOK, BookingListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get booking
// @Description	Returns a specific booking
// @Tags			Bookings
// @Produce		json
// @Success		200	{object}	BookingResponse
// @Failure		400	{object}	BookingResponse
// @Failure		404	{object}	BookingResponse
// @Failure		500	{object}	BookingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bookings/{id} [get]
func GetBooking(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	var booking models.Booking
	err = models.DB.First(&booking, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBooking(c, booking)
	c.JSON(http.StatusOK, BookingResponse{Data: &apiResource})
}

// @Summary		Update booking
// @Description	Updates an existing booking. Only values to be updated need to be specified.
// @Tags			Bookings
// @Accept			json
// @Produce		json
// @Success		200		{object}	BookingResponse
// @Failure		400		{object}	BookingResponse
// @Failure		404		{object}	BookingResponse
// @Failure		500		{object}	BookingResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			booking	body		BookingEditable	true	"Booking"
// @Router			/v1/bookings/{id} [patch]
func UpdateBooking(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	var booking models.Booking
	err = models.DB.First(&booking, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, BookingEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data BookingEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&booking).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBooking(c, booking)
	c.JSON(http.StatusOK, BookingResponse{Data: &apiResource})
}

// @Summary		Delete booking
// @Description	Deletes a booking
// @Tags			Bookings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bookings/{id} [delete]
func DeleteBooking(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var booking models.Booking
	err = models.DB.First(&booking, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&booking).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
