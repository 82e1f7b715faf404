package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sergiu811/perfect-wedding-sub000/internal/httputil"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterWeddingRoutes registers the routes for weddings with
// the RouterGroup that is passed.
func RegisterWeddingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWeddingList)
		r.GET("", GetWeddings)
		r.POST("", CreateWeddings)
	}

	// Wedding with ID
	{
		r.OPTIONS("/:id", OptionsWeddingDetail)
		r.GET("/:id", GetWedding)
		r.PATCH("/:id", UpdateWedding)
		r.DELETE("/:id", DeleteWedding)
	}

	// The computed budget
	{
		r.OPTIONS("/:id/budget", OptionsBudget)
		r.GET("/:id/budget", GetBudget)
		r.OPTIONS("/:id/budget/csv", OptionsBudgetCSV)
		r.GET("/:id/budget/csv", GetBudgetCSV)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Weddings
// @Success		204
// @Router			/v1/weddings [options]
func OptionsWeddingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Weddings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id} [options]
func OptionsWeddingDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Wedding{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create weddings
// @Description	Creates new weddings
// @Tags			Weddings
// @Produce		json
// @Success		201			{object}	WeddingCreateResponse
// @Failure		400			{object}	WeddingCreateResponse
// @Failure		500			{object}	WeddingCreateResponse
// @Param			weddings	body		[]WeddingEditable	true	"Weddings"
// @Router			/v1/weddings [post]
func CreateWeddings(c *gin.Context) {
	var editables []WeddingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WeddingCreateResponse{}

	for _, editable := range editables {
		wedding := editable.model()

		err = models.DB.Create(&wedding).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newWedding(c, wedding)
		r.Data = append(r.Data, WeddingResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get weddings
// @Description	Returns a list of weddings
// @Tags			Weddings
// @Produce		json
// @Success		200	{object}	WeddingListResponse
// @Failure		400	{object}	WeddingListResponse
// @Failure		500	{object}	WeddingListResponse
// @Router			/v1/weddings [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first wedding returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of weddings to return. Defaults to 50."
func GetWeddings(c *gin.Context) {
	var filter WeddingQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 weddings and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var weddings []models.Wedding
	err := q.Find(&weddings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Wedding, 0, len(weddings))
	for _, wedding := range weddings {
		data = append(data, newWedding(c, wedding))
	}

	c.JSON(http.StatusOK, WeddingListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get wedding
// @Description	Returns a specific wedding
// @Tags			Weddings
// @Produce		json
// @Success		200	{object}	WeddingResponse
// @Failure		400	{object}	WeddingResponse
// @Failure		404	{object}	WeddingResponse
// @Failure		500	{object}	WeddingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id} [get]
func GetWedding(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &e,
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWedding(c, wedding)
	c.JSON(http.StatusOK, WeddingResponse{Data: &apiResource})
}

// @Summary		Update wedding
// @Description	Updates an existing wedding. Only values to be updated need to be specified.
// @Tags			Weddings
// @Accept			json
// @Produce		json
// @Success		200		{object}	WeddingResponse
// @Failure		400		{object}	WeddingResponse
// @Failure		404		{object}	WeddingResponse
// @Failure		500		{object}	WeddingResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			wedding	body		WeddingEditable	true	"Wedding"
// @Router			/v1/weddings/{id} [patch]
func UpdateWedding(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &e,
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, WeddingEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data WeddingEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&wedding).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeddingResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWedding(c, wedding)
	c.JSON(http.StatusOK, WeddingResponse{Data: &apiResource})
}

// @Summary		Delete wedding
// @Description	Deletes a wedding and all resources that reference it
// @Tags			Weddings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id} [delete]
func DeleteWedding(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Delete all resources that reference the wedding first
	resources := []any{
		models.CategoryRule{},
		models.Booking{},
		models.Expense{},
		models.Allocation{},
	}

	tx := models.DB.Begin()
	for _, model := range resources {
		err = tx.Where("wedding_id = ?", wedding.ID).Delete(&model).Error
		if err != nil {
			tx.Rollback()
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	err = tx.Delete(&wedding).Error
	if err != nil {
		tx.Rollback()
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
