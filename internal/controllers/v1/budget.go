package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/budget"
	"github.com/sergiu811/perfect-wedding-sub000/internal/httputil"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"golang.org/x/sync/errgroup"
)

// loadBudgetData reads everything the aggregation needs for a wedding.
// The three collections are independent, so they are fetched in
// parallel.
func loadBudgetData(weddingID uuid.UUID) (allocations []budget.Allocation, bookings []budget.Booking, expenses []budget.Expense, err error) {
	var g errgroup.Group

	g.Go(func() error {
		var rows []models.Allocation
		err := models.DB.Where(&models.Allocation{WeddingID: weddingID}).Order("created_at ASC").Find(&rows).Error
		if err != nil {
			return err
		}

		allocations = make([]budget.Allocation, 0, len(rows))
		for _, row := range rows {
			allocations = append(allocations, budget.Allocation{
				ID:       row.ID.String(),
				Category: row.Category,
				Amount:   row.Amount.String(),
			})
		}

		return nil
	})

	g.Go(func() error {
		var rows []models.Booking
		err := models.DB.Where(&models.Booking{WeddingID: weddingID}).Order("date ASC").Find(&rows).Error
		if err != nil {
			return err
		}

		bookings = make([]budget.Booking, 0, len(rows))
		for _, row := range rows {
			bookings = append(bookings, budget.Booking{
				VendorName:     row.VendorName,
				VendorCategory: row.VendorCategory,
				Status:         string(row.Status),
				TotalPrice:     row.TotalPrice.String(),
				Date:           row.Date.Format("2006-01-02"),
			})
		}

		return nil
	})

	g.Go(func() error {
		var rows []models.Expense
		err := models.DB.Where(&models.Expense{WeddingID: weddingID}).Order("date ASC").Find(&rows).Error
		if err != nil {
			return err
		}

		expenses = make([]budget.Expense, 0, len(rows))
		for _, row := range rows {
			expenses = append(expenses, budget.Expense{
				Name:     row.Name,
				Category: row.Category,
				Amount:   row.Amount.String(),
				Date:     row.Date.Format("2006-01-02"),
			})
		}

		return nil
	})

	err = g.Wait()
	return
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id}/budget [options]
func OptionsBudget(c *gin.Context) {
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

	httputil.OptionsGet(c)
}

// @Summary		Get budget
// @Description	Returns the computed budget of a wedding. One line per category, reconciling the planned allocations with the spend from bookings and expenses.
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id}/budget [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var wedding models.Wedding
	err = models.DB.First(&wedding, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	allocations, bookings, expenses, err := loadBudgetData(wedding.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	categories := budget.Compute(allocations, bookings, expenses)

	apiResource := newBudget(c, wedding.ID, categories)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id}/budget/csv [options]
func OptionsBudgetCSV(c *gin.Context) {
	OptionsBudget(c)
}

// @Summary		Get budget report
// @Description	Returns the budget of a wedding as a downloadable CSV report
// @Tags			Budget
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weddings/{id}/budget/csv [get]
func GetBudgetCSV(c *gin.Context) {
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

	allocations, bookings, expenses, err := loadBudgetData(wedding.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	categories := budget.Compute(allocations, bookings, expenses)
	report := budget.Report(categories, bookings, expenses, allocations)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", budget.Filename(time.Now())))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(report))
}
