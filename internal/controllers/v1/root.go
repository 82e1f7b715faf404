package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sergiu811/perfect-wedding-sub000/internal/httputil"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Weddings      string `json:"weddings" example:"https://example.com/api/v1/weddings"`            // URL of the wedding collection endpoint
	Allocations   string `json:"allocations" example:"https://example.com/api/v1/allocations"`      // URL of the allocation collection endpoint
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // URL of the expense collection endpoint
	Bookings      string `json:"bookings" example:"https://example.com/api/v1/bookings"`            // URL of the booking collection endpoint
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"` // URL of the category rule collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Weddings:      url + "/v1/weddings",
			Allocations:   url + "/v1/allocations",
			Expenses:      url + "/v1/expenses",
			Bookings:      url + "/v1/bookings",
			CategoryRules: url + "/v1/category-rules",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
