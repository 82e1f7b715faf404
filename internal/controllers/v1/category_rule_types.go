package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	ez_uuid "github.com/sergiu811/perfect-wedding-sub000/internal/uuid"
)

type CategoryRuleEditable struct {
	WeddingID uuid.UUID `json:"weddingId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the wedding this rule belongs to
	Priority  uint      `json:"priority" example:"10" default:"0"`                        // Rules are evaluated in ascending priority order, the first match wins
	Match     string    `json:"match" example:"*flower*" default:""`                      // Glob pattern matched against the expense name, case-insensitively
	Category  string    `json:"category" example:"decorations" default:""`                // The category assigned to matching expenses. Stored in canonical form.
}

// model returns the database resource for the API representation of the
// editable fields
func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		WeddingID: editable.WeddingID,
		Priority:  editable.Priority,
		Match:     editable.Match,
		Category:  editable.Category,
	}
}

type CategoryRuleLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/category-rules/9cce1261-969e-4cfa-b654-c9bd8500a953"` // The rule itself
	Wedding string `json:"wedding" example:"https://example.com/api/v1/weddings/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // The wedding this rule belongs to
}

type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

// newCategoryRule returns the API representation of the resource
func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			WeddingID: model.WeddingID,
			Priority:  model.Priority,
			Match:     model.Match,
			Category:  model.Category,
		},
		Links: CategoryRuleLinks{
			Self:    fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
			Wedding: fmt.Sprintf("%s/v1/weddings/%s", url, model.WeddingID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of resources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created resources
}

func (t *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *CategoryRule `json:"data"`                                                          // The resource
}

type CategoryRuleQueryFilter struct {
	WeddingID ez_uuid.UUID `form:"wedding"`                      // Filter by wedding ID
	Category  string       `form:"category" filterField:"false"` // Filter by the canonical category key
	Match     string       `form:"match" filterField:"false"`    // Filter by the glob pattern
	Offset    uint         `form:"offset" filterField:"false"`   // The offset of the first rule returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`    // Maximum number of rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() models.CategoryRule {
	return models.CategoryRule{
		WeddingID: f.WeddingID.UUID,
	}
}
