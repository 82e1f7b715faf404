package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// stringFilters applies the string based filters that need substring
// matching instead of gorm's exact matching.
func stringFilters(db, q *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if slices.Contains(setFields, "Name") {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	}

	if slices.Contains(setFields, "Note") {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	}

	if search != "" {
		q = q.Where(
			db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)).
				Or("note LIKE ?", fmt.Sprintf("%%%s%%", search)),
		)
	}

	return q
}
