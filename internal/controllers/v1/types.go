package v1

import (
	ez_uuid "github.com/sergiu811/perfect-wedding-sub000/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
