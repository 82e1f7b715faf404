package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Wedding is the highest level of organization in the backend, all
// other resources reference it directly.
type Wedding struct {
	DefaultModel
	Name string
	Date time.Time
	Note string
}

// BeforeSave trims whitespace from all strings.
func (w *Wedding) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Note = strings.TrimSpace(w.Note)

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (w *Wedding) AfterFind(_ *gorm.DB) error {
	w.Date = w.Date.In(time.UTC)
	return nil
}
