package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a manually recorded spend that is not tied to a booking,
// e.g. stamps for the invitations.
//
// The category is stored as entered and only normalized when budgets
// are computed, so that the client can display the original label.
type Expense struct {
	DefaultModel
	Wedding   Wedding         `json:"-"`
	WeddingID uuid.UUID
	Name      string
	Category  string
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note      string
	Date      time.Time
}

// BeforeSave trims whitespace and verifies that the expense has a name.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.TrimSpace(e.Category)
	e.Note = strings.TrimSpace(e.Note)

	if e.Name == "" {
		return ErrExpenseNameMissing
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Expense)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Expense)

	if tx.Statement.Changed("WeddingID") {
		err := e.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// checkIntegrity verifies references to other resources
func (e *Expense) checkIntegrity(tx *gorm.DB, toSave Expense) error {
	return tx.First(&Wedding{}, toSave.WeddingID).Error
}
