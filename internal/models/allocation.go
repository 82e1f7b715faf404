package models

import (
	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/category"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is the amount a couple plans to spend on one category.
// There is at most one allocation per category per wedding.
type Allocation struct {
	DefaultModel
	Wedding   Wedding         `json:"-"`
	WeddingID uuid.UUID       `gorm:"uniqueIndex:allocation_wedding_category"`
	Category  string          `gorm:"uniqueIndex:allocation_wedding_category"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave stores the category in its canonical form so that the
// unique index catches differently spelled duplicates.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.Category = category.Normalize(a.Category)
	return nil
}

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Allocation)
	return a.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the allocation before committing
// an update to the database.
func (a *Allocation) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Allocation)

	if tx.Statement.Changed("WeddingID") {
		err := a.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *Allocation) AfterSave(_ *gorm.DB) error {
	if a.Amount.IsNegative() {
		return ErrAllocationAmountNegative
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Allocation) checkIntegrity(tx *gorm.DB, toSave Allocation) error {
	return tx.First(&Wedding{}, toSave.WeddingID).Error
}
