package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/sergiu811/perfect-wedding-sub000/internal/category"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to expenses that are submitted
// without one, based on a glob match against the expense name.
//
// Rules are evaluated in ascending priority order, the first match
// wins.
type CategoryRule struct {
	DefaultModel
	Wedding   Wedding `json:"-"`
	WeddingID uuid.UUID
	Priority  uint
	Match     string
	Category  string
}

// BeforeSave trims the pattern and stores the category in its
// canonical form.
func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrCategoryRuleMatchMissing
	}

	r.Category = category.Normalize(r.Category)

	return nil
}

func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*CategoryRule)
	return r.checkIntegrity(tx, *toSave)
}

func (r *CategoryRule) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(CategoryRule)

	if tx.Statement.Changed("WeddingID") {
		err := r.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (r *CategoryRule) checkIntegrity(tx *gorm.DB, toSave CategoryRule) error {
	return tx.First(&Wedding{}, toSave.WeddingID).Error
}

// CategoryForExpense returns the category for an expense name by
// evaluating the wedding's rules. Names that match no rule land in the
// fallback category.
func CategoryForExpense(db *gorm.DB, weddingID uuid.UUID, name string) (string, error) {
	var rules []CategoryRule

	err := db.
		Where(&CategoryRule{WeddingID: weddingID}).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return "", err
	}

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), strings.ToLower(name)) {
			return rule.Category, nil
		}
	}

	return category.Other, nil
}
