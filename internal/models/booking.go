package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingStatus is the lifecycle state of a vendor engagement.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle
// states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}

	return false
}

// CountsAsSpend reports whether bookings in this status contribute to
// the spent total of the budget.
func (s BookingStatus) CountsAsSpend() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// Booking is an engagement with a vendor, e.g. a signed venue or a
// photographer that has sent an offer.
type Booking struct {
	DefaultModel
	Wedding        Wedding `json:"-"`
	WeddingID      uuid.UUID
	VendorName     string
	VendorCategory string
	Status         BookingStatus
	TotalPrice     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date           time.Time
	Note           string
}

// BeforeSave trims whitespace and validates the lifecycle state. A
// booking without a status starts out pending.
func (b *Booking) BeforeSave(_ *gorm.DB) error {
	b.VendorName = strings.TrimSpace(b.VendorName)
	b.VendorCategory = strings.TrimSpace(b.VendorCategory)
	b.Note = strings.TrimSpace(b.Note)

	if b.VendorName == "" {
		return ErrBookingVendorNameMissing
	}

	if b.Status == "" {
		b.Status = BookingStatusPending
	}

	if !b.Status.Valid() {
		return ErrBookingStatusInvalid
	}

	if b.TotalPrice.IsNegative() {
		return ErrBookingPriceNegative
	}

	if b.Date.IsZero() {
		b.Date = time.Now().In(time.UTC)
	} else {
		b.Date = b.Date.In(time.UTC)
	}

	return nil
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Booking)
	return b.checkIntegrity(tx, *toSave)
}

func (b *Booking) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Booking)

	if tx.Statement.Changed("WeddingID") {
		err := b.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (b *Booking) AfterFind(_ *gorm.DB) error {
	b.Date = b.Date.In(time.UTC)
	return nil
}

// checkIntegrity verifies references to other resources
func (b *Booking) checkIntegrity(tx *gorm.DB, toSave Booking) error {
	return tx.First(&Wedding{}, toSave.WeddingID).Error
}
