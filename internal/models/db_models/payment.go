package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Payment struct {
	BaseModel
	BookingID     uuid.UUID `gorm:"index" json:"booking_id"`
	Email         string    `gorm:"index" json:"email"`
	PriceMinor    int64     `json:"price_minor"`
	Currency      string    `gorm:"size:3" json:"currency"`
	TransactionID string    `gorm:"index" json:"transaction_id"`

	// Raw provider payloads for reconciliation.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"-"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}
