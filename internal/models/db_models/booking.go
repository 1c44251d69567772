package db_models

import "github.com/google/uuid"

// Booking carries a composite unique index on (email, product_id). Duplicate
// bookings are rejected by the database, not by a read-before-write check, so
// concurrent requests against the same pair cannot both succeed.
type Booking struct {
	BaseModel
	Email           string    `gorm:"uniqueIndex:ux_booking_email_product,priority:1" json:"email"`
	ProductID       uuid.UUID `gorm:"uniqueIndex:ux_booking_email_product,priority:2" json:"product_id"`
	Product         string    `json:"product"` // product name snapshot
	PriceMinor      int64     `json:"price_minor"`
	MeetingLocation string    `json:"meeting_location"`
	Phone           string    `json:"phone"`
	Paid            bool      `json:"paid"`
	TransactionID   string    `json:"transaction_id,omitempty"`
}
