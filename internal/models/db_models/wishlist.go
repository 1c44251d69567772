package db_models

import "github.com/google/uuid"

// Wishlist entries are unique per (email, product_id), same scheme as Booking.
type Wishlist struct {
	BaseModel
	Email      string    `gorm:"uniqueIndex:ux_wishlist_email_product,priority:1" json:"email"`
	ProductID  uuid.UUID `gorm:"uniqueIndex:ux_wishlist_email_product,priority:2" json:"product_id"`
	Product    string    `json:"product"`
	PriceMinor int64     `json:"price_minor"`
}
