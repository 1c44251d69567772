package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name        string         `json:"name"`
	CategoryID  uuid.UUID      `gorm:"index" json:"category_id"`
	PriceMinor  int64          `json:"price_minor"` // minor currency units
	Condition   string         `json:"condition"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	SellerEmail string         `gorm:"index" json:"seller_email"`
	Advertised  bool           `json:"advertised"`
	Sold        bool           `json:"sold"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}
