package request_models

type CreateBookingRequest struct {
	Email           string `json:"email" binding:"required,email"`
	ProductID       string `json:"product_id" binding:"required,uuid4"`
	Product         string `json:"product" binding:"required"`
	PriceMinor      int64  `json:"price_minor" binding:"required,gt=0"`
	MeetingLocation string `json:"meeting_location"`
	Phone           string `json:"phone"`
}

type CreateWishlistRequest struct {
	Email      string `json:"email" binding:"required,email"`
	ProductID  string `json:"product_id" binding:"required,uuid4"`
	Product    string `json:"product" binding:"required"`
	PriceMinor int64  `json:"price_minor" binding:"gte=0"`
}
