package request_models

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	CategoryID  string   `json:"category_id" binding:"required,uuid4"`
	PriceMinor  int64    `json:"price_minor" binding:"required,gt=0"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	SellerEmail string   `json:"seller_email" binding:"required,email"`
}
