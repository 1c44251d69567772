package request_models

type CreatePaymentIntentRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid4"`
}

type RecordPaymentRequest struct {
	BookingID     string `json:"booking_id" binding:"required,uuid4"`
	Email         string `json:"email" binding:"required,email"`
	PriceMinor    int64  `json:"price_minor" binding:"required,gt=0"`
	TransactionID string `json:"transaction_id" binding:"required"`
}
