package response_models

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
