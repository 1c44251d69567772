package services

import (
	"context"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// PaymentProvider is the boundary to the external payment gateway. Amounts
// are in minor currency units.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}

type stripeProvider struct{}

// NewStripeProvider configures the stripe client with the given secret key.
func NewStripeProvider(apiKey string) PaymentProvider {
	stripe.Key = apiKey
	return &stripeProvider{}
}

func (s *stripeProvider) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
