package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/models/response_models"
	"recyclemart/internal/repositories"
	"recyclemart/pkg/utils"
)

// Currency is fixed for the marketplace; prices are stored in minor units.
const paymentCurrency = "bdt"

type PaymentServiceInterface interface {
	CreatePaymentIntent(ctx context.Context, identityEmail string, req request_models.CreatePaymentIntentRequest) (*response_models.PaymentIntentResponse, error)
	RecordPayment(ctx context.Context, identityEmail string, req request_models.RecordPaymentRequest) (*db_models.Payment, error)
}

type PaymentService struct {
	bookingRepo repositories.BookingRepository
	paymentRepo repositories.PaymentRepository
	provider    PaymentProvider
}

func NewPaymentService(bookingRepo repositories.BookingRepository, paymentRepo repositories.PaymentRepository, provider PaymentProvider) PaymentServiceInterface {
	return &PaymentService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		provider:    provider,
	}
}

// CreatePaymentIntent asks the provider for a client secret covering the
// booking's stored price. The caller must own the booking.
func (p *PaymentService) CreatePaymentIntent(ctx context.Context, identityEmail string, req request_models.CreatePaymentIntentRequest) (*response_models.PaymentIntentResponse, error) {
	booking, err := p.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.Email != identityEmail {
		return nil, utils.ErrForbidden
	}

	clientSecret, err := p.provider.CreatePaymentIntent(ctx, booking.PriceMinor, paymentCurrency)
	if err != nil {
		return nil, utils.ErrUpstreamFailure
	}

	return &response_models.PaymentIntentResponse{ClientSecret: clientSecret}, nil
}

// RecordPayment persists the confirmation and flips the booking to paid in
// one database transaction, so a recorded payment always has a paid booking.
// The booking must belong to the caller.
func (p *PaymentService) RecordPayment(ctx context.Context, identityEmail string, req request_models.RecordPaymentRequest) (*db_models.Payment, error) {
	if req.Email != identityEmail {
		return nil, utils.ErrForbidden
	}

	booking, err := p.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.Email != identityEmail {
		return nil, utils.ErrForbidden
	}

	metadata, _ := json.Marshal(map[string]string{"transaction_id": req.TransactionID})

	payment := &db_models.Payment{
		BookingID:     booking.ID,
		Email:         req.Email,
		PriceMinor:    req.PriceMinor,
		Currency:      paymentCurrency,
		TransactionID: req.TransactionID,
		Metadata:      metadata,
	}

	if err := p.paymentRepo.RecordPayment(ctx, payment); err != nil {
		// The booking can vanish between the ownership read and the write;
		// the FK violation from the payment insert means the same thing as
		// zero updated rows.
		if errors.Is(err, utils.ErrBookingNotFound) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, utils.ErrBookingNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return payment, nil
}
