package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/models/request_models"
	"recyclemart/pkg/utils"
)

type fakeProvider struct {
	amount   int64
	currency string
	secret   string
	err      error
}

func (f *fakeProvider) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.amount = amountMinor
	f.currency = currency
	return f.secret, nil
}

// fakePaymentRepo mimics the transactional contract: a payment is only
// stored when the booking update succeeds.
type fakePaymentRepo struct {
	bookings *fakeBookingRepo
	payments []*db_models.Payment
	err      error
}

func (f *fakePaymentRepo) RecordPayment(ctx context.Context, payment *db_models.Payment) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.bookings.stored {
		if b.ID == payment.BookingID {
			b.Paid = true
			b.TransactionID = payment.TransactionID
			f.payments = append(f.payments, payment)
			return nil
		}
	}
	return utils.ErrBookingNotFound
}

func (f *fakePaymentRepo) ListByEmail(ctx context.Context, email string) ([]db_models.Payment, error) {
	return nil, f.err
}

func setupPaymentTest(t *testing.T) (*fakeBookingRepo, *fakePaymentRepo, *fakeProvider, PaymentServiceInterface, *db_models.Booking) {
	t.Helper()
	bookings := newFakeBookingRepo()
	payments := &fakePaymentRepo{bookings: bookings}
	provider := &fakeProvider{secret: "pi_secret_123"}
	svc := NewPaymentService(bookings, payments, provider)

	bookingSvc := NewBookingService(bookings)
	result, err := bookingSvc.CreateBooking(context.Background(), "a@x.com", request_models.CreateBookingRequest{
		Email:      "a@x.com",
		ProductID:  uuid.New().String(),
		Product:    "P1",
		PriceMinor: 120000, // 1200.00 in minor units
	})
	require.NoError(t, err)
	return bookings, payments, provider, svc, result.Record.(*db_models.Booking)
}

func TestCreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("UsesStoredPriceAndCurrency", func(t *testing.T) {
		_, _, provider, svc, booking := setupPaymentTest(t)

		resp, err := svc.CreatePaymentIntent(ctx, "a@x.com", request_models.CreatePaymentIntentRequest{BookingID: booking.ID.String()})
		require.NoError(t, err)
		assert.Equal(t, "pi_secret_123", resp.ClientSecret)
		assert.Equal(t, int64(120000), provider.amount)
		assert.Equal(t, "bdt", provider.currency)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		_, _, _, svc, booking := setupPaymentTest(t)

		_, err := svc.CreatePaymentIntent(ctx, "b@x.com", request_models.CreatePaymentIntentRequest{BookingID: booking.ID.String()})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("MissingBooking", func(t *testing.T) {
		_, _, _, svc, _ := setupPaymentTest(t)

		_, err := svc.CreatePaymentIntent(ctx, "a@x.com", request_models.CreatePaymentIntentRequest{BookingID: uuid.New().String()})
		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		_, _, provider, svc, booking := setupPaymentTest(t)
		provider.err = errors.New("gateway timeout")

		_, err := svc.CreatePaymentIntent(ctx, "a@x.com", request_models.CreatePaymentIntentRequest{BookingID: booking.ID.String()})
		assert.ErrorIs(t, err, utils.ErrUpstreamFailure)
	})
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("MarksBookingPaid", func(t *testing.T) {
		_, payments, _, svc, booking := setupPaymentTest(t)

		payment, err := svc.RecordPayment(ctx, "a@x.com", request_models.RecordPaymentRequest{
			BookingID:     booking.ID.String(),
			Email:         "a@x.com",
			PriceMinor:    120000,
			TransactionID: "txn_42",
		})
		require.NoError(t, err)
		assert.Equal(t, "txn_42", payment.TransactionID)
		assert.True(t, booking.Paid)
		assert.Equal(t, "txn_42", booking.TransactionID)
		assert.Len(t, payments.payments, 1)
	})

	t.Run("MissingBookingLeavesNoPayment", func(t *testing.T) {
		_, payments, _, svc, _ := setupPaymentTest(t)

		_, err := svc.RecordPayment(ctx, "a@x.com", request_models.RecordPaymentRequest{
			BookingID:     uuid.New().String(),
			Email:         "a@x.com",
			PriceMinor:    120000,
			TransactionID: "txn_43",
		})
		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
		assert.Empty(t, payments.payments)
	})

	t.Run("EmailMismatchForbidden", func(t *testing.T) {
		_, _, _, svc, booking := setupPaymentTest(t)

		_, err := svc.RecordPayment(ctx, "a@x.com", request_models.RecordPaymentRequest{
			BookingID:     booking.ID.String(),
			Email:         "b@x.com",
			PriceMinor:    120000,
			TransactionID: "txn_44",
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("StrangerCannotPayOthersBooking", func(t *testing.T) {
		_, payments, _, svc, booking := setupPaymentTest(t)

		_, err := svc.RecordPayment(ctx, "b@x.com", request_models.RecordPaymentRequest{
			BookingID:     booking.ID.String(),
			Email:         "b@x.com",
			PriceMinor:    120000,
			TransactionID: "txn_45",
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
		assert.False(t, booking.Paid)
		assert.Empty(t, booking.TransactionID)
		assert.Empty(t, payments.payments)
	})

	t.Run("ForeignKeyViolationIsNotFound", func(t *testing.T) {
		_, payments, _, svc, booking := setupPaymentTest(t)
		payments.err = gorm.ErrForeignKeyViolated

		_, err := svc.RecordPayment(ctx, "a@x.com", request_models.RecordPaymentRequest{
			BookingID:     booking.ID.String(),
			Email:         "a@x.com",
			PriceMinor:    120000,
			TransactionID: "txn_46",
		})
		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
		assert.Empty(t, payments.payments)
	})
}
