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

type fakeBookingRepo struct {
	stored map[string]*db_models.Booking // keyed by email|product_id
	err    error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{stored: make(map[string]*db_models.Booking)}
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *db_models.Booking) error {
	if f.err != nil {
		return f.err
	}
	key := booking.Email + "|" + booking.ProductID.String()
	if _, exists := f.stored[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	booking.ID = uuid.New()
	f.stored[key] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id string) (*db_models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.stored {
		if b.ID.String() == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListByEmail(ctx context.Context, email string) ([]db_models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Booking
	for _, b := range f.stored {
		if b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func bookingRequest(email string) request_models.CreateBookingRequest {
	return request_models.CreateBookingRequest{
		Email:      email,
		ProductID:  uuid.New().String(),
		Product:    "P1",
		PriceMinor: 120000,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstCreateAcknowledged", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)

		result, err := svc.CreateBooking(ctx, "a@x.com", bookingRequest("a@x.com"))
		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Len(t, repo.stored, 1)
	})

	t.Run("DuplicateIsAlreadyExistsNotError", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)
		req := bookingRequest("a@x.com")

		first, err := svc.CreateBooking(ctx, "a@x.com", req)
		require.NoError(t, err)
		require.True(t, first.Acknowledged)

		second, err := svc.CreateBooking(ctx, "a@x.com", req)
		require.NoError(t, err)
		assert.False(t, second.Acknowledged)
		assert.Equal(t, "You have already booked P1", second.Message)
		assert.Len(t, repo.stored, 1)
	})

	t.Run("EmailMismatchForbidden", func(t *testing.T) {
		svc := NewBookingService(newFakeBookingRepo())

		_, err := svc.CreateBooking(ctx, "a@x.com", bookingRequest("b@x.com"))
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("RepoFailure", func(t *testing.T) {
		repo := newFakeBookingRepo()
		repo.err = errors.New("connection reset")
		svc := NewBookingService(repo)

		_, err := svc.CreateBooking(ctx, "a@x.com", bookingRequest("a@x.com"))
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}

func TestGetBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnerListsOwn", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)
		_, err := svc.CreateBooking(ctx, "a@x.com", bookingRequest("a@x.com"))
		require.NoError(t, err)

		bookings, err := svc.GetBookingsByEmail(ctx, "a@x.com", "a@x.com")
		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("QueryForOtherEmailForbidden", func(t *testing.T) {
		svc := NewBookingService(newFakeBookingRepo())

		_, err := svc.GetBookingsByEmail(ctx, "a@x.com", "b@x.com")
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})
}

func TestGetBookingByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo)

	result, err := svc.CreateBooking(ctx, "a@x.com", bookingRequest("a@x.com"))
	require.NoError(t, err)
	created := result.Record.(*db_models.Booking)

	t.Run("OwnerReads", func(t *testing.T) {
		booking, err := svc.GetBookingByID(ctx, "a@x.com", created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, created.ID, booking.ID)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		_, err := svc.GetBookingByID(ctx, "b@x.com", created.ID.String())
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("MissingNotFound", func(t *testing.T) {
		_, err := svc.GetBookingByID(ctx, "a@x.com", uuid.New().String())
		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
	})

	t.Run("MalformedIDNotFound", func(t *testing.T) {
		_, err := svc.GetBookingByID(ctx, "a@x.com", "not-a-uuid")
		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
	})
}
