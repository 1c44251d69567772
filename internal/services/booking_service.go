package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/models/response_models"
	"recyclemart/internal/repositories"
	"recyclemart/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, identityEmail string, req request_models.CreateBookingRequest) (*response_models.CreateResult, error)
	GetBookingsByEmail(ctx context.Context, identityEmail, email string) ([]db_models.Booking, error)
	GetBookingByID(ctx context.Context, identityEmail, id string) (*db_models.Booking, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository) BookingServiceInterface {
	return &BookingService{bookingRepo: bookingRepo}
}

// CreateBooking inserts a booking for the authenticated caller. The unique
// index on (email, product_id) is the duplicate check: a second booking for
// the same product comes back as an acknowledged-false result, not an error.
func (b *BookingService) CreateBooking(ctx context.Context, identityEmail string, req request_models.CreateBookingRequest) (*response_models.CreateResult, error) {
	if req.Email != identityEmail {
		return nil, utils.ErrForbidden
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, utils.ErrProductNotFound
	}

	booking := &db_models.Booking{
		Email:           req.Email,
		ProductID:       productID,
		Product:         req.Product,
		PriceMinor:      req.PriceMinor,
		MeetingLocation: req.MeetingLocation,
		Phone:           req.Phone,
	}

	if err := b.bookingRepo.Insert(ctx, booking); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &response_models.CreateResult{
				Acknowledged: false,
				Message:      fmt.Sprintf("You have already booked %s", req.Product),
			}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateResult{Acknowledged: true, Record: booking}, nil
}

func (b *BookingService) GetBookingsByEmail(ctx context.Context, identityEmail, email string) ([]db_models.Booking, error) {
	if email != identityEmail {
		return nil, utils.ErrForbidden
	}
	bookings, err := b.bookingRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (b *BookingService) GetBookingByID(ctx context.Context, identityEmail, id string) (*db_models.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrBookingNotFound
	}
	booking, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.Email != identityEmail {
		return nil, utils.ErrForbidden
	}
	return booking, nil
}
