package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
)

type BookingRepository interface {
	// Insert relies on the (email, product_id) unique index; a duplicate
	// surfaces as gorm.ErrDuplicatedKey for the service to interpret.
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindByID(ctx context.Context, id string) (*db_models.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]db_models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (b *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) FindByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := b.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (b *bookingRepository) ListByEmail(ctx context.Context, email string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := b.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
