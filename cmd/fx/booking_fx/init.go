package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"recyclemart/internal/repositories"
	"recyclemart/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo)
}
