package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"recyclemart/internal/repositories"
	"recyclemart/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, provideStripeProvider, providePaymentService)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideStripeProvider() services.PaymentProvider {
	return services.NewStripeProvider(os.Getenv("STRIPE_SECRET_KEY"))
}

func providePaymentService(bookingRepo repositories.BookingRepository, paymentRepo repositories.PaymentRepository, provider services.PaymentProvider) services.PaymentServiceInterface {
	return services.NewPaymentService(bookingRepo, paymentRepo, provider)
}
