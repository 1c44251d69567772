package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"recyclemart/cmd/fx/booking_fx"
	"recyclemart/cmd/fx/category_fx"
	"recyclemart/cmd/fx/controllers_fx"
	"recyclemart/cmd/fx/db_fx"
	"recyclemart/cmd/fx/payment_fx"
	"recyclemart/cmd/fx/product_fx"
	"recyclemart/cmd/fx/redis_fx"
	"recyclemart/cmd/fx/user_fx"
	"recyclemart/cmd/fx/wishlist_fx"
	"recyclemart/internal/api/controllers"
	"recyclemart/internal/logging"
	"recyclemart/internal/repositories"
	"recyclemart/internal/services"
	"recyclemart/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	logging.Init()

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		user_fx.Module,
		category_fx.Module,
		product_fx.Module,
		booking_fx.Module,
		wishlist_fx.Module,
		payment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{Addr: ":" + port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	categoryController *controllers.CategoryController,
	productController *controllers.ProductController,
	bookingController *controllers.BookingController,
	wishlistController *controllers.WishlistController,
	paymentController *controllers.PaymentController,
	userRepo repositories.UserRepository,
	secret services.TokenSecret) *gin.Engine {

	middleware.RegisterMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public surface: browsing, registration, token issuance.
	r.GET("/categories", categoryController.ListCategories)
	r.GET("/categories/:id", categoryController.GetCategory)
	r.GET("/categories/:id/products", categoryController.ListCategoryProducts)
	r.GET("/jwt", userController.IssueToken)
	r.POST("/users", userController.Register)
	r.GET("/users/admin/:email", userController.AdminStatus)

	// Everything below requires a verified bearer token.
	authed := r.Group("", middleware.JWTAuthMiddleware(secret))

	authed.GET("/bookings", bookingController.GetBookings)
	authed.POST("/bookings", bookingController.CreateBooking)
	authed.GET("/bookings/:id", bookingController.GetBookingByID)
	authed.GET("/wishlists", wishlistController.GetWishlists)
	authed.POST("/wishlists", wishlistController.AddToWishlist)
	authed.POST("/create-payment-intent", paymentController.CreatePaymentIntent)
	authed.POST("/payments", paymentController.RecordPayment)

	// Admin-only surface: the role check runs after the auth gate.
	admin := authed.Group("", middleware.RequireAdmin(userRepo))

	admin.GET("/users", userController.ListUsers)
	admin.PUT("/users/admin/:id", userController.MakeAdmin)
	admin.PUT("/users/sellers/:id", userController.VerifySeller)
	admin.GET("/products", productController.ListProducts)
	admin.POST("/products", productController.CreateProduct)
	admin.PUT("/products/:id", productController.AdvertiseProduct)
	admin.DELETE("/products/:id", productController.DeleteProduct)

	return r
}
