package controllers_fx

import (
	"go.uber.org/fx"
	"recyclemart/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewProductController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewWishlistController),
	fx.Provide(controllers.NewPaymentController))
