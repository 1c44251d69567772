package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/services"
	"recyclemart/pkg/middleware"
	"recyclemart/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// CreateBooking godoc
// @Summary Book a product
// @Description Create a booking for the authenticated buyer. Booking the same product twice returns acknowledged=false.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 200 {object} response_models.CreateResult
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	identity := c.GetString(middleware.IdentityKey)

	result, err := b.bookingService.CreateBooking(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBookings godoc
// @Summary List the caller's bookings
// @Tags Bookings
// @Produce json
// @Param email query string true "Buyer email, must match the token identity"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) GetBookings(c *gin.Context) {
	email := c.Query("email")
	identity := c.GetString(middleware.IdentityKey)

	bookings, err := b.bookingService.GetBookingsByEmail(c.Request.Context(), identity, email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

func (b *BookingController) GetBookingByID(c *gin.Context) {
	identity := c.GetString(middleware.IdentityKey)

	booking, err := b.bookingService.GetBookingByID(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}
