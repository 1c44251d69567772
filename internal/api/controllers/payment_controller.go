package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/services"
	"recyclemart/pkg/middleware"
	"recyclemart/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent for a booking
// @Description Returns the provider client secret for the booking's stored price.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentIntentRequest true "Payment intent payload"
// @Success 200 {object} response_models.PaymentIntentResponse
// @Security BearerAuth
// @Router /create-payment-intent [post]
func (p *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req request_models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	identity := c.GetString(middleware.IdentityKey)

	resp, err := p.paymentService.CreatePaymentIntent(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (p *PaymentController) RecordPayment(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	identity := c.GetString(middleware.IdentityKey)

	payment, err := p.paymentService.RecordPayment(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment recorded successfully")
}
