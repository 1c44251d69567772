package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/services"
	"recyclemart/pkg/middleware"
	"recyclemart/pkg/utils"
)

type WishlistController struct {
	wishlistService services.WishlistServiceInterface
}

func NewWishlistController(wishlistService services.WishlistServiceInterface) *WishlistController {
	return &WishlistController{wishlistService: wishlistService}
}

// AddToWishlist godoc
// @Summary Add a product to the caller's wishlist
// @Tags Wishlists
// @Accept json
// @Produce json
// @Param request body request_models.CreateWishlistRequest true "Wishlist payload"
// @Success 200 {object} response_models.CreateResult
// @Security BearerAuth
// @Router /wishlists [post]
func (w *WishlistController) AddToWishlist(c *gin.Context) {
	var req request_models.CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	identity := c.GetString(middleware.IdentityKey)

	result, err := w.wishlistService.AddToWishlist(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (w *WishlistController) GetWishlists(c *gin.Context) {
	email := c.Query("email")
	identity := c.GetString(middleware.IdentityKey)

	entries, err := w.wishlistService.GetWishlistsByEmail(c.Request.Context(), identity, email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Wishlist fetched successfully")
}
