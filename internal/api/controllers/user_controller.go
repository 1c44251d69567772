package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/models/response_models"
	"recyclemart/internal/services"
	"recyclemart/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// Register godoc
// @Summary Register a user
// @Description Save a user on first sign-in. Replaying the same email is acknowledged=false, not an error.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RegisterUserRequest true "Registration payload"
// @Success 200 {object} response_models.CreateResult
// @Router /users [post]
func (u *UserController) Register(c *gin.Context) {
	var req request_models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := u.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Sign a 24h bearer token for a registered email. Unknown emails get 403 with an empty token.
// @Tags Users
// @Produce json
// @Param email query string true "Registered email"
// @Success 200 {object} response_models.AccessTokenResponse
// @Router /jwt [get]
func (u *UserController) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	token, err := u.userService.IssueToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			c.JSON(http.StatusForbidden, response_models.AccessTokenResponse{AccessToken: ""})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.AccessTokenResponse{AccessToken: token})
}

func (u *UserController) ListUsers(c *gin.Context) {
	users, err := u.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// AdminStatus reports whether an email belongs to an admin. Public: the
// client uses it to decide which dashboard to render.
func (u *UserController) AdminStatus(c *gin.Context) {
	isAdmin, err := u.userService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.AdminStatusResponse{IsAdmin: isAdmin})
}

func (u *UserController) MakeAdmin(c *gin.Context) {
	if err := u.userService.MakeAdmin(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User promoted to admin")
}

func (u *UserController) VerifySeller(c *gin.Context) {
	if err := u.userService.VerifySeller(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Seller verified")
}
