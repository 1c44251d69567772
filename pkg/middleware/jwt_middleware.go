package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/repositories"
	"recyclemart/pkg/utils"
)

// IdentityKey is the context key carrying the authenticated caller's email.
const IdentityKey = "email"

// JWTAuthMiddleware verifies the bearer token and attaches the caller's
// identity to the request context. A missing credential is 401; a credential
// that fails verification is 403.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, "unauthorized access")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusForbidden, "forbidden access")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			utils.RespondError(c, http.StatusForbidden, "forbidden access")
			c.Abort()
			return
		}

		c.Set(IdentityKey, claims.Email)
		c.Next()
	}
}

// RequireAdmin escalates the auth gate with a role lookup. It must be chained
// after JWTAuthMiddleware; without an identity in context it fails closed.
func RequireAdmin(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(IdentityKey)
		if email == "" {
			utils.RespondError(c, http.StatusForbidden, "forbidden access")
			c.Abort()
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), email)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if user == nil || user.Role != db_models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, "forbidden access")
			c.Abort()
			return
		}

		c.Next()
	}
}
