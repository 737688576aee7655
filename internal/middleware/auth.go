package middleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/DhavalSuthar-24/squadhub/pkg/token"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and re-reads the account on every
// request. A missing or disabled account is treated as unauthenticated.
func AuthMiddleware(jwtSecret string, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		account, err := users.WithContext(c.Request.Context()).GetByID(claims.UserID)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to load account")
			return
		}
		if account == nil || account.AccountStatus == user.AccountDisabled {
			responses.Unauthorized(c, "User not found or disabled")
			return
		}

		c.Set(common.ContextUserIDKey, account.ID)
		c.Set(common.ContextUserRoleKey, string(account.Role))
		c.Set(common.ContextAccountStatusKey, string(account.AccountStatus))
		c.Next()
	}
}
