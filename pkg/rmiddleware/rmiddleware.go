package rmiddleware

import (
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware must run after the auth middleware, which loads the role
// from the database.
func RoleMiddleware(requiredRoles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := common.GetUserIDFromContext(c); err != nil {
			responses.Unauthorized(c, "Unauthorized: "+err.Error())
			return
		}

		role := common.GetUserRoleFromContext(c)
		for _, required := range requiredRoles {
			if strings.EqualFold(role, string(required)) {
				c.Next()
				return
			}
		}
		responses.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(user.RoleAdmin)
}
