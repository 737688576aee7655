package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func withCaller(userID uint, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != 0 {
			c.Set(common.ContextUserIDKey, userID)
			c.Set(common.ContextUserRoleKey, string(role))
		}
		c.Next()
	}
}

func status(userID uint, role user.Role, gate gin.HandlerFunc) int {
	r := gin.New()
	r.GET("/gated", withCaller(userID, role), gate, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
	return w.Code
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	organizers := RoleMiddleware(user.RoleOrganizer, user.RoleAdmin)

	assert.Equal(t, http.StatusNoContent, status(1, user.RoleOrganizer, organizers))
	assert.Equal(t, http.StatusNoContent, status(1, user.RoleAdmin, organizers))
	assert.Equal(t, http.StatusForbidden, status(1, user.RolePlayer, organizers))
	assert.Equal(t, http.StatusUnauthorized, status(0, "", organizers))

	assert.Equal(t, http.StatusForbidden, status(1, user.RoleOrganizer, AdminMiddleware()))
	assert.Equal(t, http.StatusNoContent, status(1, user.RoleAdmin, AdminMiddleware()))
}
