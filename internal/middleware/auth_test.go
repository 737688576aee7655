package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/internal/testutil"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/DhavalSuthar-24/squadhub/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func setup(t *testing.T) (*gin.Engine, user.Repository) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &user.User{})
	users := user.NewRepository(db)

	r := gin.New()
	r.GET("/me", AuthMiddleware(secret, users), func(c *gin.Context) {
		id, _ := common.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": common.GetUserRoleFromContext(c)})
	})
	return r, users
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, users := setup(t)

	active := &user.User{Username: "ace", Email: "ace@example.com", Phone: "1", AccountStatus: user.AccountVerified, Role: user.RolePlayer}
	disabled := &user.User{Username: "ban", Email: "ban@example.com", Phone: "2", AccountStatus: user.AccountDisabled, Role: user.RolePlayer}
	require.NoError(t, users.Create(active))
	require.NoError(t, users.Create(disabled))

	activeToken, err := token.GenerateJWT(active.ID, "ADMIN", "test", secret, 5)
	require.NoError(t, err)
	disabledToken, err := token.GenerateJWT(disabled.ID, "PLAYER", "test", secret, 5)
	require.NoError(t, err)
	ghostToken, err := token.GenerateJWT(999, "PLAYER", "test", secret, 5)
	require.NoError(t, err)

	w := call(r, "Bearer "+activeToken)
	assert.Equal(t, http.StatusOK, w.Code)
	// The role comes from the database, not the token claim.
	assert.Contains(t, w.Body.String(), `"role":"PLAYER"`)

	assert.Equal(t, http.StatusUnauthorized, call(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Token "+activeToken).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer "+disabledToken).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer "+ghostToken).Code)
}
