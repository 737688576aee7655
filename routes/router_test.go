package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/config"
	"github.com/DhavalSuthar-24/squadhub/internal/auth"
	"github.com/DhavalSuthar-24/squadhub/internal/player"
	"github.com/DhavalSuthar-24/squadhub/internal/storage"
	"github.com/DhavalSuthar-24/squadhub/internal/testutil"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, r *gin.Engine, method, path, bearer string, body interface{}) (int, json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res struct {
		Data json.RawMessage `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	return w.Code, res.Data
}

func TestPlayerUpdateResetsVerificationThroughRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &user.User{}, &player.Profile{})
	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = "router-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 5
	cfg.Squad.DefaultMinSize, cfg.Squad.DefaultMaxSize, cfg.Squad.MaxCapacity = 4, 6, 10
	r := SetupRoutes(db, cfg, storage.Disabled{})

	code, _ := do(t, r, http.MethodGet, "/api/players/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, data := do(t, r, http.MethodPost, "/api/auth/register", "", auth.RegisterRequest{
		Name: "Ace", Username: "ace", Email: "ace@example.com", Phone: "+919876543210",
		Password: "password123", PasswordConfirm: "password123",
	})
	require.Equal(t, http.StatusCreated, code)
	var session auth.AuthResponse
	require.NoError(t, json.Unmarshal(data, &session))
	require.NoError(t, db.Model(&user.User{}).Where("id = ?", session.User.ID).
		Update("account_status", user.AccountVerified).Error)

	code, _ = do(t, r, http.MethodPost, "/api/players", session.AccessToken, player.CreateProfileRequest{GameUID: "uid-1", InGameName: "Ace"})
	require.Equal(t, http.StatusCreated, code)

	newName := "AceTwo"
	code, _ = do(t, r, http.MethodPut, "/api/players/me", session.AccessToken, player.UpdateProfileRequest{InGameName: &newName})
	require.Equal(t, http.StatusOK, code)

	var account user.User
	require.NoError(t, db.First(&account, session.User.ID).Error)
	assert.Equal(t, user.AccountUnverified, account.AccountStatus)
}
