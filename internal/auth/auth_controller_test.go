package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/middleware"
	"github.com/DhavalSuthar-24/squadhub/internal/testutil"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "auth-test-secret"

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Fields  map[string]string `json:"fields"`
}

func newRouter(t *testing.T) (*gin.Engine, user.Repository) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &user.User{})
	users := user.NewRepository(db)
	svc := NewService(users, TokenConfig{Secret: secret, Issuer: "test", ExpiryMinutes: 5})

	r := gin.New()
	AuthRoutes(r.Group("/api"), svc, middleware.AuthMiddleware(secret, users))
	return r, users
}

func send(r *gin.Engine, method, path string, body interface{}, bearer string) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func registration() RegisterRequest {
	return RegisterRequest{
		Name:            "John Doe",
		Username:        "johndoe",
		Email:           "John@Example.com",
		Phone:           "+919876543210",
		Password:        "password123",
		PasswordConfirm: "password123",
	}
}

func TestRegisterLoginAndMe(t *testing.T) {
	r, _ := newRouter(t)

	w, env := send(r, http.MethodPost, "/api/auth/register", registration(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &registered))
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "john@example.com", registered.User.Email)
	assert.Equal(t, user.RolePlayer, registered.User.Role)
	assert.Equal(t, user.AccountUnverified, registered.User.AccountStatus)

	w, env = send(r, http.MethodPost, "/api/auth/login", LoginRequest{LoginIdentifier: "johndoe", Password: "password123"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var loggedIn AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &loggedIn))

	w, env = send(r, http.MethodGet, "/api/auth/me", nil, loggedIn.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var me user.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, registered.User.ID, me.ID)
	assert.Equal(t, "johndoe", me.Username)
}

func TestRegisterRejectsDuplicatesAndBadInput(t *testing.T) {
	r, _ := newRouter(t)

	w, _ := send(r, http.MethodPost, "/api/auth/register", registration(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	dup := registration()
	dup.Username = "someoneelse"
	dup.Phone = "+919876543211"
	w, env := send(r, http.MethodPost, "/api/auth/register", dup, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User with this email, username or phone already exists", env.Message)

	bad := registration()
	bad.PasswordConfirm = "different1"
	bad.Email = "not-an-email"
	w, env = send(r, http.MethodPost, "/api/auth/register", bad, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, env.Fields)
}

func TestLoginFailures(t *testing.T) {
	r, users := newRouter(t)

	w, _ := send(r, http.MethodPost, "/api/auth/register", registration(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := send(r, http.MethodPost, "/api/auth/login", LoginRequest{LoginIdentifier: "johndoe", Password: "wrong-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)

	w, env = send(r, http.MethodPost, "/api/auth/login", LoginRequest{LoginIdentifier: "nobody", Password: "password123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)

	u, err := users.GetByLoginIdentifier("johndoe")
	require.NoError(t, err)
	require.NoError(t, users.SetAccountStatus(u.ID, user.AccountDisabled))

	w, env = send(r, http.MethodPost, "/api/auth/login", LoginRequest{LoginIdentifier: "john@example.com", Password: "password123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Account is disabled", env.Message)
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := newRouter(t)
	w, _ := send(r, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
