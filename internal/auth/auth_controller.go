package auth

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/DhavalSuthar-24/squadhub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *Service
}

func NewAuthController(service *Service) *AuthController {
	return &AuthController{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new player account with username, email, phone and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} responses.SuccessResponse{data=AuthResponse} "User registered successfully"
// @Failure      400   {object} responses.ErrorResponse "Validation error or invalid input"
// @Failure      409   {object} responses.ErrorResponse "User with this email or phone or username already exists"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	res, err := ac.service.Register(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", res)
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate user with email/username and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse} "Login successful"
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials or disabled account"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	res, err := ac.service.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		responses.Unauthorized(c, "Invalid credentials")
		return
	case errors.Is(err, ErrAccountDisabled):
		responses.Unauthorized(c, "Account is disabled")
		return
	case err != nil:
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", res)
}

// GetProfile godoc
// @Summary      Get User Profile
// @Description  Retrieves the account of the currently authenticated user.
// @Tags         Auth
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=user.UserResponse} "User profile data"
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Failure      404 {object} responses.ErrorResponse "User not found"
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	me, err := ac.service.Me(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", me)
}
