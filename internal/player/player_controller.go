package player

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/DhavalSuthar-24/squadhub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	service *Service
}

func NewPlayerController(service *Service) *PlayerController {
	return &PlayerController{service: service}
}

// CreateProfile godoc
// @Summary Create the caller's player profile
// @Tags Players
// @Accept json
// @Produce json
// @Param profile body CreateProfileRequest true "Profile data"
// @Success 201 {object} responses.SuccessResponse{data=Profile} "Profile created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Profile already exists"
// @Security ApiKeyAuth
// @Router /players [post]
func (pc *PlayerController) CreateProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	profile, err := pc.service.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player profile created successfully", profile)
}

// GetMyProfile godoc
// @Summary Get the caller's player profile
// @Tags Players
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Profile} "Profile"
// @Failure 404 {object} responses.ErrorResponse "Profile not found"
// @Security ApiKeyAuth
// @Router /players/me [get]
func (pc *PlayerController) GetMyProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := pc.service.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player profile retrieved successfully", profile)
}

// UpdateProfile godoc
// @Summary Update the caller's player profile
// @Description Changing game UID, in-game name or roles resets account verification.
// @Tags Players
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Profile} "Profile updated"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Profile not found"
// @Security ApiKeyAuth
// @Router /players/me [put]
func (pc *PlayerController) UpdateProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	profile, err := pc.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player profile updated successfully", profile)
}

// SearchPlayers godoc
// @Summary Search players
// @Tags Players
// @Produce json
// @Param q query string false "Username or in-game name"
// @Param free_agents query bool false "Only players without a squad"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]SearchResult} "Players"
// @Security ApiKeyAuth
// @Router /players [get]
func (pc *PlayerController) SearchPlayers(c *gin.Context) {
	page, limit := common.Pagination(c)
	freeAgents, _ := strconv.ParseBool(c.DefaultQuery("free_agents", "false"))

	results, total, err := pc.service.SearchPlayers(c.Request.Context(), c.Query("q"), freeAgents, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", results, total, page, limit)
}
