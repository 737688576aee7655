package tournament

import (
	"net/http"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/DhavalSuthar-24/squadhub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type TournamentController struct {
	service *Service
}

func NewTournamentController(service *Service) *TournamentController {
	return &TournamentController{service: service}
}

// RequestOrganizer godoc
// @Summary Request an organizer profile
// @Description The profile starts UNVERIFIED until an admin verifies it.
// @Tags Organizers
// @Accept json
// @Produce json
// @Param organizer body CreateOrganizerRequest true "Organizer data"
// @Success 201 {object} responses.SuccessResponse{data=OrganizerProfile} "Organizer profile created"
// @Failure 409 {object} responses.ErrorResponse "Organizer profile already exists"
// @Security ApiKeyAuth
// @Router /organizers [post]
func (tc *TournamentController) RequestOrganizer(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	var req CreateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	profile, err := tc.service.RequestOrganizerProfile(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Organizer profile submitted for review", profile)
}

// GetMyOrganizer godoc
// @Summary Get the caller's organizer profile
// @Tags Organizers
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=OrganizerProfile} "Organizer profile"
// @Failure 404 {object} responses.ErrorResponse "Organizer profile not found"
// @Security ApiKeyAuth
// @Router /organizers/me [get]
func (tc *TournamentController) GetMyOrganizer(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	profile, err := tc.service.GetMyOrganizerProfile(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Organizer profile retrieved successfully", profile)
}

// CreateTournament godoc
// @Summary Create a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament data"
// @Success 201 {object} responses.SuccessResponse{data=Tournament} "Tournament created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Organizer is not verified"
// @Security ApiKeyAuth
// @Router /tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	t, err := tc.service.CreateTournament(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", t)
}

// GetTournament godoc
// @Summary Get a tournament
// @Tags Tournaments
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=Tournament} "Tournament"
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{tournament_id} [get]
func (tc *TournamentController) GetTournament(c *gin.Context) {
	id, err := common.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.BadRequest(c, "Invalid tournament_id")
		return
	}
	t, err := tc.service.GetTournament(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament retrieved successfully", t)
}

// ListMyTournaments godoc
// @Summary List the caller's tournaments
// @Tags Tournaments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Tournament} "Tournaments"
// @Security ApiKeyAuth
// @Router /tournaments/mine [get]
func (tc *TournamentController) ListMyTournaments(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	page, limit := common.Pagination(c)
	tournaments, total, err := tc.service.ListMyTournaments(c.Request.Context(), userID, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Tournaments retrieved successfully", tournaments, total, page, limit)
}

// Transition godoc
// @Summary Move a tournament through its lifecycle
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param body body TransitionRequest true "open-registration, close-registration, start, complete, finalize or cancel"
// @Success 200 {object} responses.SuccessResponse{data=Tournament} "Tournament updated"
// @Failure 403 {object} responses.ErrorResponse "Not the organizer"
// @Failure 422 {object} responses.ErrorResponse "Transition not allowed"
// @Security ApiKeyAuth
// @Router /tournaments/{tournament_id}/lifecycle [patch]
func (tc *TournamentController) Transition(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	id, err := common.ParseIDParam(c, "tournament_id")
	if err != nil {
		responses.BadRequest(c, "Invalid tournament_id")
		return
	}
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	t, err := tc.service.Transition(c.Request.Context(), userID, id, req.Action)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament is now "+string(t.LifecycleStatus), t)
}

// SetOrganizerStatus godoc
// @Summary Verify, unverify or suspend an organizer
// @Tags Admin
// @Accept json
// @Produce json
// @Param organizer_id path uint true "Organizer profile ID"
// @Param body body UpdateOrganizerStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=OrganizerProfile} "Organizer updated"
// @Failure 403 {object} responses.ErrorResponse "Admins only"
// @Security ApiKeyAuth
// @Router /admin/organizers/{organizer_id}/status [patch]
func (tc *TournamentController) SetOrganizerStatus(c *gin.Context) {
	id, err := common.ParseIDParam(c, "organizer_id")
	if err != nil {
		responses.BadRequest(c, "Invalid organizer_id")
		return
	}
	var req UpdateOrganizerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	profile, err := tc.service.SetOrganizerStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Organizer status updated", profile)
}
