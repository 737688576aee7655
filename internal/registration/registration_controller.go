package registration

import (
	"net/http"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/DhavalSuthar-24/squadhub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type RegistrationController struct {
	service *Service
}

func NewRegistrationController(service *Service) *RegistrationController {
	return &RegistrationController{service: service}
}

// pathIDs reads the caller and one uint path parameter, writing the error
// response itself when either is missing.
func pathIDs(c *gin.Context, param string) (userID, id uint, ok bool) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return 0, 0, false
	}
	id, err = common.ParseIDParam(c, param)
	if err != nil {
		responses.BadRequest(c, "Invalid "+param)
		return 0, 0, false
	}
	return userID, id, true
}

// RegisterSquad godoc
// @Summary Register the caller's squad for a tournament
// @Description The roster is locked on submission. Empty roles default to the player's squad role.
// @Tags Registrations
// @Accept json
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param body body RegisterSquadRequest true "Roster"
// @Success 201 {object} responses.SuccessResponse{data=Registration} "Registration requested"
// @Failure 400 {object} responses.ErrorResponse "Invalid roster"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL or organizer's own tournament"
// @Failure 409 {object} responses.ErrorResponse "Squad or player already registered"
// @Failure 422 {object} responses.ErrorResponse "Registration not open"
// @Security ApiKeyAuth
// @Router /tournaments/{tournament_id}/registrations [post]
func (rc *RegistrationController) RegisterSquad(c *gin.Context) {
	userID, tournamentID, ok := pathIDs(c, "tournament_id")
	if !ok {
		return
	}
	var req RegisterSquadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	reg, err := rc.service.RegisterSquad(c.Request.Context(), userID, tournamentID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Registration submitted successfully", reg)
}

// ListRegistrations godoc
// @Summary List a tournament's registrations
// @Tags Registrations
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param status query string false "REQUESTED, APPROVED, REJECTED or DISQUALIFIED"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Registration} "Registrations"
// @Failure 403 {object} responses.ErrorResponse "Not the organizer"
// @Security ApiKeyAuth
// @Router /tournaments/{tournament_id}/registrations [get]
func (rc *RegistrationController) ListRegistrations(c *gin.Context) {
	userID, tournamentID, ok := pathIDs(c, "tournament_id")
	if !ok {
		return
	}
	page, limit := common.Pagination(c)
	regs, total, err := rc.service.ListRegistrations(c.Request.Context(), userID, tournamentID, c.Query("status"), page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Registrations retrieved successfully", regs, total, page, limit)
}

// ApproveAll godoc
// @Summary Approve every requested registration
// @Tags Registrations
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=ApproveAllResult} "Number approved"
// @Security ApiKeyAuth
// @Router /tournaments/{tournament_id}/registrations/approve-all [patch]
func (rc *RegistrationController) ApproveAll(c *gin.Context) {
	userID, tournamentID, ok := pathIDs(c, "tournament_id")
	if !ok {
		return
	}
	count, err := rc.service.ApproveAllRegistrations(c.Request.Context(), userID, tournamentID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registrations approved", ApproveAllResult{Approved: count})
}

// GetRegistration godoc
// @Summary Get a registration with its roster
// @Tags Registrations
// @Produce json
// @Param registration_id path uint true "Registration ID"
// @Success 200 {object} responses.SuccessResponse{data=Registration} "Registration"
// @Failure 404 {object} responses.ErrorResponse "Registration not found"
// @Security ApiKeyAuth
// @Router /registrations/{registration_id} [get]
func (rc *RegistrationController) GetRegistration(c *gin.Context) {
	userID, id, ok := pathIDs(c, "registration_id")
	if !ok {
		return
	}
	reg, err := rc.service.GetRegistration(c.Request.Context(), userID, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration retrieved successfully", reg)
}

// Approve godoc
// @Summary Approve a registration
// @Tags Registrations
// @Produce json
// @Param registration_id path uint true "Registration ID"
// @Success 200 {object} responses.SuccessResponse{data=Registration} "Registration approved"
// @Failure 422 {object} responses.ErrorResponse "Not pending or review closed"
// @Security ApiKeyAuth
// @Router /registrations/{registration_id}/approve [patch]
func (rc *RegistrationController) Approve(c *gin.Context) {
	userID, id, ok := pathIDs(c, "registration_id")
	if !ok {
		return
	}
	reg, err := rc.service.ApproveRegistration(c.Request.Context(), userID, id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration approved", reg)
}

// Reject godoc
// @Summary Reject a registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registration_id path uint true "Registration ID"
// @Param body body RejectRequest false "Optional reason"
// @Success 200 {object} responses.SuccessResponse{data=Registration} "Registration rejected"
// @Security ApiKeyAuth
// @Router /registrations/{registration_id}/reject [patch]
func (rc *RegistrationController) Reject(c *gin.Context) {
	userID, id, ok := pathIDs(c, "registration_id")
	if !ok {
		return
	}
	var req RejectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendValidationError(c, validator.ParseError(err))
			return
		}
	}
	reg, err := rc.service.RejectRegistration(c.Request.Context(), userID, id, req.Reason)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration rejected", reg)
}

// Disqualify godoc
// @Summary Disqualify an approved squad
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registration_id path uint true "Registration ID"
// @Param body body DisqualifyRequest true "Reason and optional proof"
// @Success 200 {object} responses.SuccessResponse{data=Registration} "Squad disqualified"
// @Failure 409 {object} responses.ErrorResponse "Already disqualified"
// @Failure 422 {object} responses.ErrorResponse "Not approved or tournament not running"
// @Security ApiKeyAuth
// @Router /registrations/{registration_id}/disqualify [patch]
func (rc *RegistrationController) Disqualify(c *gin.Context) {
	userID, id, ok := pathIDs(c, "registration_id")
	if !ok {
		return
	}
	var req DisqualifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	reg, err := rc.service.DisqualifySquad(c.Request.Context(), userID, id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad disqualified", reg)
}
