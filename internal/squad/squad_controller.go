package squad

import (
	"io"
	"net/http"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/DhavalSuthar-24/squadhub/pkg/validator"
	"github.com/gin-gonic/gin"
)

const maxLogoUploadBytes = 5 << 20

// SquadController handles squad membership HTTP requests
type SquadController struct {
	service *Service
}

func NewSquadController(service *Service) *SquadController {
	return &SquadController{service: service}
}

func currentUser(c *gin.Context) (uint, bool) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return 0, false
	}
	return userID, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := common.ParseIDParam(c, name)
	if err != nil {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// CreateSquad godoc
// @Summary Create a new squad
// @Description Creates a squad with the caller as its sole IGL.
// @Tags Squads
// @Accept json
// @Produce json
// @Param squad body CreateSquadRequest true "Squad Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Squad} "Squad created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Player profile not found"
// @Failure 409 {object} responses.ErrorResponse "Already in a squad or name taken"
// @Security ApiKeyAuth
// @Router /squads [post]
func (sc *SquadController) CreateSquad(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req CreateSquadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	squad, err := sc.service.CreateSquad(c.Request.Context(), userID, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Squad created successfully", squad)
}

// GetSquad godoc
// @Summary Get a squad by its ID
// @Tags Squads
// @Produce json
// @Param squad_id path uint true "Squad ID"
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Squad details"
// @Failure 404 {object} responses.ErrorResponse "Squad not found"
// @Router /squads/{squad_id} [get]
func (sc *SquadController) GetSquad(c *gin.Context) {
	squadID, ok := idParam(c, "squad_id")
	if !ok {
		return
	}
	squad, err := sc.service.GetSquad(c.Request.Context(), squadID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad retrieved successfully", squad)
}

// ListSquads godoc
// @Summary List squads
// @Description Disbanded squads are hidden unless requested by status.
// @Tags Squads
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param name query string false "Search by squad name"
// @Param game query string false "Filter by game"
// @Param status query string false "ACTIVE, INACTIVE or DISBANDED"
// @Success 200 {object} responses.PaginatedResponse{data=[]Squad} "List of squads"
// @Router /squads [get]
func (sc *SquadController) ListSquads(c *gin.Context) {
	page, limit := common.Pagination(c)
	filter := ListFilter{Search: c.Query("name"), Game: c.Query("game")}
	if raw := c.Query("status"); raw != "" {
		status, ok := ParseStatus(raw)
		if !ok {
			responses.BadRequest(c, "Invalid squad status")
			return
		}
		filter.Status = status
	}

	squads, total, err := sc.service.ListSquads(c.Request.Context(), filter, page, limit)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Squads retrieved successfully", squads, total, page, limit)
}

// GetMySquad godoc
// @Summary Get the caller's squad
// @Tags Squads
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Squad details"
// @Failure 404 {object} responses.ErrorResponse "You are not in a squad"
// @Security ApiKeyAuth
// @Router /users/me/squad [get]
func (sc *SquadController) GetMySquad(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	squad, err := sc.service.GetMySquad(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad retrieved successfully", squad)
}

// UpdateStatus godoc
// @Summary Activate or deactivate the caller's squad
// @Tags Squads
// @Accept json
// @Produce json
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Squad updated"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL"
// @Failure 422 {object} responses.ErrorResponse "Transition not allowed"
// @Security ApiKeyAuth
// @Router /users/me/squad/status [patch]
func (sc *SquadController) UpdateStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	squad, err := sc.service.SetSquadStatus(c.Request.Context(), userID, req.Status)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad status updated successfully", squad)
}

// UpdateLogo godoc
// @Summary Upload a new squad logo
// @Tags Squads
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Logo updated"
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid image"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL"
// @Security ApiKeyAuth
// @Router /users/me/squad/logo [put]
func (sc *SquadController) UpdateLogo(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		responses.BadRequest(c, "Logo file is required")
		return
	}
	if fileHeader.Size > maxLogoUploadBytes {
		responses.BadRequest(c, "Logo exceeds 5MB")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		responses.BadRequest(c, "Failed to read logo file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		responses.BadRequest(c, "Failed to read logo file")
		return
	}

	squad, err := sc.service.UpdateLogo(c.Request.Context(), userID, data)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad logo updated successfully", squad)
}

// TransferIGL godoc
// @Summary Transfer the IGL role
// @Tags Squads
// @Accept json
// @Produce json
// @Param body body TransferIGLRequest true "New IGL"
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Leadership transferred"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL"
// @Failure 404 {object} responses.ErrorResponse "Target not in squad"
// @Security ApiKeyAuth
// @Router /users/me/squad/transfer-igl [post]
func (sc *SquadController) TransferIGL(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req TransferIGLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	squad, err := sc.service.TransferIGL(c.Request.Context(), userID, req.NewIGLID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "IGL transferred successfully", squad)
}

// KickPlayer godoc
// @Summary Kick a member
// @Tags Squads
// @Produce json
// @Param player_id path uint true "Player user ID"
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Player removed"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL"
// @Failure 404 {object} responses.ErrorResponse "Player not in squad"
// @Security ApiKeyAuth
// @Router /users/me/squad/members/{player_id} [delete]
func (sc *SquadController) KickPlayer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	playerID, ok := idParam(c, "player_id")
	if !ok {
		return
	}
	squad, err := sc.service.KickPlayer(c.Request.Context(), userID, playerID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player removed from squad", squad)
}

// Disband godoc
// @Summary Disband the caller's squad
// @Tags Squads
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Squad disbanded"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL"
// @Failure 422 {object} responses.ErrorResponse "Squad not active"
// @Security ApiKeyAuth
// @Router /users/me/squad/disband [post]
func (sc *SquadController) Disband(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	squad, err := sc.service.DisbandSquad(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Squad disbanded successfully", squad)
}

// Leave godoc
// @Summary Leave the caller's squad
// @Description Disbands when the caller is the sole IGL, leaves at once when the IGL is not active, otherwise files a leave request.
// @Tags Squads
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=LeaveResult} "Outcome"
// @Failure 409 {object} responses.ErrorResponse "Leave request already pending"
// @Failure 422 {object} responses.ErrorResponse "Transfer IGL role before leaving"
// @Security ApiKeyAuth
// @Router /users/me/squad/leave [post]
func (sc *SquadController) Leave(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	result, err := sc.service.RequestLeave(c.Request.Context(), userID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	message := "Leave request submitted"
	switch result.Outcome {
	case LeaveDisbanded:
		message = "Squad disbanded"
	case LeaveLeft:
		message = "Left squad"
	}
	responses.SendSuccess(c, http.StatusOK, message, result)
}

// listHandler wires the common page/limit/status parsing for request lists.
func listHandler[T any](message string, list func(c *gin.Context, userID uint, status string, page, limit int) ([]T, int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		page, limit := common.Pagination(c)
		items, total, err := list(c, userID, c.Query("status"), page, limit)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		responses.SendPaginated(c, http.StatusOK, message, items, total, page, limit)
	}
}

// ListSquadInvites godoc
// @Summary List invites sent by the caller's squad
// @Tags Requests
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Invite} "Invites"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL"
// @Security ApiKeyAuth
// @Router /users/me/squad/invites [get]
func (sc *SquadController) ListSquadInvites() gin.HandlerFunc {
	return listHandler("Invites retrieved successfully", func(c *gin.Context, userID uint, status string, page, limit int) ([]Invite, int64, error) {
		return sc.service.ListSquadInvites(c.Request.Context(), userID, status, page, limit)
	})
}

// ListSquadJoinRequests godoc
// @Summary List join requests addressed to the caller's squad
// @Tags Requests
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]JoinRequest} "Join requests"
// @Security ApiKeyAuth
// @Router /users/me/squad/join-requests [get]
func (sc *SquadController) ListSquadJoinRequests() gin.HandlerFunc {
	return listHandler("Join requests retrieved successfully", func(c *gin.Context, userID uint, status string, page, limit int) ([]JoinRequest, int64, error) {
		return sc.service.ListSquadJoinRequests(c.Request.Context(), userID, status, page, limit)
	})
}

// ListSquadLeaveRequests godoc
// @Summary List leave requests in the caller's squad
// @Tags Requests
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]LeaveRequest} "Leave requests"
// @Security ApiKeyAuth
// @Router /users/me/squad/leave-requests [get]
func (sc *SquadController) ListSquadLeaveRequests() gin.HandlerFunc {
	return listHandler("Leave requests retrieved successfully", func(c *gin.Context, userID uint, status string, page, limit int) ([]LeaveRequest, int64, error) {
		return sc.service.ListSquadLeaveRequests(c.Request.Context(), userID, status, page, limit)
	})
}

// ListMyInvites godoc
// @Summary List invites addressed to the caller
// @Tags Requests
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Invite} "Invites"
// @Security ApiKeyAuth
// @Router /users/me/invites [get]
func (sc *SquadController) ListMyInvites() gin.HandlerFunc {
	return listHandler("Invites retrieved successfully", func(c *gin.Context, userID uint, status string, page, limit int) ([]Invite, int64, error) {
		return sc.service.ListMyInvites(c.Request.Context(), userID, status, page, limit)
	})
}

// ListMyJoinRequests godoc
// @Summary List join requests sent by the caller
// @Tags Requests
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]JoinRequest} "Join requests"
// @Security ApiKeyAuth
// @Router /users/me/join-requests [get]
func (sc *SquadController) ListMyJoinRequests() gin.HandlerFunc {
	return listHandler("Join requests retrieved successfully", func(c *gin.Context, userID uint, status string, page, limit int) ([]JoinRequest, int64, error) {
		return sc.service.ListMyJoinRequests(c.Request.Context(), userID, status, page, limit)
	})
}

// SendInvite godoc
// @Summary Invite a player to the caller's squad
// @Tags Requests
// @Accept json
// @Produce json
// @Param body body InviteRequest true "Invitee"
// @Success 201 {object} responses.SuccessResponse{data=Invite} "Invite sent"
// @Failure 403 {object} responses.ErrorResponse "Not the IGL"
// @Failure 409 {object} responses.ErrorResponse "Squad full, player taken or request pending"
// @Security ApiKeyAuth
// @Router /users/me/squad/invites [post]
func (sc *SquadController) SendInvite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	invite, err := sc.service.SendInvite(c.Request.Context(), userID, req.PlayerID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Invite sent successfully", invite)
}

// SendJoinRequest godoc
// @Summary Ask to join a squad
// @Tags Requests
// @Produce json
// @Param squad_id path uint true "Squad ID"
// @Success 201 {object} responses.SuccessResponse{data=JoinRequest} "Join request sent"
// @Failure 409 {object} responses.ErrorResponse "Squad full, already in a squad or request pending"
// @Security ApiKeyAuth
// @Router /squads/{squad_id}/join-requests [post]
func (sc *SquadController) SendJoinRequest(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	squadID, ok := idParam(c, "squad_id")
	if !ok {
		return
	}
	request, err := sc.service.SendJoinRequest(c.Request.Context(), userID, squadID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Join request sent successfully", request)
}

// resolveHandler wires an id path parameter to a request transition.
func resolveHandler[T any](param, message string, resolve func(c *gin.Context, userID, id uint) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := idParam(c, param)
		if !ok {
			return
		}
		result, err := resolve(c, userID, id)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		responses.SendSuccess(c, http.StatusOK, message, result)
	}
}

// AcceptInvite godoc
// @Summary Accept an invite
// @Tags Requests
// @Produce json
// @Param invite_id path uint true "Invite ID"
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Joined squad"
// @Failure 403 {object} responses.ErrorResponse "Invite is not addressed to you"
// @Failure 409 {object} responses.ErrorResponse "Squad is full"
// @Failure 422 {object} responses.ErrorResponse "Request is no longer pending"
// @Security ApiKeyAuth
// @Router /invites/{invite_id}/accept [post]
func (sc *SquadController) AcceptInvite() gin.HandlerFunc {
	return resolveHandler("invite_id", "Invite accepted", func(c *gin.Context, userID, id uint) (*Squad, error) {
		return sc.service.AcceptInvite(c.Request.Context(), userID, id)
	})
}

// RejectInvite godoc
// @Summary Reject an invite
// @Tags Requests
// @Produce json
// @Param invite_id path uint true "Invite ID"
// @Success 200 {object} responses.SuccessResponse{data=Invite} "Invite rejected"
// @Security ApiKeyAuth
// @Router /invites/{invite_id}/reject [post]
func (sc *SquadController) RejectInvite() gin.HandlerFunc {
	return resolveHandler("invite_id", "Invite rejected", func(c *gin.Context, userID, id uint) (*Invite, error) {
		return sc.service.RejectInvite(c.Request.Context(), userID, id)
	})
}

// CancelInvite godoc
// @Summary Cancel a sent invite
// @Tags Requests
// @Produce json
// @Param invite_id path uint true "Invite ID"
// @Success 200 {object} responses.SuccessResponse{data=Invite} "Invite cancelled"
// @Security ApiKeyAuth
// @Router /invites/{invite_id} [delete]
func (sc *SquadController) CancelInvite() gin.HandlerFunc {
	return resolveHandler("invite_id", "Invite cancelled", func(c *gin.Context, userID, id uint) (*Invite, error) {
		return sc.service.CancelInvite(c.Request.Context(), userID, id)
	})
}

// ApproveJoinRequest godoc
// @Summary Approve a join request
// @Tags Requests
// @Produce json
// @Param request_id path uint true "Join request ID"
// @Success 200 {object} responses.SuccessResponse{data=Squad} "Player admitted"
// @Security ApiKeyAuth
// @Router /join-requests/{request_id}/approve [post]
func (sc *SquadController) ApproveJoinRequest() gin.HandlerFunc {
	return resolveHandler("request_id", "Join request approved", func(c *gin.Context, userID, id uint) (*Squad, error) {
		return sc.service.ApproveJoinRequest(c.Request.Context(), userID, id)
	})
}

// RejectJoinRequest godoc
// @Summary Reject a join request
// @Tags Requests
// @Produce json
// @Param request_id path uint true "Join request ID"
// @Success 200 {object} responses.SuccessResponse{data=JoinRequest} "Join request rejected"
// @Security ApiKeyAuth
// @Router /join-requests/{request_id}/reject [post]
func (sc *SquadController) RejectJoinRequest() gin.HandlerFunc {
	return resolveHandler("request_id", "Join request rejected", func(c *gin.Context, userID, id uint) (*JoinRequest, error) {
		return sc.service.RejectJoinRequest(c.Request.Context(), userID, id)
	})
}

// CancelJoinRequest godoc
// @Summary Withdraw a join request
// @Tags Requests
// @Produce json
// @Param request_id path uint true "Join request ID"
// @Success 200 {object} responses.SuccessResponse{data=JoinRequest} "Join request cancelled"
// @Security ApiKeyAuth
// @Router /join-requests/{request_id} [delete]
func (sc *SquadController) CancelJoinRequest() gin.HandlerFunc {
	return resolveHandler("request_id", "Join request cancelled", func(c *gin.Context, userID, id uint) (*JoinRequest, error) {
		return sc.service.CancelJoinRequest(c.Request.Context(), userID, id)
	})
}

// ApproveLeaveRequest godoc
// @Summary Approve a leave request
// @Tags Requests
// @Produce json
// @Param request_id path uint true "Leave request ID"
// @Success 200 {object} responses.SuccessResponse{data=LeaveRequest} "Leave approved"
// @Security ApiKeyAuth
// @Router /leave-requests/{request_id}/approve [post]
func (sc *SquadController) ApproveLeaveRequest() gin.HandlerFunc {
	return resolveHandler("request_id", "Leave request approved", func(c *gin.Context, userID, id uint) (*LeaveRequest, error) {
		return sc.service.ApproveLeaveRequest(c.Request.Context(), userID, id)
	})
}

// RejectLeaveRequest godoc
// @Summary Reject a leave request
// @Tags Requests
// @Produce json
// @Param request_id path uint true "Leave request ID"
// @Success 200 {object} responses.SuccessResponse{data=LeaveRequest} "Leave rejected"
// @Security ApiKeyAuth
// @Router /leave-requests/{request_id}/reject [post]
func (sc *SquadController) RejectLeaveRequest() gin.HandlerFunc {
	return resolveHandler("request_id", "Leave request rejected", func(c *gin.Context, userID, id uint) (*LeaveRequest, error) {
		return sc.service.RejectLeaveRequest(c.Request.Context(), userID, id)
	})
}

// CancelLeaveRequest godoc
// @Summary Withdraw a leave request
// @Tags Requests
// @Produce json
// @Param request_id path uint true "Leave request ID"
// @Success 200 {object} responses.SuccessResponse{data=LeaveRequest} "Leave request cancelled"
// @Security ApiKeyAuth
// @Router /leave-requests/{request_id} [delete]
func (sc *SquadController) CancelLeaveRequest() gin.HandlerFunc {
	return resolveHandler("request_id", "Leave request cancelled", func(c *gin.Context, userID, id uint) (*LeaveRequest, error) {
		return sc.service.CancelLeaveRequest(c.Request.Context(), userID, id)
	})
}
