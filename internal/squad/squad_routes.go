package squad

import (
	"github.com/gin-gonic/gin"
)

// SquadRoutes sets up all squad membership routes. Caller-centric routes
// live under /users/me so they never clash with /squads/:squad_id.
func SquadRoutes(router *gin.RouterGroup, service *Service, authMW gin.HandlerFunc) {
	sc := NewSquadController(service)

	// Public squad routes
	router.GET("/squads", sc.ListSquads)
	router.GET("/squads/:squad_id", sc.GetSquad)

	authRoutes := router.Group("/")
	authRoutes.Use(authMW)
	{
		authRoutes.POST("/squads", sc.CreateSquad)
		authRoutes.POST("/squads/:squad_id/join-requests", sc.SendJoinRequest)

		// The caller's own squad, IGL checks happen in the service
		authRoutes.GET("/users/me/squad", sc.GetMySquad)
		authRoutes.PATCH("/users/me/squad/status", sc.UpdateStatus)
		authRoutes.PUT("/users/me/squad/logo", sc.UpdateLogo)
		authRoutes.POST("/users/me/squad/transfer-igl", sc.TransferIGL)
		authRoutes.DELETE("/users/me/squad/members/:player_id", sc.KickPlayer)
		authRoutes.POST("/users/me/squad/disband", sc.Disband)
		authRoutes.POST("/users/me/squad/leave", sc.Leave)
		authRoutes.POST("/users/me/squad/invites", sc.SendInvite)
		authRoutes.GET("/users/me/squad/invites", sc.ListSquadInvites())
		authRoutes.GET("/users/me/squad/join-requests", sc.ListSquadJoinRequests())
		authRoutes.GET("/users/me/squad/leave-requests", sc.ListSquadLeaveRequests())

		// Requests addressed to or sent by the caller
		authRoutes.GET("/users/me/invites", sc.ListMyInvites())
		authRoutes.GET("/users/me/join-requests", sc.ListMyJoinRequests())

		authRoutes.POST("/invites/:invite_id/accept", sc.AcceptInvite())
		authRoutes.POST("/invites/:invite_id/reject", sc.RejectInvite())
		authRoutes.DELETE("/invites/:invite_id", sc.CancelInvite())

		authRoutes.POST("/join-requests/:request_id/approve", sc.ApproveJoinRequest())
		authRoutes.POST("/join-requests/:request_id/reject", sc.RejectJoinRequest())
		authRoutes.DELETE("/join-requests/:request_id", sc.CancelJoinRequest())

		authRoutes.POST("/leave-requests/:request_id/approve", sc.ApproveLeaveRequest())
		authRoutes.POST("/leave-requests/:request_id/reject", sc.RejectLeaveRequest())
		authRoutes.DELETE("/leave-requests/:request_id", sc.CancelLeaveRequest())
	}
}
