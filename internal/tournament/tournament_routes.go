package tournament

import (
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/DhavalSuthar-24/squadhub/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

// TournamentRoutes registers organizer, tournament and admin routes.
func TournamentRoutes(router *gin.RouterGroup, service *Service, authMW gin.HandlerFunc) {
	tc := NewTournamentController(service)

	organizers := router.Group("/organizers")
	organizers.Use(authMW)
	{
		organizers.POST("", tc.RequestOrganizer)
		organizers.GET("/me", tc.GetMyOrganizer)
	}

	tournaments := router.Group("/tournaments")
	{
		organizerOnly := rmiddleware.RoleMiddleware(user.RoleOrganizer, user.RoleAdmin)
		tournaments.POST("", authMW, organizerOnly, tc.CreateTournament)
		tournaments.GET("/mine", authMW, organizerOnly, tc.ListMyTournaments)
		tournaments.PATCH("/:tournament_id/lifecycle", authMW, organizerOnly, tc.Transition)
		tournaments.GET("/:tournament_id", tc.GetTournament)
	}

	admin := router.Group("/admin")
	admin.Use(authMW, rmiddleware.AdminMiddleware())
	{
		admin.PATCH("/organizers/:organizer_id/status", tc.SetOrganizerStatus)
	}
}
