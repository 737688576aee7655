package registration

import (
	"github.com/gin-gonic/gin"
)

// RegistrationRoutes registers the tournament registration routes. Organizer
// ownership is checked per tournament in the service.
func RegistrationRoutes(router *gin.RouterGroup, service *Service, authMW gin.HandlerFunc) {
	rc := NewRegistrationController(service)

	tournaments := router.Group("/tournaments/:tournament_id/registrations")
	tournaments.Use(authMW)
	{
		tournaments.POST("", rc.RegisterSquad)
		tournaments.GET("", rc.ListRegistrations)
		tournaments.PATCH("/approve-all", rc.ApproveAll)
	}

	registrations := router.Group("/registrations")
	registrations.Use(authMW)
	{
		registrations.GET("/:registration_id", rc.GetRegistration)
		registrations.PATCH("/:registration_id/approve", rc.Approve)
		registrations.PATCH("/:registration_id/reject", rc.Reject)
		registrations.PATCH("/:registration_id/disqualify", rc.Disqualify)
	}
}
