package player

import (
	"github.com/gin-gonic/gin"
)

// PlayerRoutes sets up the player profile routes.
func PlayerRoutes(router *gin.RouterGroup, service *Service, authMW gin.HandlerFunc) {
	playerController := NewPlayerController(service)

	players := router.Group("/players")
	players.Use(authMW)
	{
		players.POST("", playerController.CreateProfile)
		players.GET("", playerController.SearchPlayers)
		players.GET("/me", playerController.GetMyProfile)
		players.PUT("/me", playerController.UpdateProfile)
	}
}
