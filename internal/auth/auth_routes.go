package auth

import (
	"github.com/gin-gonic/gin"
)

func AuthRoutes(router *gin.RouterGroup, service *Service, authMW gin.HandlerFunc) {
	authController := NewAuthController(service)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(authMW)
	{
		authProtected.GET("/me", authController.GetProfile)
	}
}
