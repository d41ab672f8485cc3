package auth

import (
	"venuely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", controller.Login)
		auth.POST("/refresh", controller.RefreshToken)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.JWTAuth())
	{
		protected.POST("/change-password", controller.ChangePassword)
	}
}
