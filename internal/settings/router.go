package settings

import (
	"venuely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSettingsRoutes(router *gin.RouterGroup, controller *Controller) {
	admin := router.Group("/admin/settings")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.Get)    // GET /api/v1/admin/settings
		admin.PUT("", controller.Update) // PUT /api/v1/admin/settings
	}
}
