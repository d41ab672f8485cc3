package search

import (
	"venuely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSearchRoutes(router *gin.RouterGroup, controller *Controller) {
	admin := router.Group("/admin/search")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.Search) // GET /api/v1/admin/search
	}
}
