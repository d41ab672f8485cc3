package analytics

import (
	"venuely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(router *gin.RouterGroup, controller *Controller) {
	admin := router.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/stats", controller.GetDashboardStats)             // GET /api/v1/admin/stats
		admin.GET("/statistics", controller.GetStatistics)            // GET /api/v1/admin/statistics
		admin.GET("/schedule/monthly", controller.GetMonthlySchedule) // GET /api/v1/admin/schedule/monthly
	}
}
