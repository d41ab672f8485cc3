package settlements

import (
	"venuely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSettlementRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public submission
	public := router.Group("/settlements")
	{
		public.POST("", controller.Create) // POST /api/v1/settlements
	}

	// Admin management
	admin := router.Group("/admin/settlements")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.List)                     // GET /api/v1/admin/settlements
		admin.GET("/:id", controller.Get)                  // GET /api/v1/admin/settlements/:id
		admin.PATCH("/:id", controller.UpdateRefundStatus) // PATCH /api/v1/admin/settlements/:id
	}
}
