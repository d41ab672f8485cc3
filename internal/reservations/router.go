package reservations

import (
	"venuely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public submission
	public := router.Group("/reservations")
	{
		public.POST("", controller.Create) // POST /api/v1/reservations
	}

	// Admin management
	admin := router.Group("/admin/reservations")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.List)              // GET /api/v1/admin/reservations
		admin.GET("/:id", controller.Get)           // GET /api/v1/admin/reservations/:id
		admin.PATCH("/:id", controller.UpdateStatus) // PATCH /api/v1/admin/reservations/:id
	}
}
