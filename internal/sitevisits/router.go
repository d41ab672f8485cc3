package sitevisits

import (
	"venuely/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSiteVisitRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public submission
	public := router.Group("/site-visits")
	{
		public.POST("", controller.Create) // POST /api/v1/site-visits
	}

	// Admin management
	admin := router.Group("/admin/site-visits")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.List)               // GET /api/v1/admin/site-visits
		admin.GET("/:id", controller.Get)            // GET /api/v1/admin/site-visits/:id
		admin.PATCH("/:id", controller.UpdateStatus) // PATCH /api/v1/admin/site-visits/:id
	}
}
