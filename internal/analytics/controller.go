package analytics

import (
	"net/http"

	"venuely/internal/shared/utils/response"
	"venuely/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	logger  *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service: service,
		logger:  logger.GetDefault(),
	}
}

// GetStatistics handles GET /api/v1/admin/statistics
func (c *Controller) GetStatistics(ctx *gin.Context) {
	period := NormalizePeriod(ctx.DefaultQuery("period", string(PeriodMonthly)))

	stats, err := c.service.GetStatistics(ctx.Request.Context(), period)
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "statistics aggregation failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Success(ctx, http.StatusOK, stats, "")
}

// GetDashboardStats handles GET /api/v1/admin/stats
func (c *Controller) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.service.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "dashboard stats failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Success(ctx, http.StatusOK, stats, "")
}

// GetMonthlySchedule handles GET /api/v1/admin/schedule/monthly
func (c *Controller) GetMonthlySchedule(ctx *gin.Context) {
	entries, err := c.service.GetMonthlySchedule(ctx.Request.Context())
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "monthly schedule failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Success(ctx, http.StatusOK, entries, "")
}
