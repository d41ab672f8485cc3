package search

import (
	"net/http"
	"strconv"

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

// Search handles GET /api/v1/admin/search
func (c *Controller) Search(ctx *gin.Context) {
	term := ctx.Query("query")
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	results, err := c.service.Search(ctx.Request.Context(), term, limit)
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "cross-entity search failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Success(ctx, http.StatusOK, results, "")
}
