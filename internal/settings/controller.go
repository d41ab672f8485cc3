package settings

import (
	"net/http"

	"venuely/internal/shared/utils/response"
	"venuely/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

// Get handles GET /api/v1/admin/settings
func (c *Controller) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "인증이 필요합니다.")
		return
	}

	settings, err := c.service.Get(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "settings get failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Success(ctx, http.StatusOK, settings, "")
}

// Update handles PUT /api/v1/admin/settings
func (c *Controller) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "인증이 필요합니다.")
		return
	}

	var req UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.Error(ctx, http.StatusBadRequest, errs...)
		return
	}

	settings, err := c.service.Update(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "settings update failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Success(ctx, http.StatusOK, settings, "설정이 저장되었습니다.")
}

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
