package reservations

import (
	"net/http"
	"strconv"
	"time"

	"venuely/internal/shared/utils/response"
	"venuely/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
	logger    *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
		logger:    logger.GetDefault(),
	}
}

// Create handles POST /api/v1/reservations
func (c *Controller) Create(ctx *gin.Context) {
	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if errs := req.Validate(time.Now()); len(errs) > 0 {
		response.Error(ctx, http.StatusBadRequest, errs...)
		return
	}

	created, err := c.service.Submit(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "reservation submit failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	c.logger.LogSubmissionCreated(ctx.Request.Context(), "reservation", created.ID.String())
	response.Success(ctx, http.StatusCreated, created, "예약 신청이 완료되었습니다.")
}

// List handles GET /api/v1/admin/reservations
func (c *Controller) List(ctx *gin.Context) {
	query := ListQuery{
		Search:    ctx.Query("search"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
		Status:    ctx.Query("status"),
		Page:      parseIntQuery(ctx, "page", 1),
		Limit:     parseIntQuery(ctx, "limit", 20),
	}

	rows, pagination, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		c.logger.ErrorWithContext(ctx.Request.Context(), "reservation list failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Paginated(ctx, http.StatusOK, rows, pagination)
}

// Get handles GET /api/v1/admin/reservations/:id
func (c *Controller) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "유효하지 않은 ID입니다.")
		return
	}

	reservation, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(ctx, http.StatusNotFound, "예약을 찾을 수 없습니다.")
			return
		}
		c.logger.ErrorWithContext(ctx.Request.Context(), "reservation get failed", err, nil)
		response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		return
	}

	response.Success(ctx, http.StatusOK, reservation, "")
}

// UpdateStatus handles PATCH /api/v1/admin/reservations/:id
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "유효하지 않은 ID입니다.")
		return
	}

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "유효하지 않은 상태입니다.")
		return
	}

	reservation, err := c.service.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		switch err {
		case ErrInvalidStatus:
			response.Error(ctx, http.StatusBadRequest, "유효하지 않은 상태입니다.")
		case ErrNotFound:
			response.Error(ctx, http.StatusNotFound, "예약을 찾을 수 없습니다.")
		default:
			c.logger.ErrorWithContext(ctx.Request.Context(), "reservation status update failed", err, nil)
			response.Error(ctx, http.StatusInternalServerError, "데이터베이스 오류가 발생했습니다.")
		}
		return
	}

	c.logger.LogStatusUpdated(ctx.Request.Context(), "reservation", id.String(), req.Status)
	response.Success(ctx, http.StatusOK, reservation, "")
}

func parseIntQuery(ctx *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(ctx.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
