package auth

import (
	"net/http"

	"venuely/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "이메일과 비밀번호를 확인해주세요.")
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(ctx, http.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다.")
		default:
			response.Error(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		}
		return
	}

	response.Success(ctx, http.StatusOK, resp, "로그인되었습니다.")
}

func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "갱신 토큰이 필요합니다.")
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case ErrInvalidToken, ErrTokenExpired, ErrUserNotFound:
			response.Error(ctx, http.StatusUnauthorized, "유효하지 않은 토큰입니다.")
		default:
			response.Error(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		}
		return
	}

	response.Success(ctx, http.StatusOK, tokenPair, "")
}

func (c *Controller) ChangePassword(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "인증이 필요합니다.")
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "비밀번호는 6자 이상이어야 합니다.")
		return
	}

	if err := c.service.ChangePassword(ctx.Request.Context(), userID.(string), &req); err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(ctx, http.StatusUnauthorized, "현재 비밀번호가 올바르지 않습니다.")
		case ErrUserNotFound:
			response.Error(ctx, http.StatusNotFound, "사용자를 찾을 수 없습니다.")
		default:
			response.Error(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		}
		return
	}

	response.Success(ctx, http.StatusOK, nil, "비밀번호가 변경되었습니다.")
}
